package template

import (
	"context"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/engine/tool/knowledge"
	"github.com/agentdesk/agentdesk/engine/tool/record"
)

const (
	ContentStrategy category.Category = "content_strategy"
	BlogWriting     category.Category = "blog_writing"
	SocialMedia     category.Category = "social_media"
	SEOAnalysis     category.Category = "seo_analysis"
)

var channelAliases = map[string]string{"x": "twitter", "twitterx": "twitter", "ig": "instagram"}

func ContentMarketing() *Template {
	set := category.NewSet(ContentStrategy, BlogWriting, SocialMedia, SEOAnalysis)
	return &Template{
		Name:         "content-marketing",
		Title:        "AI Content Marketing Studio",
		Prompt:       "Marketer",
		ClassifyTask: "classify_request",
		Normalizer: category.TwoStage(set, BlogWriting, []category.KeywordSet{
			{Category: ContentStrategy, Keywords: []string{
				"strategy", "planning", "calendar", "editorial", "audit", "persona", "pillar", "roadmap",
			}},
			{Category: BlogWriting, Keywords: []string{
				"blog", "article", "post", "write", "writing", "draft", "copy",
				"thought leadership", "case study", "guide",
			}},
			{Category: SocialMedia, Keywords: []string{
				"social", "linkedin", "twitter", "instagram", "facebook", "hashtag",
				"caption", "reel", "carousel", "tiktok",
			}},
			{Category: SEOAnalysis, Keywords: []string{
				"seo", "keyword", "ranking", "search", "backlink", "meta", "serp", "organic", "crawl",
			}},
		}),
		Routes: map[category.Category]Route{
			ContentStrategy: {Task: "plan_content_strategy", Agent: "content_strategist"},
			BlogWriting:     {Task: "write_blog_post", Agent: "blog_writer"},
			SocialMedia:     {Task: "create_social_content", Agent: "social_media_creator"},
			SEOAnalysis:     {Task: "analyze_seo", Agent: "seo_analyzer"},
		},
		Bindings: map[string][]string{
			"content_strategist":   {"search_content_guide", "lookup_campaign", "check_content_performance"},
			"blog_writer":          {"search_content_guide", "lookup_campaign"},
			"social_media_creator": {"search_content_guide", "check_content_performance"},
			"seo_analyzer":         {"search_content_guide", "check_content_performance"},
		},
		Tools: contentMarketingTools,
	}
}

func contentMarketingTools(ctx context.Context, env *ToolEnv) ([]tool.Tool, error) {
	return collect(
		ready(searchTool(env, knowledge.SearchConfig{
			Name:        "search_content_guide",
			Description: "Search the content marketing guide for best practices, templates, and strategies.",
			Marker:      h3Marker,
			MaxResults:  defaultResults,
			MaxRunes:    defaultRunes,
			NotFound:    "No content guide articles found for: %s",
		})),
		func() (tool.Tool, error) {
			return lookupTool(ctx, env, "campaigns", record.LookupConfig{
				Name:        "lookup_campaign",
				Description: "Look up a content marketing campaign by campaign ID (e.g., CMP-001).",
				Argument:    "campaign_id",
				Entity:      "Campaign",
				Plural:      "campaigns",
				Key:         record.UpperKey,
			})
		},
		func() (tool.Tool, error) {
			return lookupTool(ctx, env, "channels", record.LookupConfig{
				Name: "check_content_performance",
				Description: "Check traffic, engagement, and conversion metrics for a content channel " +
					"(e.g., blog, linkedin, twitter, instagram, email, youtube).",
				Argument: "channel",
				Entity:   "Channel",
				Plural:   "channels",
				Key:      record.WithAliases(record.SnakeKey, "/", channelAliases),
			})
		},
	)
}
