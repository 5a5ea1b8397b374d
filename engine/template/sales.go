package template

import (
	"context"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/engine/tool/knowledge"
	"github.com/agentdesk/agentdesk/engine/tool/record"
)

const (
	LeadScoring       category.Category = "lead_scoring"
	CompanyResearch   category.Category = "company_research"
	EmailOutreach     category.Category = "email_outreach"
	ObjectionHandling category.Category = "objection_handling"
)

// Sales needs "outreach" or "compose" next to "email" before it routes to
// outreach, so an email raising an objection lands on objection handling.
func Sales() *Template {
	set := category.NewSet(LeadScoring, CompanyResearch, EmailOutreach, ObjectionHandling)
	return &Template{
		Name:         "sales",
		Title:        "AI Sales Lead Qualifier",
		Prompt:       "Sales Rep",
		ClassifyTask: "classify_request",
		Normalizer: category.NewNormalizer(set, LeadScoring,
			category.Rule{Category: LeadScoring, Match: category.Either(
				category.Contains("lead_scoring"), category.AllOf("lead", "scor"),
			)},
			category.Rule{Category: CompanyResearch, Match: category.Either(
				category.Contains("company_research"), category.AllOf("company", "research"),
			)},
			category.Rule{Category: EmailOutreach, Match: category.Either(
				category.Contains("email_outreach"),
				category.Both(category.Contains("email"), category.AnyOf("outreach", "compose")),
			)},
			category.Rule{Category: ObjectionHandling, Match: category.AnyOf("objection_handling", "objection")},
			category.Rule{Category: LeadScoring, Match: category.AnyOf("qualify", "bant", "score")},
			category.Rule{Category: CompanyResearch, Match: category.AnyOf("research", "intel")},
			category.Rule{Category: EmailOutreach, Match: category.AnyOf("email", "write", "draft")},
		),
		Routes: map[category.Category]Route{
			LeadScoring:       {Task: "score_lead", Agent: "lead_scorer"},
			CompanyResearch:   {Task: "research_company", Agent: "company_researcher"},
			EmailOutreach:     {Task: "compose_email", Agent: "email_composer"},
			ObjectionHandling: {Task: "handle_objection", Agent: "objection_handler"},
		},
		Bindings: map[string][]string{
			"lead_scorer":        {"search_lead_database", "lookup_company"},
			"company_researcher": {"search_lead_database", "lookup_company"},
			"email_composer":     {"search_lead_database", "lookup_company"},
			"objection_handler":  {"search_lead_database"},
		},
		Tools: salesTools,
	}
}

func salesTools(ctx context.Context, env *ToolEnv) ([]tool.Tool, error) {
	return collect(
		ready(searchTool(env, knowledge.SearchConfig{
			Name:        "search_lead_database",
			Description: "Search the lead database for companies, contacts, or industry data.",
			Marker:      h3Marker,
			MaxResults:  defaultResults,
			MaxRunes:    defaultRunes,
			NotFound:    "No leads found matching: %s",
		})),
		func() (tool.Tool, error) {
			return lookupTool(ctx, env, "companies", record.LookupConfig{
				Name:        "lookup_company",
				Description: "Look up a company profile with contacts, tech stack, and BANT signals by name.",
				Argument:    "company_name",
				Entity:      "Company",
				Plural:      "companies",
				Key:         record.LowerKey,
			})
		},
	)
}
