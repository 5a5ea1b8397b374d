package template

import (
	"context"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/engine/tool/knowledge"
)

const (
	ClauseExtraction category.Category = "clause_extraction"
	RiskAnalysis     category.Category = "risk_analysis"
	Summarization    category.Category = "summarization"
	Comparison       category.Category = "comparison"
)

// Legal routes any mention of "clause" to extraction before risk is considered.
func Legal() *Template {
	set := category.NewSet(ClauseExtraction, RiskAnalysis, Summarization, Comparison)
	return &Template{
		Name:         "legal",
		Title:        "AI Legal Document Analyzer",
		Prompt:       "Query",
		ClassifyTask: "classify_request",
		Normalizer: category.NewNormalizer(set, Summarization,
			category.Rule{Category: ClauseExtraction, Match: category.AnyOf("clause_extraction", "clause")},
			category.Rule{Category: RiskAnalysis, Match: category.Either(
				category.Contains("risk_analysis"), category.AllOf("risk", "analy"),
			)},
			category.Rule{Category: Summarization, Match: category.AnyOf("summarization", "summar")},
			category.Rule{Category: Comparison, Match: category.AnyOf("comparison", "compar")},
		),
		Routes: map[category.Category]Route{
			ClauseExtraction: {Task: "extract_clauses", Agent: "clause_extractor"},
			RiskAnalysis:     {Task: "analyze_risks", Agent: "risk_analyzer"},
			Summarization:    {Task: "summarize_document", Agent: "summarizer"},
			Comparison:       {Task: "compare_documents", Agent: "comparator"},
		},
		Bindings: map[string][]string{
			"clause_extractor": {"search_document_clauses", "get_document_sections"},
			"risk_analyzer":    {"search_document_clauses", "get_document_sections"},
			"summarizer":       {"search_document_clauses", "get_document_sections"},
			"comparator":       {"compare_document_sections", "get_document_sections"},
		},
		Tools: legalTools,
	}
}

func legalTools(_ context.Context, env *ToolEnv) ([]tool.Tool, error) {
	corpus := env.Corpus()
	return []tool.Tool{
		searchTool(env, knowledge.SearchConfig{
			Name:        "search_document_clauses",
			Description: "Search all legal documents for clauses or sections matching a keyword.",
			Marker:      h2Marker,
			MaxResults:  defaultResults,
			MaxRunes:    defaultRunes,
			Label:       true,
			NotFound:    "No clauses or sections found matching: %s",
		}),
		knowledge.NewHeadingsTool(
			"get_document_sections",
			"List the section headings of a legal document by (partial) name.",
			corpus,
		),
		knowledge.NewCompareTool(
			"compare_document_sections",
			"Compare sections with the same title across every legal document.",
			h2Marker,
			corpus,
		),
	}, nil
}
