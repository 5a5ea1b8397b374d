package template

import (
	"context"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/engine/tool/knowledge"
)

const (
	FAQ        category.Category = "faq"
	Ticket     category.Category = "ticket"
	Escalation category.Category = "escalation"
)

// CustomerSupport checks "faq" before "ticket", so text naming both routes to faq.
func CustomerSupport() *Template {
	set := category.NewSet(FAQ, Ticket, Escalation)
	return &Template{
		Name:         "customer-support",
		Title:        "AI Customer Support",
		Prompt:       "Customer",
		ClassifyTask: "classify_inquiry",
		Normalizer: category.NewNormalizer(set, Ticket,
			category.Rule{Category: FAQ, Match: category.Contains("faq")},
			category.Rule{Category: Ticket, Match: category.Contains("ticket")},
			category.Rule{Category: Escalation, Match: category.Contains("escalat")},
		),
		Routes: map[category.Category]Route{
			FAQ:        {Task: "answer_faq", Agent: "faq_specialist"},
			Ticket:     {Task: "create_ticket", Agent: "ticket_handler"},
			Escalation: {Task: "prepare_escalation", Agent: "escalation_manager"},
		},
		Bindings: map[string][]string{
			"faq_specialist": {"search_knowledge_base"},
		},
		Tools: customerSupportTools,
	}
}

func customerSupportTools(_ context.Context, env *ToolEnv) ([]tool.Tool, error) {
	return []tool.Tool{
		searchTool(env, knowledge.SearchConfig{
			Name:        "search_knowledge_base",
			Description: "Search the product knowledge base for answers from the FAQ and product documentation.",
			Marker:      h2Marker,
			MaxResults:  3,
			MaxRunes:    500,
			NotFound:    "No relevant information found in the knowledge base for: %s",
		}),
	}, nil
}
