package template

import (
	"context"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/engine/tool/knowledge"
	"github.com/agentdesk/agentdesk/engine/tool/record"
)

const (
	PasswordReset category.Category = "password_reset"
	SoftwareIssue category.Category = "software_issue"
	NetworkIssue  category.Category = "network_issue"
	HardwareIssue category.Category = "hardware_issue"
)

func ITHelpdesk() *Template {
	set := category.NewSet(PasswordReset, SoftwareIssue, NetworkIssue, HardwareIssue)
	return &Template{
		Name:         "it-helpdesk",
		Title:        "AI IT Helpdesk",
		Prompt:       "Employee",
		ClassifyTask: "classify_request",
		Normalizer: category.TwoStage(set, SoftwareIssue, []category.KeywordSet{
			{Category: PasswordReset, Keywords: []string{"password", "lockout", "locked", "mfa", "login"}},
			{Category: SoftwareIssue, Keywords: []string{"software", "install", "crash", "update", "app"}},
			{Category: NetworkIssue, Keywords: []string{
				"network", "vpn", "wifi", "wi-fi", "internet", "dns", "connectivity",
			}},
			{Category: HardwareIssue, Keywords: []string{
				"hardware", "laptop", "printer", "monitor", "keyboard", "mouse",
			}},
		}),
		Routes: map[category.Category]Route{
			PasswordReset: {Task: "reset_password", Agent: "password_reset"},
			SoftwareIssue: {Task: "troubleshoot_software", Agent: "software_troubleshooter"},
			NetworkIssue:  {Task: "diagnose_network", Agent: "network_support"},
			HardwareIssue: {Task: "handle_hardware", Agent: "hardware_support"},
		},
		Bindings: map[string][]string{
			"password_reset":          {"search_knowledge_base", "lookup_ticket"},
			"software_troubleshooter": {"search_knowledge_base", "lookup_ticket"},
			"network_support":         {"search_knowledge_base", "check_system_status"},
			"hardware_support":        {"search_knowledge_base", "lookup_ticket"},
		},
		Tools: itHelpdeskTools,
	}
}

func itHelpdeskTools(ctx context.Context, env *ToolEnv) ([]tool.Tool, error) {
	return collect(
		ready(searchTool(env, knowledge.SearchConfig{
			Name:        "search_knowledge_base",
			Description: "Search the IT knowledge base for troubleshooting guides, FAQs, and step-by-step procedures.",
			Marker:      h3Marker,
			MaxResults:  defaultResults,
			MaxRunes:    defaultRunes,
			NotFound:    "No knowledge base articles found for: %s",
		})),
		func() (tool.Tool, error) {
			return lookupTool(ctx, env, "tickets", record.LookupConfig{
				Name:        "lookup_ticket",
				Description: "Look up an existing IT support ticket by ticket ID (e.g., TKT-001).",
				Argument:    "ticket_id",
				Entity:      "Ticket",
				Plural:      "tickets",
				Key:         record.UpperKey,
			})
		},
		func() (tool.Tool, error) {
			return lookupTool(ctx, env, "services", record.LookupConfig{
				Name:        "check_system_status",
				Description: "Check the current status of an IT service (e.g., vpn, email, teams, wifi, erp).",
				Argument:    "service_name",
				Entity:      "Service",
				Plural:      "services",
				Key:         record.SnakeKey,
			})
		},
	)
}
