package template

import (
	"context"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/engine/tool/knowledge"
	"github.com/agentdesk/agentdesk/engine/tool/onboarding"
	"github.com/agentdesk/agentdesk/engine/tool/record"
)

const (
	DocumentCollection category.Category = "document_collection"
	ITSetup            category.Category = "it_setup"
	TrainingSchedule   category.Category = "training_schedule"
	BuddyMatch         category.Category = "buddy_match"
)

func HROnboarding() *Template {
	set := category.NewSet(DocumentCollection, ITSetup, TrainingSchedule, BuddyMatch)
	return &Template{
		Name:         "hr-onboarding",
		Title:        "AI HR Onboarding Assistant",
		Prompt:       "New Hire",
		ClassifyTask: "classify_request",
		Normalizer: category.TwoStage(set, DocumentCollection, []category.KeywordSet{
			{Category: DocumentCollection, Keywords: []string{
				"document", "contract", "tax", "w-4", "i-9", "bank", "payroll",
				"benefits", "enrollment", "id verification", "emergency contact",
			}},
			{Category: ITSetup, Keywords: []string{
				"laptop", "email", "account", "vpn", "badge", "software",
				"permission", "access", "it ", "computer", "setup",
			}},
			{Category: TrainingSchedule, Keywords: []string{
				"training", "orientation", "compliance", "course", "e-learning",
				"schedule", "learn", "class", "workshop", "onboarding plan",
			}},
			{Category: BuddyMatch, Keywords: []string{
				"buddy", "mentor", "introduction", "welcome", "team",
				"social", "lunch", "tour", "meet",
			}},
		}),
		Routes: map[category.Category]Route{
			DocumentCollection: {Task: "collect_documents", Agent: "document_collector"},
			ITSetup:            {Task: "coordinate_it_setup", Agent: "it_setup_coordinator"},
			TrainingSchedule:   {Task: "schedule_training", Agent: "training_scheduler"},
			BuddyMatch:         {Task: "match_buddy", Agent: "buddy_matcher"},
		},
		Bindings: map[string][]string{
			"document_collector":   {"search_onboarding_guide", "lookup_employee"},
			"it_setup_coordinator": {"search_onboarding_guide", "lookup_employee"},
			"training_scheduler":   {"search_onboarding_guide", "check_onboarding_status"},
			"buddy_matcher":        {"search_onboarding_guide", "lookup_employee"},
		},
		Tools: hrOnboardingTools,
	}
}

func hrOnboardingTools(ctx context.Context, env *ToolEnv) ([]tool.Tool, error) {
	return collect(
		ready(searchTool(env, knowledge.SearchConfig{
			Name:        "search_onboarding_guide",
			Description: "Search the onboarding guide for policies, checklists, and procedures.",
			Marker:      h3Marker,
			MaxResults:  defaultResults,
			MaxRunes:    defaultRunes,
			Snippet:     true,
			NotFound:    "No onboarding guide articles found for: %s",
		})),
		func() (tool.Tool, error) {
			return lookupTool(ctx, env, "employees", record.LookupConfig{
				Name:        "lookup_employee",
				Description: "Look up a new hire's onboarding record by employee ID (e.g., EMP-001).",
				Argument:    "employee_id",
				Entity:      "Employee",
				Plural:      "employees",
				Key:         record.UpperKey,
			})
		},
		func() (tool.Tool, error) {
			entries, err := env.Entries("departments")
			if err != nil {
				return nil, err
			}
			departments, err := onboarding.Departments(entries)
			if err != nil {
				return nil, err
			}
			return onboarding.NewStatusTool(
				"check_onboarding_status",
				"Check the onboarding pipeline for a department, or 'all' for company-wide status.",
				departments,
			), nil
		},
	)
}
