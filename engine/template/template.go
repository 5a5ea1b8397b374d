// Package template defines the routed agent templates: how a request is
// classified, which specialist handles each category, and which tools
// each agent may call.
package template

import (
	"context"
	"fmt"
	"sort"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/tool"
)

// ClassifierAgent is the agents.yaml key of every template's classifier.
const ClassifierAgent = "classifier"

// Route names the task and agent that handle one category.
type Route struct {
	Task  string
	Agent string
}

// Template is a classify-then-route pipeline definition.
type Template struct {
	Name string
	// Title is printed as the interactive banner.
	Title string
	// Prompt labels the interactive input line, e.g. "Employee".
	Prompt       string
	ClassifyTask string
	Normalizer   *category.Normalizer
	Routes       map[category.Category]Route
	// Bindings lists the tool names available to each specialist agent.
	Bindings map[string][]string
	// Tools builds every tool the template's agents may bind.
	Tools func(ctx context.Context, env *ToolEnv) ([]tool.Tool, error)
}

func (t *Template) Categories() category.Set {
	return t.Normalizer.Set()
}

// Validate checks that every category is routed and every route's agent
// binds only tools the template provides.
func (t *Template) Validate(tools *tool.Registry) error {
	for _, c := range t.Categories() {
		route, ok := t.Routes[c]
		if !ok {
			return fmt.Errorf("template %s: category %s has no route", t.Name, c)
		}
		if route.Task == "" || route.Agent == "" {
			return fmt.Errorf("template %s: category %s has an incomplete route", t.Name, c)
		}
	}
	if tools == nil {
		return nil
	}
	for agentKey, names := range t.Bindings {
		if _, err := tools.Resolve(names...); err != nil {
			return fmt.Errorf("template %s: agent %s: %w", t.Name, agentKey, err)
		}
	}
	return nil
}

// ToolNames returns every tool name bound to any agent, sorted.
func (t *Template) ToolNames() []string {
	seen := make(map[string]struct{})
	for _, names := range t.Bindings {
		for _, n := range names {
			seen[n] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
