package template

import (
	"context"
	"fmt"

	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/engine/tool/knowledge"
	"github.com/agentdesk/agentdesk/engine/tool/record"
)

// section search defaults shared by most templates
const (
	h3Marker       = "\n### "
	h2Marker       = "\n## "
	defaultResults = 10
	defaultRunes   = 800
)

func searchTool(env *ToolEnv, cfg knowledge.SearchConfig) tool.Tool {
	if cfg.Argument == "" {
		cfg.Argument = "query"
	}
	return knowledge.NewSearchTool(cfg, env.Corpus())
}

func lookupTool(ctx context.Context, env *ToolEnv, table string, cfg record.LookupConfig) (tool.Tool, error) {
	repo, err := env.Repository(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", cfg.Name, err)
	}
	return record.NewLookupTool(cfg, repo), nil
}

// collect builds tools in order and stops at the first error.
func collect(builders ...func() (tool.Tool, error)) ([]tool.Tool, error) {
	tools := make([]tool.Tool, 0, len(builders))
	for _, build := range builders {
		t, err := build()
		if err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, nil
}

func ready(t tool.Tool) func() (tool.Tool, error) {
	return func() (tool.Tool, error) { return t, nil }
}
