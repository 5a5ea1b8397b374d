package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/agentdesk/agentdesk/engine/core"
	"github.com/agentdesk/agentdesk/engine/task"
	"github.com/agentdesk/agentdesk/engine/tool"
)

// Config is one entry of agents.yaml.
type Config struct {
	Role      string `json:"role"      yaml:"role"      validate:"required"`
	Goal      string `json:"goal"      yaml:"goal"      validate:"required"`
	Backstory string `json:"backstory" yaml:"backstory" validate:"required"`
}

// Configs maps agent keys to their definitions.
type Configs map[string]*Config

// Agent is a configured agent bound to a model and its tools.
type Agent struct {
	Key     string
	Config  Config
	Model   string
	Tools   []tool.Tool
	Verbose bool
}

// Runner executes a task with an agent and returns the raw response text.
type Runner interface {
	Run(ctx context.Context, a *Agent, t *task.Task) (string, error)
}

func Parse(data []byte) (Configs, error) {
	var configs Configs
	if err := yaml.Unmarshal(data, &configs); err != nil {
		return nil, core.NewError(fmt.Errorf("failed to decode agents: %w", err), core.CodeInvalidConfig, nil)
	}
	v := validator.New()
	for key, cfg := range configs {
		if cfg == nil {
			return nil, core.Errorf(core.CodeInvalidConfig, "agent %q is empty", key)
		}
		if err := v.Struct(cfg); err != nil {
			return nil, core.NewError(fmt.Errorf("agent %q: %w", key, err), core.CodeInvalidConfig, map[string]any{"agent": key})
		}
	}
	return configs, nil
}

// Build binds the agent stored under key to a model and tools.
func (c Configs) Build(key, model string, tools []tool.Tool, verbose bool) (*Agent, error) {
	cfg, ok := c[key]
	if !ok {
		return nil, core.Errorf(core.CodeUnknownAgent, "agent %q is not defined", key)
	}
	return &Agent{
		Key:     key,
		Config:  *cfg,
		Model:   model,
		Tools:   tools,
		Verbose: verbose,
	}, nil
}

// SystemPrompt renders role, goal, and backstory for the model.
func (a *Agent) SystemPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s.\n", strings.TrimSpace(a.Config.Role))
	fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(a.Config.Backstory))
	fmt.Fprintf(&b, "Your personal goal is: %s", strings.TrimSpace(a.Config.Goal))
	return b.String()
}

func (a *Agent) ToolNames() []string {
	names := make([]string, len(a.Tools))
	for i, t := range a.Tools {
		names[i] = t.Name()
	}
	return names
}
