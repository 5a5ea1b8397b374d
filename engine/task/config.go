package task

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/agentdesk/agentdesk/engine/core"
)

// Config is one entry of tasks.yaml.
type Config struct {
	Description    string `json:"description"     yaml:"description"     validate:"required"`
	ExpectedOutput string `json:"expected_output" yaml:"expected_output" validate:"required"`
}

// Configs maps task keys to their definitions.
type Configs map[string]*Config

// Vars are literal placeholder substitutions: "{name}" is replaced by the value.
type Vars map[string]string

// Task is a task ready to hand to an agent runner.
type Task struct {
	Key            string
	Description    string
	ExpectedOutput string
}

func Parse(data []byte) (Configs, error) {
	var configs Configs
	if err := yaml.Unmarshal(data, &configs); err != nil {
		return nil, core.NewError(fmt.Errorf("failed to decode tasks: %w", err), core.CodeInvalidConfig, nil)
	}
	v := validator.New()
	for key, cfg := range configs {
		if cfg == nil {
			return nil, core.Errorf(core.CodeInvalidConfig, "task %q is empty", key)
		}
		if err := v.Struct(cfg); err != nil {
			return nil, core.NewError(fmt.Errorf("task %q: %w", key, err), core.CodeInvalidConfig, map[string]any{"task": key})
		}
	}
	return configs, nil
}

// Build renders the task stored under key.
func (c Configs) Build(key string, vars Vars) (*Task, error) {
	cfg, ok := c[key]
	if !ok {
		return nil, core.Errorf(core.CodeUnknownTask, "task %q is not defined", key)
	}
	return &Task{
		Key:            key,
		Description:    Render(cfg.Description, vars),
		ExpectedOutput: cfg.ExpectedOutput,
	}, nil
}

// Render replaces each "{name}" with its value verbatim. Braces and other
// placeholders are left untouched. Names are applied in sorted order.
func Render(text string, vars Vars) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		text = strings.ReplaceAll(text, "{"+name+"}", vars[name])
	}
	return text
}
