// Package tool defines the stub tools agents may call and the registry
// that binds them to templates.
package tool

import (
	"context"
)

// Tool is a single-argument function exposed to an agent.
type Tool interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (string, error)
	ParameterSchema() map[string]any
}

// Func adapts a plain function into a Tool.
type Func struct {
	name        string
	description string
	argument    string
	fn          func(ctx context.Context, input string) (string, error)
}

// New creates a tool whose single string parameter is named argument.
// An empty argument means the tool takes no input.
func New(name, description, argument string, fn func(ctx context.Context, input string) (string, error)) *Func {
	return &Func{name: name, description: description, argument: argument, fn: fn}
}

func (f *Func) Name() string {
	return f.name
}

func (f *Func) Description() string {
	return f.description
}

func (f *Func) Call(ctx context.Context, input string) (string, error) {
	return f.fn(ctx, input)
}

func (f *Func) Argument() string {
	return f.argument
}

func (f *Func) ParameterSchema() map[string]any {
	if f.argument == "" {
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			f.argument: map[string]any{"type": "string"},
		},
		"required": []string{f.argument},
	}
}
