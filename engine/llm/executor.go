// Package llm runs agent tasks against a chat model, executing the tools the
// model requests until it produces a final answer.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/segmentio/ksuid"

	"github.com/agentdesk/agentdesk/engine/agent"
	"github.com/agentdesk/agentdesk/engine/core"
	llmadapter "github.com/agentdesk/agentdesk/engine/llm/adapter"
	"github.com/agentdesk/agentdesk/engine/task"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/pkg/logger"
)

const expectedOutputPrefix = "This is the expected criteria for your final answer: "

// Executor implements agent.Runner on top of an llmadapter.Factory.
type Executor struct {
	cfg     Config
	mu      sync.Mutex
	clients map[string]llmadapter.LLMClient
}

var _ agent.Runner = (*Executor)(nil)

func NewExecutor(cfg *Config) *Executor {
	c := *cfg
	if c.LLMFactory == nil {
		c.LLMFactory = llmadapter.NewDefaultFactory()
	}
	if c.MaxToolIterations <= 0 {
		c.MaxToolIterations = defaultMaxToolIterations
	}
	if c.Provider == nil {
		c.Provider = core.NewProviderConfig(core.ProviderMock, "mock", "")
	}
	return &Executor{cfg: c, clients: make(map[string]llmadapter.LLMClient)}
}

// Run executes t with a and returns the model's final text.
func (e *Executor) Run(ctx context.Context, a *agent.Agent, t *task.Task) (string, error) {
	log := logger.FromContext(ctx).With("agent", a.Key, "task", t.Key, "model", a.Model)
	trace := log.Debug
	if a.Verbose {
		trace = log.Info
	}
	client, err := e.client(ctx, a.Model)
	if err != nil {
		return "", err
	}
	req := &llmadapter.LLMRequest{
		SystemPrompt: a.SystemPrompt(),
		Messages:     []llmadapter.Message{{Role: llmadapter.RoleUser, Content: UserPrompt(t)}},
		Tools:        toolDefinitions(a.Tools),
		Options:      llmadapter.CallOptions{Temperature: e.cfg.Temperature},
	}
	tools := indexTools(a.Tools)
	trace("Agent started", "tools", a.ToolNames())
	for i := 0; i < e.cfg.MaxToolIterations; i++ {
		resp, err := client.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf("agent %s: %w", a.Key, err)
		}
		if len(resp.ToolCalls) == 0 {
			trace("Agent finished", "iterations", i+1)
			return resp.Content, nil
		}
		calls := withIDs(resp.ToolCalls)
		req.Messages = append(req.Messages, llmadapter.Message{
			Role:      llmadapter.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: calls,
		})
		results := make([]llmadapter.ToolResult, 0, len(calls))
		for _, call := range calls {
			results = append(results, e.executeTool(ctx, tools, call, trace))
		}
		req.Messages = append(req.Messages, llmadapter.Message{
			Role:        llmadapter.RoleTool,
			ToolResults: results,
		})
	}
	return "", core.Errorf(core.CodeToolLoopExhausted,
		"agent %s exceeded %d tool iterations", a.Key, e.cfg.MaxToolIterations)
}

// Close releases every cached model client.
func (e *Executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	var firstErr error
	for model, c := range e.clients {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(e.clients, model)
	}
	return firstErr
}

func (e *Executor) client(ctx context.Context, model string) (llmadapter.LLMClient, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.clients[model]; ok {
		return c, nil
	}
	c, err := e.cfg.LLMFactory.CreateClient(ctx, e.cfg.Provider.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", model, err)
	}
	e.clients[model] = c
	return c, nil
}

func (e *Executor) executeTool(
	ctx context.Context,
	tools map[string]tool.Tool,
	call llmadapter.ToolCall,
	trace func(string, ...any),
) llmadapter.ToolResult {
	result := llmadapter.ToolResult{ID: call.ID, Name: call.Name}
	t, ok := tools[call.Name]
	if !ok {
		err := tool.NotFound(call.Name)
		e.cfg.Metrics.RecordToolCall(call.Name, err)
		result.Content = "Error: " + err.Error()
		return result
	}
	input := ToolInput(t, call.Arguments)
	trace("Calling tool", "tool", call.Name, "input", input)
	out, err := t.Call(ctx, input)
	e.cfg.Metrics.RecordToolCall(call.Name, err)
	if err != nil {
		logger.FromContext(ctx).Warn("Tool failed", "tool", call.Name, "error", err)
		result.Content = "Error: " + err.Error()
		return result
	}
	result.Content = out
	return result
}

// UserPrompt renders the task as the first user turn.
func UserPrompt(t *task.Task) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(t.Description))
	if expected := strings.TrimSpace(t.ExpectedOutput); expected != "" {
		b.WriteString("\n\n")
		b.WriteString(expectedOutputPrefix)
		b.WriteString(expected)
	}
	return b.String()
}

// ToolInput extracts the single string argument a tool expects from the
// model's JSON arguments. Non-object payloads are passed through as text.
func ToolInput(t tool.Tool, raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(trimmed), &args); err != nil {
		var s string
		if json.Unmarshal([]byte(trimmed), &s) == nil {
			return s
		}
		return trimmed
	}
	if named, ok := t.(interface{ Argument() string }); ok {
		if v, found := args[named.Argument()]; found {
			return stringify(v)
		}
	}
	if len(args) == 1 {
		for _, v := range args {
			return stringify(v)
		}
	}
	return ""
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

func toolDefinitions(tools []tool.Tool) []llmadapter.ToolDefinition {
	defs := make([]llmadapter.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, llmadapter.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.ParameterSchema(),
		})
	}
	return defs
}

func indexTools(tools []tool.Tool) map[string]tool.Tool {
	m := make(map[string]tool.Tool, len(tools))
	for _, t := range tools {
		m[t.Name()] = t
	}
	return m
}

// withIDs fills in call IDs some providers omit, so results can be matched.
func withIDs(calls []llmadapter.ToolCall) []llmadapter.ToolCall {
	out := make([]llmadapter.ToolCall, len(calls))
	for i, c := range calls {
		if c.ID == "" {
			c.ID = "call_" + ksuid.New().String()
		}
		out[i] = c
	}
	return out
}
