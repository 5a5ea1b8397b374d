package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdesk/agentdesk/engine/agent"
	"github.com/agentdesk/agentdesk/engine/core"
	llmadapter "github.com/agentdesk/agentdesk/engine/llm/adapter"
	"github.com/agentdesk/agentdesk/engine/task"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/pkg/config"
)

type scriptedClient struct {
	responses []*llmadapter.LLMResponse
	requests  []llmadapter.LLMRequest
	err       error
}

func (c *scriptedClient) GenerateContent(_ context.Context, req *llmadapter.LLMRequest) (*llmadapter.LLMResponse, error) {
	snapshot := *req
	snapshot.Messages = append([]llmadapter.Message(nil), req.Messages...)
	c.requests = append(c.requests, snapshot)
	if c.err != nil {
		return nil, c.err
	}
	if len(c.responses) == 0 {
		return &llmadapter.LLMResponse{Content: "done"}, nil
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func (c *scriptedClient) Close() error { return nil }

type scriptedFactory struct {
	client *scriptedClient
	models []string
}

func (f *scriptedFactory) CreateClient(_ context.Context, cfg *core.ProviderConfig) (llmadapter.LLMClient, error) {
	f.models = append(f.models, cfg.Model)
	return f.client, nil
}

func testAgent(tools ...tool.Tool) *agent.Agent {
	return &agent.Agent{
		Key:    "it_support",
		Config: agent.Config{Role: "IT Support", Goal: "Fix things", Backstory: "Veteran."},
		Model:  "gpt-4o",
		Tools:  tools,
	}
}

func testTask() *task.Task {
	return &task.Task{Key: "handle", Description: "Help with: printer", ExpectedOutput: "A fix"}
}

func TestExecutor_Run(t *testing.T) {
	t.Run("Should return text when no tools are requested", func(t *testing.T) {
		client := &scriptedClient{responses: []*llmadapter.LLMResponse{{Content: "password_reset"}}}
		factory := &scriptedFactory{client: client}
		exec := NewExecutor(&Config{LLMFactory: factory})
		out, err := exec.Run(t.Context(), testAgent(), testTask())
		require.NoError(t, err)
		assert.Equal(t, "password_reset", out)
		assert.Equal(t, []string{"gpt-4o"}, factory.models)
		require.Len(t, client.requests, 1)
		assert.Contains(t, client.requests[0].SystemPrompt, "You are IT Support.")
		assert.Equal(t, "Help with: printer\n\n"+expectedOutputPrefix+"A fix", client.requests[0].Messages[0].Content)
	})

	t.Run("Should execute requested tools and feed results back", func(t *testing.T) {
		var got string
		lookup := tool.New("lookup_ticket", "Look up a ticket", "ticket_id", func(_ context.Context, in string) (string, error) {
			got = in
			return "**Status**: Open", nil
		})
		client := &scriptedClient{responses: []*llmadapter.LLMResponse{
			{ToolCalls: []llmadapter.ToolCall{{ID: "c1", Name: "lookup_ticket", Arguments: json.RawMessage(`{"ticket_id":"tkt-001"}`)}}},
			{Content: "Ticket is open"},
		}}
		exec := NewExecutor(&Config{LLMFactory: &scriptedFactory{client: client}})
		out, err := exec.Run(t.Context(), testAgent(lookup), testTask())
		require.NoError(t, err)
		assert.Equal(t, "Ticket is open", out)
		assert.Equal(t, "tkt-001", got)
		require.Len(t, client.requests, 2)
		last := client.requests[1].Messages
		require.Len(t, last, 3)
		assert.Equal(t, llmadapter.RoleTool, last[2].Role)
		assert.Equal(t, "**Status**: Open", last[2].ToolResults[0].Content)
		assert.Equal(t, "c1", last[2].ToolResults[0].ID)
	})

	t.Run("Should report unknown tools back to the model", func(t *testing.T) {
		client := &scriptedClient{responses: []*llmadapter.LLMResponse{
			{ToolCalls: []llmadapter.ToolCall{{Name: "ghost", Arguments: json.RawMessage(`{}`)}}},
		}}
		exec := NewExecutor(&Config{LLMFactory: &scriptedFactory{client: client}})
		_, err := exec.Run(t.Context(), testAgent(), testTask())
		require.NoError(t, err)
		result := client.requests[1].Messages[2].ToolResults[0]
		assert.True(t, strings.HasPrefix(result.Content, "Error: "))
		assert.NotEmpty(t, result.ID)
	})

	t.Run("Should stop after the iteration budget", func(t *testing.T) {
		loop := &llmadapter.LLMResponse{ToolCalls: []llmadapter.ToolCall{{ID: "c", Name: "noop"}}}
		client := &scriptedClient{responses: []*llmadapter.LLMResponse{loop, loop, loop}}
		noop := tool.New("noop", "does nothing", "", func(context.Context, string) (string, error) { return "ok", nil })
		exec := NewExecutor(&Config{LLMFactory: &scriptedFactory{client: client}, MaxToolIterations: 2})
		_, err := exec.Run(t.Context(), testAgent(noop), testTask())
		require.Error(t, err)
		assert.True(t, core.HasCode(err, core.CodeToolLoopExhausted))
	})

	t.Run("Should propagate model errors", func(t *testing.T) {
		boom := errors.New("rate limited")
		exec := NewExecutor(&Config{LLMFactory: &scriptedFactory{client: &scriptedClient{err: boom}}})
		_, err := exec.Run(t.Context(), testAgent(), testTask())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Should reuse one client per model", func(t *testing.T) {
		factory := &scriptedFactory{client: &scriptedClient{}}
		exec := NewExecutor(&Config{LLMFactory: factory})
		for range 2 {
			_, err := exec.Run(t.Context(), testAgent(), testTask())
			require.NoError(t, err)
		}
		assert.Len(t, factory.models, 1)
		assert.NoError(t, exec.Close())
	})
}

func TestToolInput(t *testing.T) {
	named := tool.New("lookup_order", "", "order_id", nil)
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"Should pick the named argument", `{"order_id":"ORD-1","extra":"x"}`, "ORD-1"},
		{"Should fall back to a single value", `{"query":"vpn"}`, "vpn"},
		{"Should pass plain text through", `ORD-9`, "ORD-9"},
		{"Should unquote a JSON string", `"ORD-7"`, "ORD-7"},
		{"Should return empty for no arguments", ``, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToolInput(named, json.RawMessage(tc.raw)))
		})
	}
}

func TestProviderFromConfig(t *testing.T) {
	t.Run("Should use azure deployment settings", func(t *testing.T) {
		cfg := config.Default()
		cfg.LLM.Provider = "azure"
		cfg.Azure.Endpoint = "https://example.openai.azure.com"
		cfg.Azure.APIKey = "secret"
		cfg.Azure.Deployment = "prod-4o"
		p := ProviderFromConfig(cfg)
		assert.Equal(t, core.ProviderAzure, p.Provider)
		assert.Equal(t, "prod-4o", p.Model)
		assert.Equal(t, "https://example.openai.azure.com", p.APIURL)
		assert.Equal(t, "secret", p.APIKey)
		assert.Equal(t, "2024-06-01", p.APIVersion)
	})

	t.Run("Should carry tool iteration limits", func(t *testing.T) {
		cfg := config.Default()
		cfg.LLM.MaxToolIterations = 3
		assert.Equal(t, 3, ConfigFromApp(cfg).MaxToolIterations)
	})
}
