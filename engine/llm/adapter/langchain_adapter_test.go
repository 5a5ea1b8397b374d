package llmadapter

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/agentdesk/agentdesk/engine/core"
)

type recordingModel struct {
	messages []llms.MessageContent
	response *llms.ContentResponse
}

func (m *recordingModel) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	_ ...llms.CallOption,
) (*llms.ContentResponse, error) {
	m.messages = messages
	return m.response, nil
}

func (m *recordingModel) Call(context.Context, string, ...llms.CallOption) (string, error) {
	return "", nil
}

func TestLangChainAdapter_GenerateContent(t *testing.T) {
	cfg := core.NewProviderConfig(core.ProviderMock, "test-model", "")

	t.Run("Should convert tool calls in both directions", func(t *testing.T) {
		model := &recordingModel{response: &llms.ContentResponse{Choices: []*llms.ContentChoice{{
			ToolCalls: []llms.ToolCall{{
				ID:           "call-2",
				Type:         "function",
				FunctionCall: &llms.FunctionCall{Name: "lookup_ticket", Arguments: `{"ticket_id":"TKT-001"}`},
			}},
		}}}}
		adapter := NewLangChainAdapterWithModel(model, cfg)
		resp, err := adapter.GenerateContent(t.Context(), &LLMRequest{
			SystemPrompt: "You are helpful.",
			Messages: []Message{
				{Role: RoleUser, Content: "status?"},
				{Role: RoleAssistant, ToolCalls: []ToolCall{{
					ID: "call-1", Name: "lookup_ticket", Arguments: json.RawMessage(`{}`),
				}}},
				{Role: RoleTool, ToolResults: []ToolResult{{ID: "call-1", Name: "lookup_ticket", Content: "ok"}}},
			},
		})
		require.NoError(t, err)
		require.Len(t, model.messages, 4)
		assert.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
		assert.Equal(t, llms.ChatMessageTypeAI, model.messages[2].Role)
		call, ok := model.messages[2].Parts[0].(llms.ToolCall)
		require.True(t, ok)
		assert.Equal(t, "lookup_ticket", call.FunctionCall.Name)
		reply, ok := model.messages[3].Parts[0].(llms.ToolCallResponse)
		require.True(t, ok)
		assert.Equal(t, "call-1", reply.ToolCallID)

		require.Len(t, resp.ToolCalls, 1)
		assert.Equal(t, "call-2", resp.ToolCalls[0].ID)
		assert.JSONEq(t, `{"ticket_id":"TKT-001"}`, string(resp.ToolCalls[0].Arguments))
	})

	t.Run("Should fail on an empty response", func(t *testing.T) {
		adapter := NewLangChainAdapterWithModel(&recordingModel{response: &llms.ContentResponse{}}, cfg)
		_, err := adapter.GenerateContent(t.Context(), &LLMRequest{Messages: []Message{{Role: RoleUser, Content: "x"}}})
		assert.Error(t, err)
	})

	t.Run("Should reject tool calls on non-assistant messages", func(t *testing.T) {
		adapter := NewLangChainAdapterWithModel(&recordingModel{}, cfg)
		_, err := adapter.GenerateContent(t.Context(), &LLMRequest{Messages: []Message{
			{Role: RoleUser, ToolCalls: []ToolCall{{ID: "x"}}},
		}})
		assert.ErrorContains(t, err, "cannot contain ToolCalls")
	})
}

func TestDefaultFactory(t *testing.T) {
	t.Run("Should build an offline client for the mock provider", func(t *testing.T) {
		client, err := NewDefaultFactory().CreateClient(t.Context(), core.NewProviderConfig(core.ProviderMock, "m", ""))
		require.NoError(t, err)
		resp, err := client.GenerateContent(t.Context(), &LLMRequest{
			Messages: []Message{{Role: RoleUser, Content: "hello"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Mock response for: hello", resp.Content)
		assert.NoError(t, client.Close())
	})

	t.Run("Should reject unknown providers", func(t *testing.T) {
		_, err := NewDefaultFactory().CreateClient(t.Context(), core.NewProviderConfig("nope", "m", ""))
		assert.ErrorContains(t, err, "unsupported LLM provider")
	})

	t.Run("Should require an endpoint for azure", func(t *testing.T) {
		_, err := CreateLLMFactory(t.Context(), core.NewProviderConfig(core.ProviderAzure, "gpt-4o", "k"))
		assert.ErrorContains(t, err, "endpoint")
	})
}
