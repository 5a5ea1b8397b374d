package llmadapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// MockLLM is an offline llms.Model that echoes the latest user message.
type MockLLM struct {
	model string
}

func NewMockLLM(model string) *MockLLM {
	return &MockLLM{model: model}
}

// GenerateContent never requests tools, so agent runs finish in one turn.
func (m *MockLLM) GenerateContent(
	ctx context.Context,
	messages []llms.MessageContent,
	_ ...llms.CallOption,
) (*llms.ContentResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prompt := lastHumanText(messages)
	text := "Mock agent response: task completed successfully"
	if prompt != "" {
		text = fmt.Sprintf("Mock response for: %s", prompt)
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: text}},
	}, nil
}

// Call implements the legacy Call interface
func (m *MockLLM) Call(_ context.Context, prompt string, _ ...llms.CallOption) (string, error) {
	return fmt.Sprintf("Mock response for: %s", prompt), nil
}

func lastHumanText(messages []llms.MessageContent) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != llms.ChatMessageTypeHuman {
			continue
		}
		var sb strings.Builder
		for _, part := range messages[i].Parts {
			if text, ok := part.(llms.TextContent); ok {
				sb.WriteString(text.Text)
			}
		}
		return strings.TrimSpace(sb.String())
	}
	return ""
}
