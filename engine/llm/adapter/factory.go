package llmadapter

import (
	"context"
	"fmt"

	"github.com/agentdesk/agentdesk/engine/core"
)

// DefaultFactory is a default implementation of the Factory interface
type DefaultFactory struct{}

func NewDefaultFactory() Factory {
	return &DefaultFactory{}
}

func (f *DefaultFactory) CreateClient(ctx context.Context, config *core.ProviderConfig) (LLMClient, error) {
	if config == nil {
		return nil, fmt.Errorf("provider config must not be nil")
	}
	switch config.Provider {
	case core.ProviderOpenAI, core.ProviderAzure, core.ProviderAnthropic, core.ProviderGroq,
		core.ProviderMock, core.ProviderOllama, core.ProviderDeepSeek:
		return NewLangChainAdapter(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}
}
