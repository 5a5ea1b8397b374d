package llmadapter

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/agentdesk/agentdesk/engine/core"
)

// CreateLLMFactory creates an LLM instance based on the provider configuration
func CreateLLMFactory(_ context.Context, provider *core.ProviderConfig) (llms.Model, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider config must not be nil")
	}
	switch provider.Provider {
	case core.ProviderOpenAI:
		return createOpenAILLM(provider)
	case core.ProviderAzure:
		return createAzureLLM(provider)
	case core.ProviderAnthropic:
		return createAnthropicLLM(provider)
	case core.ProviderGroq:
		return createCompatibleLLM(provider, "https://api.groq.com/openai/v1")
	case core.ProviderDeepSeek:
		return createCompatibleLLM(provider, "https://api.deepseek.com/v1")
	case core.ProviderOllama:
		return createOllamaLLM(provider)
	case core.ProviderMock:
		return NewMockLLM(provider.Model), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider.Provider)
	}
}

func createOpenAILLM(p *core.ProviderConfig) (llms.Model, error) {
	opts := []openai.Option{
		openai.WithModel(p.Model),
	}
	if p.APIKey != "" {
		opts = append(opts, openai.WithToken(p.APIKey))
	}
	if p.APIURL != "" {
		opts = append(opts, openai.WithBaseURL(p.APIURL))
	}
	return openai.New(opts...)
}

// createAzureLLM targets an Azure OpenAI deployment; Model is the deployment name.
func createAzureLLM(p *core.ProviderConfig) (llms.Model, error) {
	if p.APIURL == "" {
		return nil, fmt.Errorf("azure provider requires an endpoint")
	}
	opts := []openai.Option{
		openai.WithAPIType(openai.APITypeAzure),
		openai.WithModel(p.Model),
		openai.WithBaseURL(p.APIURL),
	}
	if p.APIKey != "" {
		opts = append(opts, openai.WithToken(p.APIKey))
	}
	if p.APIVersion != "" {
		opts = append(opts, openai.WithAPIVersion(p.APIVersion))
	}
	return openai.New(opts...)
}

func createAnthropicLLM(p *core.ProviderConfig) (llms.Model, error) {
	opts := []anthropic.Option{
		anthropic.WithModel(p.Model),
	}
	if p.APIKey != "" {
		opts = append(opts, anthropic.WithToken(p.APIKey))
	}
	if p.APIURL != "" {
		opts = append(opts, anthropic.WithBaseURL(p.APIURL))
	}
	return anthropic.New(opts...)
}

// createCompatibleLLM serves OpenAI-compatible APIs behind a fixed default URL.
func createCompatibleLLM(p *core.ProviderConfig, defaultURL string) (llms.Model, error) {
	baseURL := defaultURL
	if p.APIURL != "" {
		baseURL = p.APIURL
	}
	opts := []openai.Option{
		openai.WithModel(p.Model),
		openai.WithBaseURL(baseURL),
	}
	if p.APIKey != "" {
		opts = append(opts, openai.WithToken(p.APIKey))
	}
	return openai.New(opts...)
}

func createOllamaLLM(p *core.ProviderConfig) (llms.Model, error) {
	opts := []ollama.Option{
		ollama.WithModel(p.Model),
	}
	if p.APIURL != "" {
		opts = append(opts, ollama.WithServerURL(p.APIURL))
	}
	return ollama.New(opts...)
}
