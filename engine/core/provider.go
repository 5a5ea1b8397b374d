package core

import "fmt"

// ProviderName represents the name of a model provider
type ProviderName string

const (
	ProviderOpenAI    ProviderName = "openai"
	ProviderAzure     ProviderName = "azure"
	ProviderGroq      ProviderName = "groq"
	ProviderAnthropic ProviderName = "anthropic"
	ProviderOllama    ProviderName = "ollama"
	ProviderDeepSeek  ProviderName = "deepseek"
	ProviderMock      ProviderName = "mock"
)

type PromptParams struct {
	MaxTokens   int     `json:"max_tokens,omitempty"  yaml:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
}

// ProviderConfig represents provider-specific configuration options
type ProviderConfig struct {
	Provider   ProviderName `json:"provider"              yaml:"provider"`
	Model      string       `json:"model"                 yaml:"model"`
	APIKey     string       `json:"api_key"               yaml:"api_key"`
	APIURL     string       `json:"api_url"               yaml:"api_url"`
	APIVersion string       `json:"api_version,omitempty" yaml:"api_version,omitempty"`
	Params     PromptParams `json:"params"                yaml:"params"`
}

func NewProviderConfig(provider ProviderName, model string, apiKey string) *ProviderConfig {
	return &ProviderConfig{
		Provider: provider,
		Model:    model,
		APIKey:   apiKey,
	}
}

// WithModel returns a copy targeting a different model.
func (p *ProviderConfig) WithModel(model string) *ProviderConfig {
	clone := *p
	clone.Model = model
	return &clone
}

func (p *ProviderConfig) String() string {
	return fmt.Sprintf("%s/%s", p.Provider, p.Model)
}
