package llm

import (
	"github.com/agentdesk/agentdesk/engine/core"
	llmadapter "github.com/agentdesk/agentdesk/engine/llm/adapter"
	"github.com/agentdesk/agentdesk/engine/metrics"
	"github.com/agentdesk/agentdesk/pkg/config"
)

const defaultMaxToolIterations = 8

// Config represents the configuration for the executor
type Config struct {
	// Provider is the base provider config; the model is replaced per agent.
	Provider *core.ProviderConfig
	// MaxToolIterations caps model turns that request tools per run.
	MaxToolIterations int
	Temperature       float64
	// LLMFactory creates clients; defaults to the langchaingo adapter.
	LLMFactory llmadapter.Factory
	Metrics    *metrics.Recorder
}

// Option represents a configuration option
type Option func(*Config)

func WithFactory(factory llmadapter.Factory) Option {
	return func(c *Config) {
		c.LLMFactory = factory
	}
}

func WithMaxToolIterations(n int) Option {
	return func(c *Config) {
		c.MaxToolIterations = n
	}
}

func WithMetrics(rec *metrics.Recorder) Option {
	return func(c *Config) {
		c.Metrics = rec
	}
}

// ProviderFromConfig derives the base provider settings from application config.
func ProviderFromConfig(cfg *config.Config) *core.ProviderConfig {
	p := &core.ProviderConfig{
		Provider: core.ProviderName(cfg.LLM.Provider),
		Model:    cfg.MainModel(),
		APIKey:   cfg.LLM.APIKey.Value(),
		APIURL:   cfg.LLM.APIURL,
		Params:   core.PromptParams{Temperature: cfg.LLM.Temperature},
	}
	if p.Provider == core.ProviderAzure {
		p.APIURL = cfg.Azure.Endpoint
		p.APIVersion = cfg.Azure.APIVersion
		if key := cfg.Azure.APIKey.Value(); key != "" {
			p.APIKey = key
		}
	}
	return p
}

// ConfigFromApp builds executor settings from application config.
func ConfigFromApp(cfg *config.Config, opts ...Option) *Config {
	c := &Config{
		Provider:          ProviderFromConfig(cfg),
		MaxToolIterations: cfg.LLM.MaxToolIterations,
		Temperature:       cfg.LLM.Temperature,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
