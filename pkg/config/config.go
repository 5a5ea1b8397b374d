package config

import "strings"

// Config is the root configuration for agentdesk.
type Config struct {
	LLM       LLMConfig       `koanf:"llm"`
	Azure     AzureConfig     `koanf:"azure"`
	Runtime   RuntimeConfig   `koanf:"runtime"`
	Templates TemplatesConfig `koanf:"templates"`
	Store     StoreConfig     `koanf:"store"`
}

// LLMConfig selects the model provider and the two model tiers used by the pipelines.
type LLMConfig struct {
	Provider          string          `koanf:"provider"            env:"LLM_PROVIDER"            validate:"oneof=openai azure anthropic groq ollama deepseek mock"`
	Model             string          `koanf:"model"               env:"MODEL"                   validate:"required"`
	ClassifierModel   string          `koanf:"classifier_model"    env:"CLASSIFIER_MODEL"        validate:"required"`
	APIKey            SensitiveString `koanf:"api_key"             env:"LLM_API_KEY"             sensitive:"true"`
	APIURL            string          `koanf:"api_url"             env:"LLM_API_URL"`
	Temperature       float64         `koanf:"temperature"         env:"LLM_TEMPERATURE"         validate:"min=0,max=2"`
	MaxToolIterations int             `koanf:"max_tool_iterations" env:"LLM_MAX_TOOL_ITERATIONS" validate:"min=1,max=64"`
}

// AzureConfig holds Azure OpenAI settings, used when the provider is "azure".
type AzureConfig struct {
	Endpoint       string          `koanf:"endpoint"        env:"AZURE_OPENAI_ENDPOINT"`
	APIKey         SensitiveString `koanf:"api_key"         env:"AZURE_OPENAI_API_KEY"         sensitive:"true"`
	Deployment     string          `koanf:"deployment"      env:"AZURE_OPENAI_DEPLOYMENT"`
	MiniDeployment string          `koanf:"mini_deployment" env:"AZURE_OPENAI_MINI_DEPLOYMENT"`
	APIVersion     string          `koanf:"api_version"     env:"AZURE_OPENAI_API_VERSION"`
}

// RuntimeConfig contains runtime behavior configuration.
type RuntimeConfig struct {
	Verbose  Flag   `koanf:"verbose"   env:"VERBOSE"`
	LogLevel string `koanf:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error disabled"`
	LogJSON  bool   `koanf:"log_json"  env:"LOG_JSON"`
}

// TemplatesConfig points at an on-disk template tree. Empty means the embedded assets.
type TemplatesConfig struct {
	Dir string `koanf:"dir" env:"TEMPLATES_DIR"`
}

// StoreConfig selects where keyed stub records are read from.
type StoreConfig struct {
	Driver      string          `koanf:"driver"         env:"STORE_DRIVER"         validate:"oneof=memory redis"`
	RedisAddr   string          `koanf:"redis_addr"     env:"REDIS_ADDR"`
	RedisPass   SensitiveString `koanf:"redis_password" env:"REDIS_PASSWORD"       sensitive:"true"`
	RedisDB     int             `koanf:"redis_db"       env:"REDIS_DB"             validate:"min=0"`
	RedisPrefix string          `koanf:"redis_prefix"   env:"REDIS_PREFIX"`
}

// SensitiveString masks its value when printed.
type SensitiveString string

func (s SensitiveString) String() string {
	if s == "" {
		return ""
	}
	return "********"
}

func (s SensitiveString) Value() string {
	return string(s)
}

// Flag is a boolean that accepts only a case-insensitive "true" as true.
// Any other string, including "1" or "yes", decodes to false.
type Flag bool

func ParseFlag(s string) Flag {
	return Flag(strings.EqualFold(strings.TrimSpace(s), "true"))
}

func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:          "openai",
			Model:             "gpt-4o",
			ClassifierModel:   "gpt-4o-mini",
			Temperature:       0,
			MaxToolIterations: 8,
		},
		Azure: AzureConfig{
			Deployment:     "gpt-4o",
			MiniDeployment: "gpt-4o-mini",
			APIVersion:     "2024-06-01",
		},
		Runtime: RuntimeConfig{
			Verbose:  true,
			LogLevel: "info",
		},
		Store: StoreConfig{
			Driver:      "memory",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "agentdesk:",
		},
	}
}

// MainModel returns the model used by specialist agents.
func (c *Config) MainModel() string {
	if c.LLM.Provider == "azure" && c.Azure.Deployment != "" {
		return c.Azure.Deployment
	}
	return c.LLM.Model
}

// LightModel returns the model used for classification and summaries.
func (c *Config) LightModel() string {
	if c.LLM.Provider == "azure" && c.Azure.MiniDeployment != "" {
		return c.Azure.MiniDeployment
	}
	return c.LLM.ClassifierModel
}
