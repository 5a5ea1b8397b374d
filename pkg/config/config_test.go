package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Default(t *testing.T) {
	t.Run("Should return valid default configuration", func(t *testing.T) {
		cfg := Default()
		require.NotNil(t, cfg)
		assert.NoError(t, NewLoader().Validate(cfg))
		assert.Equal(t, "openai", cfg.LLM.Provider)
		assert.Equal(t, 8, cfg.LLM.MaxToolIterations)
	})
}

func TestConfig_Models(t *testing.T) {
	t.Run("Should use model names for non-azure providers", func(t *testing.T) {
		cfg := Default()
		assert.Equal(t, "gpt-4o", cfg.MainModel())
		assert.Equal(t, "gpt-4o-mini", cfg.LightModel())
	})

	t.Run("Should use deployments for azure", func(t *testing.T) {
		cfg := Default()
		cfg.LLM.Provider = "azure"
		cfg.Azure.Deployment = "prod-4o"
		cfg.Azure.MiniDeployment = "prod-mini"
		assert.Equal(t, "prod-4o", cfg.MainModel())
		assert.Equal(t, "prod-mini", cfg.LightModel())
	})
}

func TestSensitiveString(t *testing.T) {
	t.Run("Should mask value when formatted", func(t *testing.T) {
		s := SensitiveString("sk-secret")
		assert.Equal(t, "********", fmt.Sprint(s))
		assert.Equal(t, "sk-secret", s.Value())
		assert.Equal(t, "", SensitiveString("").String())
	})
}

func TestGenerateEnvMappings(t *testing.T) {
	t.Run("Should map tagged fields to nested paths", func(t *testing.T) {
		paths := map[string]string{}
		for _, m := range GenerateEnvMappings() {
			paths[m.EnvVar] = m.ConfigPath
		}
		assert.Equal(t, "llm.model", paths["MODEL"])
		assert.Equal(t, "llm.classifier_model", paths["CLASSIFIER_MODEL"])
		assert.Equal(t, "runtime.verbose", paths["VERBOSE"])
		assert.Equal(t, "azure.mini_deployment", paths["AZURE_OPENAI_MINI_DEPLOYMENT"])
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return attached configuration", func(t *testing.T) {
		cfg := Default()
		cfg.LLM.Model = "custom"
		ctx := ContextWithConfig(t.Context(), cfg)
		assert.Equal(t, "custom", FromContext(ctx).LLM.Model)
	})

	t.Run("Should fall back to defaults", func(t *testing.T) {
		assert.Equal(t, "gpt-4o", FromContext(t.Context()).LLM.Model)
	})
}

func TestConfig_Flatten(t *testing.T) {
	t.Run("Should flatten keys and mask sensitive values", func(t *testing.T) {
		cfg := Default()
		cfg.LLM.APIKey = "sk-secret"
		flat, err := cfg.Flatten()
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", flat["llm.model"])
		assert.Equal(t, "********", flat["llm.api_key"])
		assert.Equal(t, "", flat["store.redis_password"])
	})
}
