package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdesk/agentdesk/cli/helpers"
	"github.com/agentdesk/agentdesk/pkg/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := RootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", "", "--provider", "mock", "--log-level", "disabled"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSetupGlobalConfig(t *testing.T) {
	t.Run("Should inject YAML values and let flags override them", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "agentdesk.yaml")
		yaml := "llm:\n  model: from-yaml\n  classifier_model: light-yaml\n"
		require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o600))

		cmd := RootCmd()
		require.NoError(t, cmd.ParseFlags([]string{
			"--env-file=", "--config", cfgPath, "--classifier-model", "light-flag",
		}))

		require.NoError(t, SetupGlobalConfig(cmd))
		cfg := config.FromContext(cmd.Context())
		assert.Equal(t, "from-yaml", cfg.LLM.Model)
		assert.Equal(t, "light-flag", cfg.LLM.ClassifierModel)
	})

	t.Run("Should reject an invalid provider", func(t *testing.T) {
		cmd := RootCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--env-file=", "--provider", "carrier-pigeon"}))
		assert.Error(t, SetupGlobalConfig(cmd))
	})
}

func TestIsPathWithinDirectory(t *testing.T) {
	t.Run("Should accept nested paths and reject escapes", func(t *testing.T) {
		dir := t.TempDir()
		assert.True(t, isPathWithinDirectory(filepath.Join(dir, ".env"), dir))
		assert.True(t, isPathWithinDirectory(filepath.Join(dir, "a", "b"), dir))
		assert.False(t, isPathWithinDirectory(filepath.Join(dir, "..", "other"), dir))
	})
}

func TestTemplatesCommand(t *testing.T) {
	t.Run("Should list every template with its categories", func(t *testing.T) {
		out, err := execute(t, "templates")
		require.NoError(t, err)
		assert.Contains(t, out, "it-helpdesk")
		assert.Contains(t, out, "password_reset")
		assert.Contains(t, out, "customer-support")
		assert.Contains(t, out, "legal")
	})
}

func TestRunCommand(t *testing.T) {
	t.Run("Should answer a single query with the mock provider", func(t *testing.T) {
		out, err := execute(t, "run", "it-helpdesk", "-q", "I forgot my password")
		require.NoError(t, err)
		assert.Contains(t, out, "Processing: I forgot my password")
		assert.Contains(t, out, "Category:")
		assert.Contains(t, out, "Mock response for:")
	})

	t.Run("Should fail with a file-not-found error for a missing batch file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.txt")
		_, err := execute(t, "run", "it-helpdesk", "-f", missing)
		require.Error(t, err)
		assert.True(t, helpers.IsCode(err, helpers.CodeFileNotFound))
		assert.Equal(t, "File not found: "+missing, err.Error())
	})

	t.Run("Should reject an unknown template", func(t *testing.T) {
		_, err := execute(t, "run", "no-such-template", "-q", "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown template")
	})
}

func TestToolCommand(t *testing.T) {
	t.Run("Should call a lookup tool directly", func(t *testing.T) {
		out, err := execute(t, "tool", "ecommerce", "lookup_order", "ORD-12345")
		require.NoError(t, err)
		assert.Contains(t, out, "In Transit")
	})

	t.Run("Should search the subsidy catalog", func(t *testing.T) {
		out, err := execute(t, "tool", "subsidy", "search_subsidies", "製造業")
		require.NoError(t, err)
		assert.Contains(t, out, "ものづくり")
	})
}

func TestSubsidyCommand(t *testing.T) {
	t.Run("Should report a missing application file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "draft.txt")
		_, err := execute(t, "subsidy", "score", "--subsidy", "ものづくり補助金", "-f", missing)
		require.Error(t, err)
		assert.Equal(t, "ファイルが見つかりません: "+missing, err.Error())
	})
}

func TestConfigShowCommand(t *testing.T) {
	t.Run("Should print the merged configuration as JSON", func(t *testing.T) {
		out, err := execute(t, "config", "show", "--format", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"llm.provider": "mock"`)
	})
}
