package config

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/helpers"
	"github.com/agentdesk/agentdesk/pkg/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration diagnostics",
	}
	cmd.AddCommand(NewConfigShowCommand())
	return cmd
}

// NewConfigShowCommand prints the merged configuration.
func NewConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration values",
		Long: `Display the merged configuration (defaults, config file, environment,
and flags) in table, JSON, or YAML format. Secrets are masked.`,
		Args: cobra.NoArgs,
		RunE: executeConfigShowCommand,
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (json, yaml, table)")
	return cmd
}

func executeConfigShowCommand(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	cfg := config.FromContext(cmd.Context())
	flat, err := cfg.Flatten()
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), flat, format)
}

func writeConfig(w io.Writer, flat map[string]any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(flat)
	case "yaml":
		data, err := yaml.MarshalWithOptions(flat, yaml.IndentSequence(true))
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "table":
		fmt.Fprintln(w, configTable(w, flat))
		return nil
	default:
		return helpers.NewCliError("INVALID_FORMAT", fmt.Sprintf("unsupported format %q", format))
	}
}

func configTable(w io.Writer, flat map[string]any) string {
	env := make(map[string]string)
	for _, m := range config.GenerateEnvMappings() {
		env[m.ConfigPath] = m.EnvVar
	}
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	t := table.New().Headers("KEY", "ENV", "VALUE")
	if !helpers.NewStyler(w).Enabled() {
		t = t.Border(lipgloss.HiddenBorder())
	}
	for _, k := range keys {
		t.Row(k, env[k], fmt.Sprint(flat[k]))
	}
	return t.String()
}
