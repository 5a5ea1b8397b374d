package cli

import (
	"github.com/spf13/cobra"

	configcmd "github.com/agentdesk/agentdesk/cli/cmd/config"
	"github.com/agentdesk/agentdesk/cli/cmd/run"
	"github.com/agentdesk/agentdesk/cli/cmd/seed"
	"github.com/agentdesk/agentdesk/cli/cmd/subsidy"
	"github.com/agentdesk/agentdesk/cli/cmd/templates"
	toolcmd "github.com/agentdesk/agentdesk/cli/cmd/tool"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "agentdesk",
		Short:         "Routed LLM agent templates for business workflows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return SetupGlobalConfig(cmd)
		},
	}
	addPersistentFlags(root)
	root.AddCommand(
		templates.NewTemplatesCommand(),
		run.NewRunCommand(),
		toolcmd.NewToolCommand(),
		subsidy.NewSubsidyCommand(),
		seed.NewSeedCommand(),
		configcmd.NewConfigCommand(),
	)
	return root
}

func addPersistentFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.String("config", "agentdesk.yaml", "Path to the config file")
	flags.String("env-file", ".env", "Path to the environment variables file")
	flags.String("log-level", "info", "Log level (debug, info, warn, error, disabled)")
	flags.Bool("log-json", false, "Output logs in JSON format")
	flags.Bool("log-source", false, "Include source code location in logs")
	flags.String("templates-dir", "", "Read templates from this directory instead of the bundled ones")
	flags.String("provider", "", "LLM provider (openai, azure, anthropic, groq, ollama, deepseek, mock)")
	flags.String("model", "", "Model used by specialist agents")
	flags.String("classifier-model", "", "Model used by classifier agents")
	flags.String("store", "", "Record store driver (memory, redis)")
	flags.String("redis-addr", "", "Redis address for the redis record store")
}
