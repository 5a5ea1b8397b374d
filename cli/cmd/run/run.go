package run

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/cmd"
	"github.com/agentdesk/agentdesk/cli/helpers"
)

// NewRunCommand serves requests against one template: a single query, a
// batch file, or an interactive session.
func NewRunCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "run <template>",
		Short: "Classify and answer requests with a template",
		Long: `Classify each request, route it to the template's specialist agent,
and print the category and the answer.

Without --query or --file an interactive session is started.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, args, runTemplate)
		},
	}
	command.Flags().StringP("query", "q", "", "Single request to process")
	command.Flags().StringP("file", "f", "", "File with one request per line")
	command.Flags().BoolP("classify-only", "c", false, "Only classify requests")
	return command
}

func runTemplate(ctx context.Context, cobraCmd *cobra.Command, app *helpers.App, args []string) error {
	pipeline, err := app.Pipeline(args[0])
	if err != nil {
		return err
	}
	query, err := cobraCmd.Flags().GetString("query")
	if err != nil {
		return err
	}
	file, err := cobraCmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	classifyOnly, err := cobraCmd.Flags().GetBool("classify-only")
	if err != nil {
		return err
	}
	session := helpers.NewSession(pipeline, cobraCmd.OutOrStdout(), classifyOnly)
	switch {
	case query != "":
		return session.Process(ctx, query)
	case file != "":
		return session.Batch(ctx, afero.NewOsFs(), file)
	default:
		tpl := pipeline.Template()
		return session.REPL(ctx, cobraCmd.InOrStdin(), tpl.Title, tpl.Prompt)
	}
}

