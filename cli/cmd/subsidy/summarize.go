package subsidy

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/cmd"
	"github.com/agentdesk/agentdesk/cli/helpers"
)

func NewSummarizeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "summarize",
		Short: "公募要領の要約",
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if err := cmd.ValidateRequiredFlags(cobraCmd, []string{"file"}); err != nil {
				return err
			}
			return cmd.ExecuteCommand(cobraCmd, args, summarize)
		},
	}
	command.Flags().StringP("file", "f", "", "公募要領ファイルパス")
	return command
}

func summarize(ctx context.Context, cobraCmd *cobra.Command, app *helpers.App, _ []string) error {
	file, _ := cobraCmd.Flags().GetString("file")
	text, err := readInput(afero.NewOsFs(), file)
	if err != nil {
		return err
	}
	out := cobraCmd.OutOrStdout()
	fmt.Fprintln(out, "公募要領を解析中...")
	result, err := app.Subsidy().Summarize(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", result.Summary)
	return nil
}
