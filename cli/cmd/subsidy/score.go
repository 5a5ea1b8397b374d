package subsidy

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/cmd"
	"github.com/agentdesk/agentdesk/cli/helpers"
)

func NewScoreCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "score",
		Short: "申請書スコアリング",
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if err := cmd.ValidateRequiredFlags(cobraCmd, []string{"subsidy", "file"}); err != nil {
				return err
			}
			return cmd.ExecuteCommand(cobraCmd, args, score)
		},
	}
	command.Flags().StringP("subsidy", "s", "", "補助金名")
	command.Flags().StringP("file", "f", "", "申請書ファイルパス")
	return command
}

func score(ctx context.Context, cobraCmd *cobra.Command, app *helpers.App, _ []string) error {
	name, _ := cobraCmd.Flags().GetString("subsidy")
	file, _ := cobraCmd.Flags().GetString("file")
	text, err := readInput(afero.NewOsFs(), file)
	if err != nil {
		return err
	}
	out := cobraCmd.OutOrStdout()
	fmt.Fprintf(out, "申請書スコアリング中... (%s)\n", name)
	result, err := app.Subsidy().Score(ctx, name, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", result.ScoreReport)
	return nil
}
