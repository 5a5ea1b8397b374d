package subsidy

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/cmd"
	"github.com/agentdesk/agentdesk/cli/helpers"
)

func NewDraftCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "draft",
		Short: "申請書ドラフト生成",
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if err := cmd.ValidateRequiredFlags(cobraCmd, []string{"subsidy", "company", "plan"}); err != nil {
				return err
			}
			return cmd.ExecuteCommand(cobraCmd, args, draft)
		},
	}
	command.Flags().StringP("subsidy", "s", "", "補助金名")
	command.Flags().String("company", "", "企業情報")
	command.Flags().String("plan", "", "事業計画概要")
	command.Flags().StringP("output", "o", "", "出力ファイルパス")
	return command
}

func draft(ctx context.Context, cobraCmd *cobra.Command, app *helpers.App, _ []string) error {
	flags := cobraCmd.Flags()
	name, _ := flags.GetString("subsidy")
	company, _ := flags.GetString("company")
	plan, _ := flags.GetString("plan")
	output, _ := flags.GetString("output")

	out := cobraCmd.OutOrStdout()
	fmt.Fprintf(out, "申請書ドラフト生成中... (%s)\n", name)
	result, err := app.Subsidy().Draft(ctx, name, company, plan)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", result.Draft)
	if output == "" {
		return nil
	}
	if err := afero.WriteFile(afero.NewOsFs(), output, []byte(result.Draft), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(out, "\n保存先: %s\n", output)
	return nil
}
