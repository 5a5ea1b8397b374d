package subsidy

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/cmd"
	"github.com/agentdesk/agentdesk/cli/helpers"
	subsidysvc "github.com/agentdesk/agentdesk/engine/subsidy"
)

func NewMatchCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "match",
		Short: "補助金マッチング",
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if err := cmd.ValidateRequiredFlags(cobraCmd, []string{"industry", "capital", "location", "challenge"}); err != nil {
				return err
			}
			return cmd.ExecuteCommand(cobraCmd, args, match)
		},
	}
	command.Flags().StringP("industry", "i", "", "業種")
	command.Flags().IntP("employees", "e", 0, "従業員数")
	command.Flags().StringP("capital", "c", "", "資本金")
	command.Flags().StringP("location", "l", "", "所在地")
	command.Flags().String("challenge", "", "課題・投資計画")
	_ = command.MarkFlagRequired("employees")
	return command
}

func match(ctx context.Context, cobraCmd *cobra.Command, app *helpers.App, _ []string) error {
	flags := cobraCmd.Flags()
	employees, err := flags.GetInt("employees")
	if err != nil {
		return err
	}
	company := subsidysvc.Company{Employees: employees}
	company.Industry, _ = flags.GetString("industry")
	company.Capital, _ = flags.GetString("capital")
	company.Location, _ = flags.GetString("location")
	company.Challenge, _ = flags.GetString("challenge")

	out := cobraCmd.OutOrStdout()
	fmt.Fprintln(out, "補助金マッチング中...")
	result, err := app.Subsidy().Match(ctx, company)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n企業情報: %s\n", result.CompanyInfo)
	fmt.Fprintf(out, "\n%s\n", result.Recommendations)
	return nil
}
