package subsidy

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/cmd"
	"github.com/agentdesk/agentdesk/cli/helpers"
	subsidysvc "github.com/agentdesk/agentdesk/engine/subsidy"
)

// NewSubsidyCommand groups the subsidy consultant operations. Without a
// subcommand it asks for the company profile interactively.
func NewSubsidyCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "subsidy",
		Short: "AI 補助金コンサルタント",
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, args, interactive)
		},
	}
	command.AddCommand(
		NewMatchCommand(),
		NewDraftCommand(),
		NewScoreCommand(),
		NewSummarizeCommand(),
	)
	return command
}

// readInput loads a text file, reporting a missing one as a CLI error.
func readInput(fsys afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", helpers.NewCliError(helpers.CodeFileNotFound, "ファイルが見つかりません: "+path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func interactive(ctx context.Context, cobraCmd *cobra.Command, app *helpers.App, _ []string) error {
	out := cobraCmd.OutOrStdout()
	style := helpers.NewStyler(out)
	fmt.Fprintln(out, helpers.Rule("=", 60))
	fmt.Fprintf(out, "  %s\n", style.Title("AI 補助金コンサルタント"))
	fmt.Fprintln(out, helpers.Rule("=", 60))
	fmt.Fprintln(out)

	p := &prompter{scanner: bufio.NewScanner(cobraCmd.InOrStdin()), out: out}
	company, err := askCompany(p)
	if err != nil {
		return ignoreEOF(err)
	}
	svc := app.Subsidy()
	fmt.Fprintln(out, "\n補助金マッチング中...")
	match, err := svc.Match(ctx, company)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", match.Recommendations)

	fmt.Fprintf(out, "\n%s\n", helpers.Rule("-", 40))
	answer, err := p.ask("申請書のドラフトを生成しますか？ (y/n): ")
	if err != nil || strings.ToLower(answer) != "y" {
		return ignoreEOF(err)
	}
	name, err := p.ask("補助金名: ")
	if err != nil {
		return ignoreEOF(err)
	}
	plan, err := p.ask("事業計画の概要: ")
	if err != nil {
		return ignoreEOF(err)
	}
	draft, err := svc.Draft(ctx, name, company.Info(), plan)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", draft.Draft)
	return nil
}

func askCompany(p *prompter) (subsidysvc.Company, error) {
	var c subsidysvc.Company
	var err error
	if c.Industry, err = p.ask("業種を入力してください（例: 製造業）: "); err != nil {
		return c, err
	}
	employees, err := p.ask("従業員数: ")
	if err != nil {
		return c, err
	}
	if c.Employees, err = strconv.Atoi(employees); err != nil {
		return c, helpers.NewCliError("INVALID_INPUT", "従業員数は整数で入力してください", employees)
	}
	if c.Capital, err = p.ask("資本金（例: 3,000万円）: "); err != nil {
		return c, err
	}
	if c.Location, err = p.ask("所在地（例: 東京都）: "); err != nil {
		return c, err
	}
	c.Challenge, err = p.ask("課題・投資計画を教えてください: ")
	return c, err
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
