package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/cmd"
	"github.com/agentdesk/agentdesk/cli/helpers"
	"github.com/agentdesk/agentdesk/engine/subsidy"
	enginetool "github.com/agentdesk/agentdesk/engine/tool"
)

// NewToolCommand invokes a template tool directly, without an agent.
func NewToolCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tool <template> [tool] [input...]",
		Short: "Call a template tool directly",
		Long: `Call one of a template's tools with the given input and print its output.
Without a tool name the template's tools are listed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, args, callTool)
		},
	}
}

func callTool(ctx context.Context, cobraCmd *cobra.Command, app *helpers.App, args []string) error {
	registry, err := toolsOf(ctx, app, args[0])
	if err != nil {
		return err
	}
	out := cobraCmd.OutOrStdout()
	if len(args) == 1 {
		for _, name := range registry.Names() {
			t, err := registry.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s  %s\n", name, t.Description())
		}
		return nil
	}
	t, err := registry.Get(args[1])
	if err != nil {
		return err
	}
	result, err := t.Call(ctx, strings.Join(args[2:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result)
	return nil
}

func toolsOf(ctx context.Context, app *helpers.App, name string) (*enginetool.Registry, error) {
	if name == subsidy.Name {
		return app.Subsidy().Tools(), nil
	}
	pipeline, err := app.Pipeline(name)
	if err != nil {
		return nil, err
	}
	return pipeline.Tools(ctx)
}
