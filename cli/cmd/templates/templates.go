package templates

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/cmd"
	"github.com/agentdesk/agentdesk/cli/helpers"
)

// NewTemplatesCommand lists every built-in template with its categories.
func NewTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available templates and their categories",
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, args, listTemplates)
		},
	}
}

func listTemplates(_ context.Context, cobraCmd *cobra.Command, app *helpers.App, _ []string) error {
	out := cobraCmd.OutOrStdout()
	style := helpers.NewStyler(out)
	for _, tpl := range app.Templates.All() {
		fmt.Fprintf(out, "%s  %s\n", style.Title(tpl.Name), tpl.Title)
		fmt.Fprintf(out, "  %s %s\n", style.Label("categories:"), tpl.Categories())
		fmt.Fprintf(out, "  %s %s\n", style.Label("tools:"), strings.Join(tpl.ToolNames(), ", "))
	}
	return nil
}

