package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/cmd"
	"github.com/agentdesk/agentdesk/cli/helpers"
	"github.com/agentdesk/agentdesk/engine/template"
	"github.com/agentdesk/agentdesk/pkg/logger"
)

// NewSeedCommand copies the fixture records of templates into redis.
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [template...]",
		Short: "Load fixture records into the redis store",
		Long: `Write the fixture records of the given templates, or of every template,
into redis so that the redis record store can serve them.`,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, args, seedRecords)
		},
	}
}

func seedRecords(ctx context.Context, cobraCmd *cobra.Command, app *helpers.App, args []string) error {
	names := args
	if len(names) == 0 {
		names = app.Templates.Names()
	}
	for _, name := range names {
		if _, err := app.Templates.Get(name); err != nil {
			return err
		}
	}
	client := app.Redis()
	if client == nil {
		client = helpers.NewRedisClient(app.Config)
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis at %s: %w", app.Config.Store.RedisAddr, err)
		}
	}
	n, err := template.Seed(ctx, app.Loader, client, app.Config.Store.RedisPrefix, names...)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Records seeded", "tables", n, "addr", app.Config.Store.RedisAddr)
	fmt.Fprintf(cobraCmd.OutOrStdout(), "Seeded %d tables\n", n)
	return nil
}

