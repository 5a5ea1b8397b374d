package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentdesk/agentdesk/cli/helpers"
	"github.com/agentdesk/agentdesk/engine/core"
	"github.com/agentdesk/agentdesk/pkg/config"
	"github.com/agentdesk/agentdesk/pkg/logger"
)

// HandlerFunc defines the signature for command handlers.
type HandlerFunc func(ctx context.Context, cmd *cobra.Command, app *helpers.App, args []string) error

// ExecuteCommand builds the application from the configuration in the command
// context, runs handler, and releases the application afterwards.
func ExecuteCommand(cmd *cobra.Command, args []string, handler HandlerFunc) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return fmt.Errorf("configuration not found in context")
	}
	app, err := helpers.NewApp(ctx, cfg)
	if err != nil {
		return HandleCommonErrors(ctx, err)
	}
	defer app.Close()
	return HandleCommonErrors(ctx, handler(ctx, cmd, app, args))
}

// ValidateRequiredFlags checks that all required flags are present and non-empty.
func ValidateRequiredFlags(cmd *cobra.Command, required []string) error {
	for _, flag := range required {
		if !cmd.Flags().Changed(flag) {
			return helpers.NewCliError(helpers.CodeMissingFlag, fmt.Sprintf("required flag '%s' not specified", flag))
		}
		if value, err := cmd.Flags().GetString(flag); err == nil && value == "" {
			return helpers.NewCliError(helpers.CodeMissingFlag, fmt.Sprintf("required flag '%s' cannot be empty", flag))
		}
	}
	return nil
}

// HandleCommonErrors logs err and maps well-known failures to CLI errors.
func HandleCommonErrors(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if cliErr := categorizeError(err); cliErr != nil {
		logger.FromContext(ctx).Debug("Command failed", "code", cliErr.Code, "error", err)
		return cliErr
	}
	logger.FromContext(ctx).Debug("Command failed", "error", err)
	return err
}

func categorizeError(err error) *helpers.CliError {
	var cliErr *helpers.CliError
	switch {
	case errors.As(err, &cliErr):
		return cliErr
	case errors.Is(err, context.Canceled):
		return helpers.NewCliError("OPERATION_CANCELED", "Operation was canceled by user")
	case errors.Is(err, context.DeadlineExceeded):
		return helpers.NewCliError("OPERATION_TIMEOUT", "Operation timed out")
	case core.HasCode(err, core.CodeUnknownTemplate):
		return helpers.NewCliError(core.CodeUnknownTemplate, err.Error())
	default:
		return nil
	}
}
