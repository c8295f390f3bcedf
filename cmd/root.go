package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/staffdesk/staffdesk/internal/app"
	"github.com/staffdesk/staffdesk/internal/cli/styles"
	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/staffdesk/staffdesk/internal/database"
	"github.com/staffdesk/staffdesk/internal/logging"
	"github.com/staffdesk/staffdesk/internal/prompt"
)

const banner = "Staffdesk Employee Tracker"

var rootCmd = &cobra.Command{
	Use:           "staffdesk",
	Short:         "Staffdesk - track departments, roles and employees",
	Long:          `Staffdesk is an interactive terminal menu for viewing and managing the departments, roles and employees of an organization.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCloser, err := logging.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	styles.Init(cfg.ColorScheme)

	store, err := database.Open(ctx, cfg.Database)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Error(err.Error()))
		return err
	}
	// Quit closes the store; this only matters when the menu loop fails
	defer func() { _ = store.Close() }()

	fmt.Fprintln(out, styles.Success("Successfully connected to database!"))
	fmt.Fprintln(out, styles.Title(banner))

	application := app.New(store, prompt.NewHuh(cfg.ColorScheme),
		app.WithOutput(out),
		app.WithLogger(slog.Default()),
	)
	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
