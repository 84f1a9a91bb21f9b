package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"semdiff/internal"
	"semdiff/internal/config"
	"semdiff/internal/container"
	"semdiff/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "semdiff",
		Short: "Build semantic differential scales interactively",
		Long: `Build semantic differential scales interactively.

Asks for a rating range, materials and properties, collects an average and
a standard deviation for every material on every property, then saves an
error bar graph and a CSV file per property.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			_, err = c.SessionService().Run(cmd.Context())
			return describe(err)
		},
	}

	rootCmd.AddCommand(newRenderCmd())
	return rootCmd
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [session.yaml]",
		Short: "Export graphs and CSV files again from a saved session",
		Long: `Export graphs and CSV files again from a saved session.

Example: semdiff render semantic-differential-scales/session.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			_, err = c.RenderService().Render(cmd.Context(), args[0])
			return describe(err)
		},
	}
}

func buildContainer(cmd *cobra.Command) (*container.Container, error) {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel))
	if envErr != nil {
		logger.Debug("No .env file found, using system environment variables")
	}

	return container.New(cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
}

func describe(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.Canceled) {
		return fmt.Errorf("interrupted")
	}
	switch errors.GetCode(err) {
	case errors.CodeInputClosed:
		return fmt.Errorf("session ended before all values were entered: %w", err)
	case errors.CodeExportError:
		return fmt.Errorf("could not save results: %w", err)
	}
	return err
}
