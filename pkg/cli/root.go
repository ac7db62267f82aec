// Package cli implements the titanic command-line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"titanic-dash/internal/api"
	"titanic-dash/internal/app"
	"titanic-dash/internal/config"
	"titanic-dash/internal/service/survival"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			errObj := map[string]interface{}{
				"error": err.Error(),
			}
			if status := api.HTTPStatus(err); status != http.StatusInternalServerError {
				errObj["http_status"] = status
			}
			_ = printJSON(stdout, errObj)
		} else {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// rootOptions carries the persistent flags into subcommands.
type rootOptions struct {
	dataset string
	engine  string
	output  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "titanic",
		Short:         "Titanic survival dashboard CLI",
		Long:          "Summarise who survived the Titanic, filtered by sex, class and age.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("TITANIC_OUTPUT"); v != "" {
					opts.output = v
				}
			}
			return validateOutputFormat(opts.output)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataset, "dataset", "", "Dataset path or URL (default $DATASET_PATH or titanic.csv)")
	rootCmd.PersistentFlags().StringVar(&opts.engine, "engine", "", "Dataset engine: auto, frame or duckdb")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log dataset loading to stderr")

	rootCmd.AddCommand(newSummaryCmd(opts))
	rootCmd.AddCommand(newTUICmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadService resolves configuration (flag > env > default) and loads the
// passenger table.
func (o *rootOptions) loadService(cmd *cobra.Command) (*survival.Service, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if o.dataset != "" {
		cfg.Dataset.Path = o.dataset
	}
	if o.engine != "" {
		cfg.Dataset.Engine = o.engine
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	svc, err := app.LoadSurvival(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, err
	}
	return svc, nil
}
