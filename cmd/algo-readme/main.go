package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"algo-readme/internal/config"
	"algo-readme/internal/di"
	"algo-readme/internal/domain/model"
	"algo-readme/internal/usecase"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "algo-readme: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:           "algo-readme",
		Short:         "Regenerate the README of solved algorithm problems",
		Long:          "Scans <root>/<tier>/<category>/Prob<id> files, looks each problem up on solved.ac and rewrites the README with a tier chart and per-tier tables.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := di.InitializeApp(flags)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			summary, err := application.Run(cmd.Context())
			if err != nil {
				return err
			}
			if !application.Scheduled() {
				printSummary(cmd.ErrOrStderr(), summary)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to YAML configuration file")
	cmd.Flags().StringVarP(&flags.SourceRoot, "root", "r", "", "Source root containing tier directories")
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "README path to write")
	cmd.Flags().StringVar(&flags.Schedule, "schedule", "", "Cron expression; keep running and regenerate on schedule")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "algo-readme %s\n", version)
		},
	})

	return cmd
}

func printSummary(w io.Writer, summary *usecase.RunSummary) {
	if summary == nil {
		return
	}
	color.New(color.FgGreen, color.Bold).Fprintf(w, "README updated: %d problems", summary.Total)
	fmt.Fprintf(w, " (%s)\n", summary.Duration.Round(time.Millisecond))
	for _, tier := range model.Tiers {
		fmt.Fprintf(w, "  %s: %d\n", tier.Label(), summary.Counts[tier])
	}
	if summary.Fallbacks > 0 {
		color.New(color.FgYellow).Fprintf(w, "  %d problem(s) rendered with fallback metadata\n", summary.Fallbacks)
	}
}
