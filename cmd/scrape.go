// Package cmd defines and implements the CLI commands for the scraper executable.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newScrapeCmd creates and configures the 'scrape' subcommand, which runs
// the full pipeline once and prints the extracted records.
func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Runs one scrape of the configured index page",
		Long: `Loads the configured index page, discovers the linked sub-pages, fetches
them concurrently through the page cache, and prints one record per page
in discovery order. Any failure aborts the run with no partial output.`,

		RunE: runScrapeCommand,
	}
	return cmd
}

func runScrapeCommand(cmd *cobra.Command, _ []string) error {
	appInstance, err := resolveApp(cmd.Context())
	if err != nil {
		return err
	}
	logger := appInstance.GetLogger()
	cfg := appInstance.GetConfig()

	summary, err := appInstance.GetOrchestrator().Run(cmd.Context(), cfg.IndexURL)
	if err != nil {
		return fmt.Errorf("run scrape: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, rec := range summary.Records {
		fmt.Fprintf(out, "%s %s %s\n", rec.Name, rec.Capital, rec.SourceURL)
	}
	fmt.Fprintf(out, "done: %d records in %s\n", len(summary.Records), summary.Elapsed)

	logger.Info("scrape finished",
		zap.String("run_id", summary.RunID),
		zap.Int("records", len(summary.Records)),
		zap.Duration("elapsed", summary.Elapsed),
	)
	return nil
}
