package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taori/benchmark-scraper/internal/app"
	"github.com/taori/benchmark-scraper/internal/logging"
	"github.com/taori/benchmark-scraper/internal/scraper"
	"github.com/taori/benchmark-scraper/pkg/config"
)

var cfgFile string

// appKeyType is the key for storing the App in the context.
type appKeyType string

const appKey appKeyType = "app"

// App defines the application interface that commands use. This allows us
// to inject a mock app during tests.
type App interface {
	Close()
	GetLogger() *zap.Logger
	GetConfig() scraper.Config
	GetOrchestrator() *scraper.Orchestrator
}

// newApp is the application factory. It's a variable so we can replace it
// with a mock factory in our tests.
var newApp func(ctx context.Context) (App, error) = func(ctx context.Context) (App, error) {
	return app.NewApp(ctx)
}

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scraper",
		Short: "Fetches state pages through a local page cache and extracts their capitals.",
		Long: `scraper retrieves a listing page, discovers the state sub-pages it links
to, fetches them concurrently through a content-addressed on-disk cache,
and prints one name/capital/URL record per state in discovery order.`,

		// Runs after config is loaded but before the subcommand's RunE; the
		// place to build and inject the application.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			appInstance, err := newApp(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to initialize application services: %w", err)
			}
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if appInstance, ok := cmd.Context().Value(appKey).(App); ok && appInstance != nil {
				appInstance.Close()
			}
		},
	}

	cobra.OnInitialize(func() {
		config.InitConfig(cfgFile)
	})

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.benchmark-scraper/config.yaml)")

	cmd.AddCommand(newScrapeCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	logging.InitLogger()

	if err := newRootCmd().Execute(); err != nil {
		logging.L.Fatal("Command execution failed", zap.Error(err))
	}
}

func resolveApp(ctx context.Context) (App, error) {
	appInstance, ok := ctx.Value(appKey).(App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application services not initialized")
	}
	return appInstance, nil
}
