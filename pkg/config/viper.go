// Package config is responsible for initializing the application's configuration.
// It uses the Viper library to read settings from a config file, environment
// variables, and command-line flags, providing a unified configuration system.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/taori/benchmark-scraper/internal/logging"
)

// InitConfig initializes the application's configuration using Viper.
// It sets up default values, defines configuration search paths, and enables
// reading from environment variables. This function is designed to be called
// once at application startup. A non-empty cfgFile pins the config file
// instead of searching the default paths.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/benchmark-scraper/")
		viper.AddConfigPath("$HOME/.benchmark-scraper")
	}

	const defaultUA = "benchmark-scraper/1.0 (+https://github.com/taori/benchmark-scraper)"
	viper.SetDefault("scraper.user_agent", defaultUA)
	viper.SetDefault("scraper.index_url",
		"https://en.wikipedia.org/wiki/List_of_states_and_territories_of_the_United_States")
	viper.SetDefault("scraper.cache_dir", "data")
	viper.SetDefault("scraper.max_in_flight", 0)
	viper.SetDefault("scraper.request_timeout", "15s")

	// Rewrite rules are ordered {from,to} literal substitutions applied to
	// every URL before cache lookup or fetch. Typical use is pointing the
	// remote origin at a local mirror, e.g.
	//   rewrite:
	//     rules:
	//       - from: "https://en.wikipedia.org"
	//         to: "http://localhost:8080"
	viper.SetDefault("rewrite.rules", []map[string]string{})

	// Empty addr keeps the ops HTTP server off.
	viper.SetDefault("ops.addr", "")
	viper.SetDefault("logging.development", true)

	viper.SetEnvPrefix("SCRAPER") // e.g., SCRAPER_SCRAPER_CACHE_DIR=/tmp/pages
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logging.L.Warn("Config file not found; using defaults and environment variables.")
		} else {
			logging.L.Error("Error reading config file", zap.Error(err))
		}
	} else {
		logging.L.Info("Using config file", zap.String("path", viper.ConfigFileUsed()))
	}
}
