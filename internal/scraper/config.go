package scraper

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config captures every configuration knob that influences a scrape run.
// All values originate from Viper so the scraper can be configured via
// files, env vars, or CLI flags.
type Config struct {
	IndexURL       string
	UserAgent      string
	CacheDir       string
	RewriteRules   []RewriteRule
	MaxInFlight    int
	RequestTimeout time.Duration
	OpsAddr        string
}

// LoadConfig constructs a Config by reading from Viper.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		IndexURL:       v.GetString("scraper.index_url"),
		UserAgent:      v.GetString("scraper.user_agent"),
		CacheDir:       v.GetString("scraper.cache_dir"),
		MaxInFlight:    v.GetInt("scraper.max_in_flight"),
		RequestTimeout: v.GetDuration("scraper.request_timeout"),
		OpsAddr:        v.GetString("ops.addr"),
	}
	if err := v.UnmarshalKey("rewrite.rules", &cfg.RewriteRules); err != nil {
		return Config{}, fmt.Errorf("unmarshal rewrite rules: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks for obviously bad configuration combinations.
func (c Config) Validate() error {
	if c.IndexURL == "" {
		return fmt.Errorf("scraper.index_url must be set")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("scraper.user_agent must be set")
	}
	if c.CacheDir == "" {
		return fmt.Errorf("scraper.cache_dir must be set")
	}
	if c.MaxInFlight < 0 {
		return fmt.Errorf("scraper.max_in_flight must be >= 0")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("scraper.request_timeout must be >= 0")
	}
	for i, rule := range c.RewriteRules {
		if rule.From == "" {
			return fmt.Errorf("rewrite.rules[%d].from must not be empty", i)
		}
	}
	return nil
}
