package scraper

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	v.Set("scraper.index_url", "http://localhost:8080/wiki/List_of_states")
	v.Set("scraper.user_agent", "test-agent/1.0")
	v.Set("scraper.cache_dir", "data")
	v.Set("scraper.max_in_flight", 0)
	v.Set("scraper.request_timeout", "10s")
	v.Set("rewrite.rules", []map[string]string{
		{"from": "https://en.wikipedia.org", "to": "http://localhost:8080"},
	})
	return v
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads a complete config", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadConfig(newTestViper())
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8080/wiki/List_of_states", cfg.IndexURL)
		assert.Equal(t, "test-agent/1.0", cfg.UserAgent)
		assert.Equal(t, "data", cfg.CacheDir)
		assert.Equal(t, 0, cfg.MaxInFlight)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		require.Len(t, cfg.RewriteRules, 1)
		assert.Equal(t, "https://en.wikipedia.org", cfg.RewriteRules[0].From)
		assert.Equal(t, "http://localhost:8080", cfg.RewriteRules[0].To)
	})

	t.Run("rejects missing index url", func(t *testing.T) {
		t.Parallel()
		v := newTestViper()
		v.Set("scraper.index_url", "")
		_, err := LoadConfig(v)
		require.ErrorContains(t, err, "scraper.index_url")
	})

	t.Run("rejects negative in-flight cap", func(t *testing.T) {
		t.Parallel()
		v := newTestViper()
		v.Set("scraper.max_in_flight", -1)
		_, err := LoadConfig(v)
		require.ErrorContains(t, err, "scraper.max_in_flight")
	})

	t.Run("rejects empty rewrite key", func(t *testing.T) {
		t.Parallel()
		v := newTestViper()
		v.Set("rewrite.rules", []map[string]string{{"from": "", "to": "x"}})
		_, err := LoadConfig(v)
		require.ErrorContains(t, err, "rewrite.rules[0]")
	})
}
