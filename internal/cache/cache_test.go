// Package cache_test tests the on-disk page cache.
package cache_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taori/benchmark-scraper/internal/cache"
	"github.com/taori/benchmark-scraper/internal/hash/sha256"
	"github.com/taori/benchmark-scraper/internal/scraper"
)

func newCache(t *testing.T) (*cache.Cache, string) {
	t.Helper()
	dir := t.TempDir()
	c, err := cache.New(cache.Config{BaseDir: dir}, sha256.New())
	require.NoError(t, err)
	return c, dir
}

func TestNew(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		dir := t.TempDir()
		c, err := cache.New(cache.Config{BaseDir: dir}, sha256.New())
		require.NoError(t, err)
		assert.NotNil(t, c)
		assert.DirExists(t, filepath.Join(dir, "cache"))
	})

	t.Run("MissingBaseDir", func(t *testing.T) {
		_, err := cache.New(cache.Config{}, sha256.New())
		assert.Error(t, err)
	})

	t.Run("CreatesNestedBaseDir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b")
		_, err := cache.New(cache.Config{BaseDir: dir}, sha256.New())
		require.NoError(t, err)
		assert.DirExists(t, filepath.Join(dir, "cache"))
	})
}

func TestPathFor(t *testing.T) {
	c, dir := newCache(t)

	t.Run("Deterministic", func(t *testing.T) {
		first := c.PathFor("http://localhost:8080/wiki/Ohio")
		second := c.PathFor("http://localhost:8080/wiki/Ohio")
		assert.Equal(t, first, second)
	})

	t.Run("DistinctURLsDistinctPaths", func(t *testing.T) {
		a := c.PathFor("http://localhost:8080/wiki/Ohio")
		b := c.PathFor("http://localhost:8080/wiki/Iowa")
		assert.NotEqual(t, a, b)
	})

	t.Run("QueryStringsChangeThePath", func(t *testing.T) {
		a := c.PathFor("http://localhost:8080/wiki/Ohio")
		b := c.PathFor("http://localhost:8080/wiki/Ohio?rev=2")
		assert.NotEqual(t, a, b)
	})

	t.Run("ValidPathComponents", func(t *testing.T) {
		p := c.PathFor("http://localhost:8080/wiki/Virginia?a=1&b=2#frag")
		assert.True(t, strings.HasPrefix(p, filepath.Join(dir, "cache")))
		assert.True(t, strings.HasSuffix(p, ".html"))
		base := filepath.Base(p)
		assert.NotContains(t, base, "?")
		assert.NotContains(t, base, "&")
		assert.NotContains(t, base, "#")
		assert.NotContains(t, base, "/")
	})
}

func TestReadWrite(t *testing.T) {
	c, _ := newCache(t)
	const url = "http://localhost:8080/wiki/Ohio"
	body := []byte("<html><h1>Ohio</h1></html>")

	t.Run("MissingEntryIsNotFound", func(t *testing.T) {
		assert.False(t, c.Exists(url))
		_, err := c.Read(url)
		require.ErrorIs(t, err, scraper.ErrNotFound)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		require.NoError(t, c.Write(url, body))
		assert.True(t, c.Exists(url))

		got, err := c.Read(url)
		require.NoError(t, err)
		assert.Equal(t, body, got)
	})

	t.Run("OverwriteIsLastWriterWins", func(t *testing.T) {
		require.NoError(t, c.Write(url, []byte("v2")))
		got, err := c.Read(url)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("NoTempFilesLeftBehind", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Dir(c.PathFor(url)))
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp-")
		}
	})
}

// TestConcurrentSameURLWrites hammers one URL from many goroutines; the
// rename-into-place scheme must leave a complete copy of some write, never
// a torn one.
func TestConcurrentSameURLWrites(t *testing.T) {
	c, _ := newCache(t)
	const url = "http://localhost:8080/wiki/Texas"

	var wg sync.WaitGroup
	bodies := make([][]byte, 8)
	for i := range bodies {
		bodies[i] = []byte(strings.Repeat(fmt.Sprintf("writer-%d;", i), 512))
		wg.Add(1)
		go func(data []byte) {
			defer wg.Done()
			assert.NoError(t, c.Write(url, data))
		}(bodies[i])
	}
	wg.Wait()

	got, err := c.Read(url)
	require.NoError(t, err)
	found := false
	for _, b := range bodies {
		if string(got) == string(b) {
			found = true
			break
		}
	}
	assert.True(t, found, "cached content must match exactly one writer")
}
