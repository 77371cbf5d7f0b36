// Package cache implements the content-addressed on-disk page cache.
package cache

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/taori/benchmark-scraper/internal/scraper"
)

const (
	cacheSubdir = "cache"
	cacheExt    = ".html"
	hashPrefix  = 16
)

var invalidFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Config captures the parameters for the on-disk page cache.
type Config struct {
	// BaseDir is the root directory; entries live under BaseDir/cache/.
	BaseDir string `mapstructure:"base_dir"`
}

// Cache maps rewritten URLs to files holding their raw fetched content.
// The same URL always maps to the same path, and an existing path always
// holds a complete body: writes go to a temp file first and are renamed
// into place, so concurrent readers never observe a partial entry and two
// writers racing on the same URL degrade to last-writer-wins.
type Cache struct {
	dir    string
	hasher scraper.Hasher
}

// New creates a page cache rooted at cfg.BaseDir, creating the directory
// tree as needed.
func New(cfg Config, hasher scraper.Hasher) (*Cache, error) {
	if strings.TrimSpace(cfg.BaseDir) == "" {
		return nil, fmt.Errorf("base directory is required")
	}
	dir := filepath.Join(cfg.BaseDir, cacheSubdir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create cache directory %s: %w", dir, err)
	}
	return &Cache{dir: dir, hasher: hasher}, nil
}

// PathFor derives the entry path for a URL. The filename embeds the
// sanitized host and path for debuggability plus a digest prefix of the full
// URL bytes for collision resistance; it is a pure function of the URL.
func (c *Cache) PathFor(rawURL string) string {
	return filepath.Join(c.dir, c.basename(rawURL)+cacheExt)
}

// Exists reports whether a complete cached copy is present.
func (c *Cache) Exists(rawURL string) bool {
	info, err := os.Stat(c.PathFor(rawURL))
	return err == nil && info.Mode().IsRegular()
}

// Read returns the cached raw content, or scraper.ErrNotFound when absent.
func (c *Cache) Read(rawURL string) ([]byte, error) {
	data, err := os.ReadFile(c.PathFor(rawURL))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", scraper.ErrNotFound, rawURL)
		}
		return nil, fmt.Errorf("read cache entry for %s: %w", rawURL, err)
	}
	return data, nil
}

// Write persists the raw content for a URL. The body lands in a temp file
// in the cache directory and is renamed over the final path.
func (c *Cache) Write(rawURL string, data []byte) error {
	target := c.PathFor(rawURL)
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("create cache dir for %s: %w", target, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp cache file for %s: %w", target, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp cache file %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp cache file %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename cache entry into place %s: %w", target, err)
	}
	return nil
}

func (c *Cache) basename(rawURL string) string {
	digest := c.hashURL(rawURL)
	if len(digest) > hashPrefix {
		digest = digest[:hashPrefix]
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return digest
	}
	host := invalidFilenameChars.ReplaceAllString(u.Hostname(), "_")
	p := strings.Trim(u.EscapedPath(), "/")
	if p == "" {
		p = "root"
	}
	p = invalidFilenameChars.ReplaceAllString(p, "_")
	return fmt.Sprintf("%s_%s_%s", host, p, digest)
}

func (c *Cache) hashURL(rawURL string) string {
	digest, err := c.hasher.Hash([]byte(rawURL))
	if err != nil {
		// The SHA-256 hasher cannot fail; any future fallible hasher still
		// needs a deterministic name, so reuse the sanitized URL itself.
		return invalidFilenameChars.ReplaceAllString(rawURL, "_")
	}
	return digest
}
