package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Loader turns a URL into a parsed document, serving from the page cache
// when possible. Cache hits never touch the network; cache misses fetch,
// persist the raw body, then parse.
type Loader struct {
	rewriter Rewriter
	cache    PageCache
	fetcher  Fetcher
	logger   *zap.Logger
}

// NewLoader constructs a Loader.
func NewLoader(rewriter Rewriter, cache PageCache, fetcher Fetcher, logger *zap.Logger) *Loader {
	return &Loader{
		rewriter: rewriter,
		cache:    cache,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Open resolves rawURL through the rewrite table and returns its parsed
// document. A failed fetch is never cached.
func (l *Loader) Open(ctx context.Context, rawURL string) (*goquery.Document, error) {
	url := l.rewriter.Rewrite(rawURL)
	defer TrackDuration(l.logger, "page_load", PageLoadSeconds, zap.String("url", url))()

	if l.cache.Exists(url) {
		TotalCacheHits.Inc()
		raw, err := l.cache.Read(url)
		if err != nil {
			return nil, fmt.Errorf("read cached page %s: %w", url, err)
		}
		l.logger.Debug("cache hit", zap.String("url", url), zap.String("path", l.cache.PathFor(url)))
		return l.parse(url, raw)
	}

	TotalCacheMisses.Inc()
	TotalFetches.Inc()
	resp, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		TotalFetchErrors.Inc()
		return nil, fmt.Errorf("%w: GET %s: %v", ErrFetch, url, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		TotalFetchErrors.Inc()
		return nil, fmt.Errorf("%w: GET %s: unexpected status %d", ErrFetch, url, resp.StatusCode)
	}

	if err := l.cache.Write(url, resp.Body); err != nil {
		return nil, fmt.Errorf("cache page %s: %w", url, err)
	}
	l.logger.Debug("page fetched",
		zap.String("url", url),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("bytes", len(resp.Body)),
		zap.Duration("fetch_duration", resp.Duration),
	)
	return l.parse(url, resp.Body)
}

func (l *Loader) parse(url string, raw []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, url, err)
	}
	return doc, nil
}
