package scraper

import (
	"context"
	"time"
)

// Fetcher fetches a URL and returns the raw body plus metadata.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (FetchResponse, error)
}

// PageCache maps URLs to local files holding previously fetched raw content.
type PageCache interface {
	PathFor(url string) string
	Exists(url string) bool
	Read(url string) ([]byte, error)
	Write(url string, data []byte) error
}

// Rewriter transforms a URL before any cache lookup or network fetch.
type Rewriter interface {
	Rewrite(url string) string
}

// Hasher computes digests for content addressing.
type Hasher interface {
	Hash(data []byte) (string, error)
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}

// IDGenerator produces run IDs (UUIDs).
type IDGenerator interface {
	NewID() (string, error)
}
