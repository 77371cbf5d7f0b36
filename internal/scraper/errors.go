package scraper

import "errors"

// Sentinel errors classifying pipeline failures. Callers match them with
// errors.Is; none are recovered locally, a failing page fails the whole run.
var (
	// ErrFetch marks a network or transport failure, including non-2xx
	// responses. Fetch failures are never cached.
	ErrFetch = errors.New("fetch failed")

	// ErrParse marks malformed markup, whether fetched or read from cache.
	ErrParse = errors.New("parse failed")

	// ErrNotFound is returned by a cache read when no entry exists. It is
	// internal to the loader and never user-visible.
	ErrNotFound = errors.New("cache entry not found")
)
