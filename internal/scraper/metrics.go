package scraper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TotalFetches tracks the number of network fetches dispatched.
	TotalFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_fetches_total",
		Help: "The total number of network fetches performed.",
	})
	// TotalFetchErrors tracks fetches that resulted in an error.
	TotalFetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_fetch_errors_total",
		Help: "The total number of failed network fetches.",
	})
	// TotalCacheHits tracks page loads served from the on-disk cache.
	TotalCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_cache_hits_total",
		Help: "The total number of page loads served from the cache.",
	})
	// TotalCacheMisses tracks page loads that had to go to the network.
	TotalCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_cache_misses_total",
		Help: "The total number of page loads not found in the cache.",
	})
	// TotalRecords tracks records successfully extracted.
	TotalRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_records_total",
		Help: "The total number of records extracted from sub-pages.",
	})
	// PageLoadSeconds observes the wall time of each page load, cache hits
	// included.
	PageLoadSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scraper_page_load_seconds",
		Help:    "Wall time spent loading one page, from rewrite to parsed document.",
		Buckets: prometheus.DefBuckets,
	})
)
