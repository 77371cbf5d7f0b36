package scraper

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Orchestrator drives the full pipeline: load the index page, discover the
// sub-page links, fetch them concurrently, and join the extracted records in
// discovery order.
type Orchestrator struct {
	loader   *Loader
	rewriter Rewriter
	clock    Clock
	idGen    IDGenerator
	logger   *zap.Logger

	// maxInFlight caps concurrent sub-page loads; zero means one goroutine
	// per discovered link with no cap.
	maxInFlight int
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(
	loader *Loader,
	rewriter Rewriter,
	clock Clock,
	idGen IDGenerator,
	maxInFlight int,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		loader:      loader,
		rewriter:    rewriter,
		clock:       clock,
		idGen:       idGen,
		maxInFlight: maxInFlight,
		logger:      logger,
	}
}

// Run executes one scrape of indexURL. Records come back in link-discovery
// order no matter which sub-page load finishes first. The first failing
// sub-page fails the whole run; no partial results are returned.
func (o *Orchestrator) Run(ctx context.Context, indexURL string) (RunSummary, error) {
	runID, err := o.idGen.NewID()
	if err != nil {
		return RunSummary{}, fmt.Errorf("generate run id: %w", err)
	}
	logger := o.logger.With(zap.String("run_id", runID))
	started := o.clock.Now()
	defer TrackDuration(logger, "scrape_run", nil, zap.String("index_url", indexURL))()

	indexDoc, err := o.loader.Open(ctx, indexURL)
	if err != nil {
		return RunSummary{}, fmt.Errorf("load index page: %w", err)
	}

	links, err := DiscoverLinks(indexDoc, o.rewriter.Rewrite(indexURL))
	if err != nil {
		return RunSummary{}, fmt.Errorf("discover links: %w", err)
	}
	for i, link := range links {
		links[i] = o.rewriter.Rewrite(link)
	}
	logger.Info("links discovered", zap.Int("count", len(links)))

	records := make([]Record, len(links))
	g, gctx := errgroup.WithContext(ctx)
	if o.maxInFlight > 0 {
		g.SetLimit(o.maxInFlight)
	}
	for i, link := range links {
		g.Go(func() error {
			doc, err := o.loader.Open(gctx, link)
			if err != nil {
				return fmt.Errorf("load sub-page %s: %w", link, err)
			}
			records[i] = ExtractRecord(doc, link)
			TotalRecords.Inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RunSummary{}, err
	}

	return RunSummary{
		RunID:    runID,
		Records:  records,
		Started:  started,
		Elapsed:  o.clock.Now().Sub(started),
		IndexURL: indexURL,
	}, nil
}
