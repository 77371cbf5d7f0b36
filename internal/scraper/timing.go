package scraper

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// TrackDuration starts a scoped timer. The returned func is meant to be
// deferred at the top of the instrumented block so the elapsed time is
// emitted on every exit path, normal return or failure. When obs is non-nil
// the duration is also observed there.
func TrackDuration(logger *zap.Logger, name string, obs prometheus.Observer, fields ...zap.Field) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		if obs != nil {
			obs.Observe(elapsed.Seconds())
		}
		logger.Debug("scope finished",
			append([]zap.Field{
				zap.String("scope", name),
				zap.Duration("elapsed", elapsed),
			}, fields...)...,
		)
	}
}
