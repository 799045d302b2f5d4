package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/cfb-meta-service/internal/logging"
	"github.com/preston-bernstein/cfb-meta-service/internal/metrics"
	"github.com/preston-bernstein/cfb-meta-service/internal/scoreboard"
)

// instrumentedProvider records metrics and logs around every fetch. It never retries.
type instrumentedProvider struct {
	inner   ScoreboardProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedProvider wraps the given provider with fetch metrics and logging.
func NewInstrumentedProvider(inner ScoreboardProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) ScoreboardProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchScoreboard(ctx context.Context, date string) (scoreboard.Document, error) {
	if p.inner == nil {
		return nil, &AcquisitionError{Source: p.name, Err: ErrProviderUnavailable}
	}

	start := p.now()
	doc, err := p.inner.FetchScoreboard(ctx, date)
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.name, elapsed, err)

	if err != nil {
		if rl, ok := AsRateLimitError(err); ok {
			p.metrics.RecordRateLimit(p.name, rl.RetryAfter)
		}
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "scoreboard fetch failed",
			slog.String(logging.FieldDate, date),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "scoreboard fetched",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(doc.Events())),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return doc, nil
}
