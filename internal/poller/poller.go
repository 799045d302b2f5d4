// Package poller periodically ranks today's slate so readiness reflects upstream health
// even when no requests arrive.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/cfb-meta-service/internal/analysis"
	"github.com/preston-bernstein/cfb-meta-service/internal/app/games"
	"github.com/preston-bernstein/cfb-meta-service/internal/logging"
)

const defaultInterval = 2 * time.Minute

// Ranker is the slice of the games service the poller drives.
type Ranker interface {
	Rank(ctx context.Context, q games.Query) (games.Ranking, error)
}

// Poller ranks today's slate on an interval.
type Poller struct {
	ranker   Ranker
	logger   *slog.Logger
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
}

// New constructs a Poller. A non-positive interval uses two minutes.
func New(ranker Ranker, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		ranker:   ranker,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.ticker.Stop()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.ticker.Stop()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	ranking, err := p.ranker.Rank(ctx, games.Query{Limit: 1})
	elapsed := slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds())
	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err, elapsed)
		return
	}

	args := []any{
		logging.FieldDate, ranking.Date,
		logging.FieldCount, ranking.Stats.Total,
		logging.FieldSkipped, ranking.Skipped,
		elapsed,
	}
	if top, ok := topGame(ranking); ok {
		args = append(args, "top_game", top.Summary, "interest", top.Interest)
	}
	logging.Info(p.logger, "poller refreshed slate", args...)
}

func topGame(r games.Ranking) (analysis.Summary, bool) {
	if len(r.Games) == 0 {
		return analysis.Summary{}, false
	}
	return r.Games[0], true
}
