// Package games ranks a day's scoreboard for the HTTP API and CLI.
package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/cfb-meta-service/internal/analysis"
	domaingames "github.com/preston-bernstein/cfb-meta-service/internal/domain/games"
	"github.com/preston-bernstein/cfb-meta-service/internal/logging"
	"github.com/preston-bernstein/cfb-meta-service/internal/metrics"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers"
	"github.com/preston-bernstein/cfb-meta-service/internal/scoreboard"
	"github.com/preston-bernstein/cfb-meta-service/internal/timeutil"
)

// failureThreshold is how many consecutive fetch failures flip the service to not ready.
const failureThreshold = 3

var (
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidDate  = errors.New("invalid date")
)

// Query selects and shapes a ranking.
type Query struct {
	// Date is YYYY-MM-DD or YYYYMMDD. When Date and Timezone are both empty the provider's
	// current slate is fetched; with only Timezone set, today in that zone (UTC when unknown).
	Date         string
	Timezone     string
	OnlyLive     bool
	OnlyRanked   bool
	Featured     bool
	Limit        int // analysis.NoLimit keeps every game
	IncludeNotes bool
}

// Ranking is one ranked slate.
type Ranking struct {
	Date        string             `json:"date"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Stats       analysis.Stats     `json:"stats"`
	Skipped     int                `json:"skipped"`
	Games       []analysis.Summary `json:"games"`
}

// Status describes the recent health of upstream fetches.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
}

// IsReady reports whether a fetch has succeeded and fetches are not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < failureThreshold
}

// Option customizes a Service.
type Option func(*Service)

// WithClock pins the instant used for scoring and for resolving "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service fetches scoreboards and turns them into rankings. Every call fetches fresh.
type Service struct {
	provider providers.ScoreboardProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	statusMu sync.RWMutex
	status   Status
}

// NewService constructs a Service around a scoreboard provider.
func NewService(provider providers.ScoreboardProvider, logger *slog.Logger, recorder *metrics.Recorder, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rank fetches the slate for q.Date, filters it, and returns the top games by interest.
func (s *Service) Rank(ctx context.Context, q Query) (Ranking, error) {
	now := s.now()
	date, fetchDate, err := resolveDate(q.Date, q.Timezone, now)
	if err != nil {
		return Ranking{}, err
	}

	sl, err := s.load(ctx, fetchDate)
	if err != nil {
		return Ranking{}, err
	}
	if fetchDate == "" && sl.day != "" {
		date = sl.day
	}
	parsed, skipped := sl.games, sl.skipped

	filtered := analysis.Filter(parsed, predicates(q)...)
	start := time.Now()
	top := analysis.SelectTopGames(filtered, q.Limit, now)
	s.metrics.RecordRanking(time.Since(start), len(filtered))

	logging.Debug(logging.FromContext(ctx, s.logger), "slate ranked",
		logging.FieldDate, date,
		logging.FieldCount, len(top),
		logging.FieldSkipped, skipped,
	)

	return Ranking{
		Date:        date,
		GeneratedAt: now,
		Stats:       analysis.Tally(parsed),
		Skipped:     skipped,
		Games:       analysis.Summarize(top, q.IncludeNotes, now),
	}, nil
}

// Game returns the export record for one game on the given date's slate, with notes.
func (s *Service) Game(ctx context.Context, date, id string) (analysis.Summary, error) {
	now := s.now()
	resolved, fetchDate, err := resolveDate(date, "", now)
	if err != nil {
		return analysis.Summary{}, err
	}

	sl, err := s.load(ctx, fetchDate)
	if err != nil {
		return analysis.Summary{}, err
	}
	if fetchDate == "" && sl.day != "" {
		resolved = sl.day
	}
	for _, g := range sl.games {
		if g.ID == id {
			return analysis.SummarizeGame(g, true, now), nil
		}
	}
	return analysis.Summary{}, fmt.Errorf("%w: %s on %s", ErrGameNotFound, id, resolved)
}

// Status returns a snapshot of upstream fetch health.
func (s *Service) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// slate is one fetched and normalized scoreboard.
type slate struct {
	games   []domaingames.Game
	skipped int
	// day is the feed's own slate date, canonicalized; "" when it reports none.
	day string
}

func (s *Service) load(ctx context.Context, date string) (slate, error) {
	attempt := s.now()
	if s.provider == nil {
		err := &providers.AcquisitionError{Err: providers.ErrProviderUnavailable}
		s.recordFailure(err, attempt)
		return slate{}, err
	}

	doc, err := s.provider.FetchScoreboard(ctx, date)
	if err != nil {
		if _, ok := providers.AsAcquisitionError(err); !ok {
			err = &providers.AcquisitionError{Err: err}
		}
		s.recordFailure(err, attempt)
		return slate{}, err
	}
	s.recordSuccess(attempt)

	parsed, skipped := scoreboard.Collect(doc)
	logger := logging.FromContext(ctx, s.logger)
	for _, res := range skipped {
		logging.Debug(logger, "scoreboard event skipped",
			logging.FieldEventID, res.EventID,
			logging.FieldIndex, res.Index,
			logging.FieldReason, res.Err.Error(),
		)
	}
	s.metrics.RecordNormalization(len(parsed), len(skipped))

	sl := slate{games: parsed, skipped: len(skipped)}
	if d, err := timeutil.ParseDate(doc.Day()); err == nil {
		sl.day = timeutil.FormatDate(d)
	}
	return sl, nil
}

func (s *Service) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastAttempt = at
	s.status.LastSuccess = at
}

func (s *Service) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}

func predicates(q Query) []analysis.Predicate {
	var preds []analysis.Predicate
	if q.OnlyLive {
		preds = append(preds, analysis.OnlyLive)
	}
	if q.OnlyRanked {
		preds = append(preds, analysis.OnlyRanked)
	}
	if q.Featured {
		preds = append(preds, analysis.Featured)
	}
	return preds
}

// resolveDate returns the slate date to report and the date to request upstream.
// With neither a date nor a timezone the request date is empty and the provider serves
// its current slate. The reported date is then today in UTC unless the feed names its day.
func resolveDate(raw, tz string, now time.Time) (string, string, error) {
	if raw == "" {
		if tz == "" {
			return timeutil.FormatDate(now.UTC()), "", nil
		}
		if loc := timeutil.ResolveLocation(tz); loc != nil {
			now = now.In(loc)
		}
		today := timeutil.FormatDate(now)
		return today, today, nil
	}
	d, err := timeutil.ParseDate(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	date := timeutil.FormatDate(d)
	return date, date, nil
}
