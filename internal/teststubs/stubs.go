package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/cfb-meta-service/internal/scoreboard"
)

// StubProvider is a test double for providers.ScoreboardProvider.
type StubProvider struct {
	Doc    scoreboard.Document
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}

	mu    sync.Mutex
	dates []string
}

// FetchScoreboard returns the configured document and error while tracking calls.
func (s *StubProvider) FetchScoreboard(ctx context.Context, date string) (scoreboard.Document, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.mu.Lock()
	s.dates = append(s.dates, date)
	s.mu.Unlock()
	s.Calls.Add(1)
	return s.Doc, s.Err
}

// Dates lists the dates requested so far, in call order.
func (s *StubProvider) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.dates...)
}

// SequenceProvider replays a fixed series of results, repeating the last one.
type SequenceProvider struct {
	Results []Result

	mu   sync.Mutex
	next int
}

// Result is one canned FetchScoreboard outcome.
type Result struct {
	Doc scoreboard.Document
	Err error
}

// FetchScoreboard returns the next canned result.
func (s *SequenceProvider) FetchScoreboard(ctx context.Context, date string) (scoreboard.Document, error) {
	_ = ctx
	_ = date
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Results) == 0 {
		return scoreboard.Document{}, nil
	}
	res := s.Results[min(s.next, len(s.Results)-1)]
	s.next++
	return res.Doc, res.Err
}
