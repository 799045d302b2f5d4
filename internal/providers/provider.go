package providers

import (
	"context"

	"github.com/preston-bernstein/cfb-meta-service/internal/scoreboard"
)

// ScoreboardProvider acquires a raw scoreboard document.
// The date parameter, when provided, is a YYYYMMDD or YYYY-MM-DD string naming the slate to fetch;
// providers interpret an empty date as "today".
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, date string) (scoreboard.Document, error)
}
