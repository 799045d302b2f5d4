package analysis

import "github.com/preston-bernstein/cfb-meta-service/internal/domain/games"

const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"

	highInterest   = 50.0
	mediumInterest = 30.0
	closeLateLimit = 8
)

// Stats counts games on a slate by state.
type Stats struct {
	Total  int `json:"total"`
	Live   int `json:"live"`
	Ranked int `json:"ranked"`
	Final  int `json:"final"`
}

// Tally counts games by state.
func Tally(gs []games.Game) Stats {
	var s Stats
	for _, g := range gs {
		s.Total++
		if g.IsLive {
			s.Live++
		}
		if g.HasRankedTeam() {
			s.Ranked++
		}
		if g.IsFinal() {
			s.Final++
		}
	}
	return s
}

// InterestTier buckets a score as high, medium or low.
func InterestTier(score float64) string {
	switch {
	case score > highInterest:
		return TierHigh
	case score > mediumInterest:
		return TierMedium
	default:
		return TierLow
	}
}

// IsCloseLateGame flags live second-half games within one score.
func IsCloseLateGame(g games.Game) bool {
	return g.IsLive && g.Period >= latePeriod && g.ScoreMargin() <= closeLateLimit
}
