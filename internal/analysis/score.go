// Package analysis scores normalized games by how watchable they are and ranks them.
// Everything here is pure: no I/O, no shared state, and the same (game, now) always scores the same.
package analysis

import (
	"math"
	"time"

	"github.com/preston-bernstein/cfb-meta-service/internal/domain/games"
)

const (
	rankedBonus     = 5.0
	bothRankedBonus = 5.0

	liveBase        = 40.0
	lateGameBonus   = 15.0
	latePeriod      = 3
	lateCloseMax    = 20.0
	lateClosePerPt  = 2.5
	earlyCloseMax   = 8.0
	earlyClosePerPt = 1.0

	finalBase     = 5.0
	scheduledBase = 2.0

	kickoffWindowHours   = 6.0
	recentWindowHours    = 2.5
	recentlyStartedBonus = 3.0
)

// InterestScore computes a heuristic, non-negative watchability score rounded to 2 decimals.
// A zero now means the current UTC instant; pass an explicit now for reproducible results.
func InterestScore(g games.Game, now time.Time) float64 {
	if now.IsZero() {
		now = time.Now().UTC()
	}

	score := rankBonus(g) + stateScore(g) + kickoffScore(g, now)
	return round2(math.Max(0, score))
}

func rankBonus(g games.Game) float64 {
	if !g.HasRankedTeam() {
		return 0
	}
	bonus := rankedBonus
	if g.BothRanked() {
		bonus += bothRankedBonus
	}
	return bonus
}

// stateScore is the live / final / scheduled branch. Exactly one applies.
func stateScore(g games.Game) float64 {
	margin := float64(g.ScoreMargin())
	switch {
	case g.IsLive:
		score := liveBase
		if g.Period >= latePeriod {
			score += lateGameBonus + closeness(lateCloseMax, lateClosePerPt, margin)
		} else {
			score += closeness(earlyCloseMax, earlyClosePerPt, margin)
		}
		return score + PaceBonus(g.Clock)
	case g.IsFinal():
		return finalBase + closeness(lateCloseMax, lateClosePerPt, margin)
	default:
		return scheduledBase
	}
}

func closeness(ceiling, perPoint, margin float64) float64 {
	return math.Max(0, ceiling-perPoint*margin)
}

// kickoffScore rewards games about to start, and games that started recently but are not live.
// A freshly finished close final collects both this and its closeness credit.
func kickoffScore(g games.Game, now time.Time) float64 {
	delta := g.StartTime.Sub(now).Hours()
	switch {
	case delta > 0:
		return math.Max(0, kickoffWindowHours-delta)
	case delta > -recentWindowHours && !g.IsLive:
		return recentlyStartedBonus
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
