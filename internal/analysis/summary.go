package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/cfb-meta-service/internal/domain/games"
)

const summarySeparator = " | "

// BuildGameSummary renders one display line:
// "{away} {score} @ {home} {score} | {status}[ | TV: a, b][ | note...]".
func BuildGameSummary(g games.Game, includeNotes bool) string {
	parts := []string{
		fmt.Sprintf("%s %d @ %s %d", g.Away.Abbreviation, g.Away.Score, g.Home.Abbreviation, g.Home.Score),
	}
	status := g.Status
	if g.IsLive {
		status = fmt.Sprintf("Q%d %s", g.Period, g.Clock)
	}
	parts = append(parts, status)
	if len(g.Broadcasts) > 0 {
		parts = append(parts, "TV: "+strings.Join(g.Broadcasts, ", "))
	}
	if includeNotes {
		parts = append(parts, g.Notes...)
	}
	return strings.Join(parts, summarySeparator)
}

// Summary is the flat export record: the game plus its computed presentation fields.
type Summary struct {
	games.Game
	Interest  float64 `json:"interest"`
	Summary   string  `json:"summary"`
	Tier      string  `json:"tier"`
	CloseGame bool    `json:"closeGame"`
}

// Summarize builds export records for games, scored at now, preserving order.
func Summarize(gs []games.Game, includeNotes bool, now time.Time) []Summary {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	out := make([]Summary, 0, len(gs))
	for _, g := range gs {
		out = append(out, SummarizeGame(g, includeNotes, now))
	}
	return out
}

// SummarizeGame builds the export record for a single game.
func SummarizeGame(g games.Game, includeNotes bool, now time.Time) Summary {
	score := InterestScore(g, now)
	return Summary{
		Game:      g,
		Interest:  score,
		Summary:   BuildGameSummary(g, includeNotes),
		Tier:      InterestTier(score),
		CloseGame: IsCloseLateGame(g),
	}
}
