package games

import (
	"strings"
	"time"
)

// TeamScore is one side of a game: identity, points and poll standing.
type TeamScore struct {
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	Score        int     `json:"score"`
	Record       *string `json:"record,omitempty"`
	Rank         *int    `json:"rank,omitempty"`
}

// IsRanked reports whether the team holds a poll rank.
func (t TeamScore) IsRanked() bool {
	return t.Rank != nil && *t.Rank > 0
}

// Game is the normalized shape of a single scoreboard event.
// Values are treated as immutable once built; nothing downstream edits them in place.
type Game struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"startTime"`
	Status     string    `json:"status"`
	Period     int       `json:"period"`
	Clock      string    `json:"clock"`
	IsLive     bool      `json:"isLive"`
	Venue      *string   `json:"venue,omitempty"`
	Broadcasts []string  `json:"broadcasts"`
	Home       TeamScore `json:"home"`
	Away       TeamScore `json:"away"`
	Notes      []string  `json:"notes"`
}

// ScoreMargin is the absolute point difference between the two sides.
func (g Game) ScoreMargin() int {
	diff := g.Home.Score - g.Away.Score
	if diff < 0 {
		return -diff
	}
	return diff
}

// IsFinal reports whether the feed status marks the game as finished.
func (g Game) IsFinal() bool {
	return strings.Contains(strings.ToLower(g.Status), "final")
}

// Winner returns the higher-scoring side of a final, untied game.
func (g Game) Winner() (TeamScore, bool) {
	if !g.IsFinal() || g.Home.Score == g.Away.Score {
		return TeamScore{}, false
	}
	if g.Home.Score > g.Away.Score {
		return g.Home, true
	}
	return g.Away, true
}

// HasRankedTeam reports whether either side is ranked.
func (g Game) HasRankedTeam() bool {
	return g.Home.IsRanked() || g.Away.IsRanked()
}

// BothRanked reports whether both sides are ranked.
func (g Game) BothRanked() bool {
	return g.Home.IsRanked() && g.Away.IsRanked()
}
