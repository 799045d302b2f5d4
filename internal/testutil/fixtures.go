package testutil

import (
	"github.com/preston-bernstein/cfb-meta-service/internal/domain/games"
	"github.com/preston-bernstein/cfb-meta-service/internal/scoreboard"
)

// SampleGame returns a minimal scheduled game with the provided id.
func SampleGame(id string) games.Game {
	return games.Game{
		ID:         id,
		StartTime:  Kickoff,
		Status:     "STATUS_SCHEDULED",
		Broadcasts: []string{},
		Home:       games.TeamScore{Name: "Home Team", Abbreviation: "HOM"},
		Away:       games.TeamScore{Name: "Away Team", Abbreviation: "AWY"},
		Notes:      []string{},
	}
}

// RawEvent builds a feed event record the normalizer accepts.
// state is the feed's status state ("pre", "in" or "post").
func RawEvent(id, state string, homeScore, awayScore int) map[string]any {
	name := map[string]string{"pre": "STATUS_SCHEDULED", "in": "STATUS_IN_PROGRESS", "post": "STATUS_FINAL"}[state]
	return map[string]any{
		"id":   id,
		"date": Kickoff.Format("2006-01-02T15:04Z"),
		"competitions": []any{
			map[string]any{
				"status": map[string]any{
					"period":       float64(4),
					"displayClock": "1:30",
					"type":         map[string]any{"state": state, "name": name},
				},
				"competitors": []any{
					map[string]any{
						"homeAway": "home",
						"score":    float64(homeScore),
						"team":     map[string]any{"displayName": "Home " + id, "abbreviation": "H" + id},
					},
					map[string]any{
						"homeAway": "away",
						"score":    float64(awayScore),
						"team":     map[string]any{"displayName": "Away " + id, "abbreviation": "A" + id},
					},
				},
			},
		},
	}
}

// Scoreboard wraps raw event records into a document.
func Scoreboard(events ...any) scoreboard.Document {
	return scoreboard.Document{"events": events}
}
