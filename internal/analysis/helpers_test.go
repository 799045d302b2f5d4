package analysis_test

import (
	"time"

	"github.com/preston-bernstein/cfb-meta-service/internal/domain/games"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers/fixture"
	"github.com/preston-bernstein/cfb-meta-service/internal/scoreboard"
)

var kickoff = time.Date(2023, 10, 21, 20, 0, 0, 0, time.UTC)

func rank(v int) *int { return &v }

func liveGame(period int, clock string, home, away int) games.Game {
	return games.Game{
		ID:        "live",
		StartTime: kickoff,
		Status:    "STATUS_IN_PROGRESS",
		Period:    period,
		Clock:     clock,
		IsLive:    true,
		Home:      games.TeamScore{Name: "Home", Abbreviation: "HOM", Score: home},
		Away:      games.TeamScore{Name: "Away", Abbreviation: "AWY", Score: away},
	}
}

func finalGame(home, away int) games.Game {
	return games.Game{
		ID:        "final",
		StartTime: kickoff,
		Status:    "STATUS_FINAL",
		Period:    4,
		Clock:     "0:00",
		Home:      games.TeamScore{Name: "Home", Abbreviation: "HOM", Score: home},
		Away:      games.TeamScore{Name: "Away", Abbreviation: "AWY", Score: away},
	}
}

func scheduledGame(id string, start time.Time) games.Game {
	return games.Game{
		ID:        id,
		StartTime: start,
		Status:    "STATUS_SCHEDULED",
		Home:      games.TeamScore{Name: "Home", Abbreviation: "HOM"},
		Away:      games.TeamScore{Name: "Away", Abbreviation: "AWY"},
	}
}

func sampleGames() []games.Game {
	var out []games.Game
	for g := range scoreboard.ParseGames(fixture.Sample()) {
		out = append(out, g)
	}
	return out
}

func byID(gs []games.Game, id string) games.Game {
	for _, g := range gs {
		if g.ID == id {
			return g
		}
	}
	panic("no game " + id)
}

func ids(gs []games.Game) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.ID
	}
	return out
}
