package scoreboard

import (
	"github.com/preston-bernstein/cfb-meta-service/internal/domain/games"
)

const (
	unknownStatus = "STATUS_UNKNOWN"
	stateLive     = "in"
	statePregame  = "pre"
	sideHome      = "home"
	sideAway      = "away"
)

// NormalizeEvent converts one raw event record into a Game.
// Structural problems (no competition, a missing side, an unusable start time) fail the record
// with a *NormalizationError; unparseable numbers fall back to defaults instead.
func NormalizeEvent(raw any) (games.Game, error) {
	rec, err := decodeEvent(raw)
	if err != nil {
		return games.Game{}, &NormalizationError{Err: err}
	}
	g, err := rec.toGame()
	if err != nil {
		return games.Game{}, &NormalizationError{EventID: rec.id(), Err: err}
	}
	return g, nil
}

func (e eventRecord) toGame() (games.Game, error) {
	comp, ok := e.primaryCompetition()
	if !ok {
		return games.Game{}, ErrMissingCompetition
	}

	homeData, ok := comp.side(sideHome)
	if !ok {
		return games.Game{}, ErrMissingHome
	}
	awayData, ok := comp.side(sideAway)
	if !ok {
		return games.Game{}, ErrMissingAway
	}
	home, err := homeData.teamScore()
	if err != nil {
		return games.Game{}, err
	}
	away, err := awayData.teamScore()
	if err != nil {
		return games.Game{}, err
	}

	rawDate := comp.Date
	if rawDate == nil {
		rawDate = e.Date
	}
	if rawDate == nil {
		return games.Game{}, ErrInvalidStartTime
	}
	start, err := parseStartTime(*rawDate)
	if err != nil {
		return games.Game{}, err
	}

	state := comp.state()
	return games.Game{
		ID:         e.id(),
		StartTime:  start,
		Status:     comp.statusName(),
		Period:     comp.period(),
		Clock:      comp.clock(),
		IsLive:     state == stateLive,
		Venue:      comp.venueName(),
		Broadcasts: comp.broadcasts(),
		Home:       home,
		Away:       away,
		Notes:      comp.notes(state),
	}, nil
}

func (c competitorRecord) teamScore() (games.TeamScore, error) {
	if c.Team == nil {
		return games.TeamScore{}, ErrMissingTeam
	}
	name := deref(c.Team.DisplayName)
	if name == "" {
		name = deref(c.Team.Name)
	}

	ts := games.TeamScore{
		Name:         name,
		Abbreviation: deref(c.Team.Abbreviation),
		Score:        nonNegativeInt(c.Score),
	}
	if len(c.Records) > 0 && c.Records[0].Summary != nil {
		summary := *c.Records[0].Summary
		ts.Record = &summary
	}
	if rank, ok := lenientInt(c.Team.Rank); ok && rank > 0 {
		ts.Rank = &rank
	}
	return ts, nil
}

func (c competitionRecord) venueName() *string {
	if c.Venue == nil || c.Venue.FullName == nil {
		return nil
	}
	name := *c.Venue.FullName
	return &name
}

func (c competitionRecord) notes(state string) []string {
	notes := make([]string, 0, 2)
	if state == statePregame && len(c.Odds) > 0 {
		if details := deref(c.Odds[0].Details); details != "" {
			notes = append(notes, details)
		}
	}
	if len(c.Headlines) > 0 {
		if text := deref(c.Headlines[0].ShortLinkText); text != "" {
			notes = append(notes, text)
		}
	}
	return notes
}
