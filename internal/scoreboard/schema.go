package scoreboard

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// The record types below are the typed view of one feed event. Optional values are pointers,
// loosely-typed numerics stay `any` and are parsed leniently when the Game is built.

type eventRecord struct {
	ID           *string             `mapstructure:"id"`
	Date         *string             `mapstructure:"date"`
	Competitions []competitionRecord `mapstructure:"competitions"`
}

type competitionRecord struct {
	ID            *string              `mapstructure:"id"`
	Date          *string              `mapstructure:"date"`
	Status        *statusRecord        `mapstructure:"status"`
	Competitors   []competitorRecord   `mapstructure:"competitors"`
	Broadcasts    []broadcastRecord    `mapstructure:"broadcasts"`
	GeoBroadcasts []geoBroadcastRecord `mapstructure:"geoBroadcasts"`
	Venue         *venueRecord         `mapstructure:"venue"`
	Odds          []oddsRecord         `mapstructure:"odds"`
	Headlines     []headlineRecord     `mapstructure:"headlines"`
}

type statusRecord struct {
	Type         *statusTypeRecord `mapstructure:"type"`
	Period       any               `mapstructure:"period"`
	DisplayClock *string           `mapstructure:"displayClock"`
}

type statusTypeRecord struct {
	State        *string `mapstructure:"state"`
	Name         *string `mapstructure:"name"`
	Period       any     `mapstructure:"period"`
	DisplayClock *string `mapstructure:"displayClock"`
}

type competitorRecord struct {
	HomeAway string          `mapstructure:"homeAway"`
	Team     *teamRecord     `mapstructure:"team"`
	Score    any             `mapstructure:"score"`
	Records  []recordSummary `mapstructure:"records"`
}

type teamRecord struct {
	DisplayName  *string `mapstructure:"displayName"`
	Name         *string `mapstructure:"name"`
	Abbreviation *string `mapstructure:"abbreviation"`
	Rank         any     `mapstructure:"rank"`
}

type recordSummary struct {
	Summary *string `mapstructure:"summary"`
}

type broadcastRecord struct {
	Media any      `mapstructure:"media"`
	Names []string `mapstructure:"names"`
}

type geoBroadcastRecord struct {
	Type  *geoTypeRecord  `mapstructure:"type"`
	Media *geoMediaRecord `mapstructure:"media"`
}

type geoTypeRecord struct {
	ShortName *string `mapstructure:"shortName"`
}

type geoMediaRecord struct {
	Type    *string `mapstructure:"type"`
	Channel *string `mapstructure:"channel"`
}

type venueRecord struct {
	FullName *string `mapstructure:"fullName"`
}

type oddsRecord struct {
	Details *string `mapstructure:"details"`
}

type headlineRecord struct {
	ShortLinkText *string `mapstructure:"shortLinkText"`
}

// decodeEvent validates the raw record shape and produces its typed view.
func decodeEvent(raw any) (eventRecord, error) {
	var rec eventRecord
	if _, ok := raw.(map[string]any); !ok {
		return rec, fmt.Errorf("%w: expected object, got %T", ErrMalformedEvent, raw)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &rec,
		// Feeds send ids as numbers or strings; weak typing folds both into strings.
		WeaklyTypedInput: true,
	})
	if err != nil {
		return rec, err
	}
	if err := dec.Decode(raw); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return rec, nil
}

// primaryCompetition is the first competition listed for the event.
func (e eventRecord) primaryCompetition() (competitionRecord, bool) {
	if len(e.Competitions) == 0 {
		return competitionRecord{}, false
	}
	return e.Competitions[0], true
}

func (e eventRecord) id() string {
	if e.ID != nil && *e.ID != "" {
		return *e.ID
	}
	if c, ok := e.primaryCompetition(); ok && c.ID != nil {
		return *c.ID
	}
	return ""
}

// side returns the first competitor tagged with the given homeAway value.
func (c competitionRecord) side(homeAway string) (competitorRecord, bool) {
	for _, comp := range c.Competitors {
		if comp.HomeAway == homeAway {
			return comp, true
		}
	}
	return competitorRecord{}, false
}

// state and friends read status.type first and fall back to status itself.
func (c competitionRecord) state() string {
	if c.Status != nil && c.Status.Type != nil && c.Status.Type.State != nil {
		return *c.Status.Type.State
	}
	return ""
}

func (c competitionRecord) statusName() string {
	if c.Status != nil && c.Status.Type != nil && c.Status.Type.Name != nil {
		return *c.Status.Type.Name
	}
	return unknownStatus
}

func (c competitionRecord) period() int {
	if c.Status == nil {
		return 0
	}
	if c.Status.Type != nil && c.Status.Type.Period != nil {
		return nonNegativeInt(c.Status.Type.Period)
	}
	return nonNegativeInt(c.Status.Period)
}

func (c competitionRecord) clock() string {
	if c.Status == nil {
		return ""
	}
	if c.Status.Type != nil && c.Status.Type.DisplayClock != nil {
		return *c.Status.Type.DisplayClock
	}
	return deref(c.Status.DisplayClock)
}
