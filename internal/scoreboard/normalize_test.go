package scoreboard

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func competitor(homeAway, abbr string, score any) map[string]any {
	return map[string]any{
		"homeAway": homeAway,
		"score":    score,
		"team": map[string]any{
			"displayName":  abbr + " Team",
			"abbreviation": abbr,
		},
	}
}

func baseEvent() map[string]any {
	return map[string]any{
		"id":   "1",
		"date": "2023-10-21T19:30Z",
		"competitions": []any{
			map[string]any{
				"status": map[string]any{
					"period":       float64(2),
					"displayClock": "8:15",
					"type": map[string]any{
						"state": "in",
						"name":  "STATUS_IN_PROGRESS",
					},
				},
				"competitors": []any{
					competitor("home", "HOM", "14"),
					competitor("away", "AWY", float64(10)),
				},
			},
		},
	}
}

func competition(ev map[string]any) map[string]any {
	return ev["competitions"].([]any)[0].(map[string]any)
}

func TestNormalizeEventBuildsGame(t *testing.T) {
	ev := baseEvent()
	comp := competition(ev)
	comp["venue"] = map[string]any{"fullName": "Home Field"}
	comp["competitors"].([]any)[0].(map[string]any)["records"] = []any{
		map[string]any{"summary": "5-2"},
		map[string]any{"summary": "3-1"},
	}
	comp["competitors"].([]any)[0].(map[string]any)["team"].(map[string]any)["rank"] = float64(12)

	g, err := NormalizeEvent(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ID != "1" || g.Status != "STATUS_IN_PROGRESS" || !g.IsLive {
		t.Fatalf("unexpected identity/status: %+v", g)
	}
	if g.Period != 2 || g.Clock != "8:15" {
		t.Fatalf("expected status fallbacks to be read, got period=%d clock=%q", g.Period, g.Clock)
	}
	if !g.StartTime.Equal(time.Date(2023, 10, 21, 19, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start time %v", g.StartTime)
	}
	if g.Home.Score != 14 || g.Away.Score != 10 {
		t.Fatalf("expected lenient scores, got %d-%d", g.Home.Score, g.Away.Score)
	}
	if g.Home.Record == nil || *g.Home.Record != "5-2" {
		t.Fatalf("expected first record summary, got %v", g.Home.Record)
	}
	if g.Home.Rank == nil || *g.Home.Rank != 12 || g.Away.Rank != nil {
		t.Fatalf("unexpected ranks home=%v away=%v", g.Home.Rank, g.Away.Rank)
	}
	if g.Venue == nil || *g.Venue != "Home Field" {
		t.Fatalf("unexpected venue %v", g.Venue)
	}
	if len(g.Broadcasts) != 0 || len(g.Notes) != 0 {
		t.Fatalf("expected empty broadcasts and notes, got %v %v", g.Broadcasts, g.Notes)
	}
}

func TestNormalizeEventStatusTypeWins(t *testing.T) {
	ev := baseEvent()
	status := competition(ev)["status"].(map[string]any)
	status["type"].(map[string]any)["period"] = "4"
	status["type"].(map[string]any)["displayClock"] = "0:42"

	g, err := NormalizeEvent(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Period != 4 || g.Clock != "0:42" {
		t.Fatalf("expected status.type values, got period=%d clock=%q", g.Period, g.Clock)
	}
}

func TestNormalizeEventDefaults(t *testing.T) {
	ev := baseEvent()
	comp := competition(ev)
	delete(comp, "status")
	comp["competitors"] = []any{
		map[string]any{"homeAway": "home", "score": "n/a", "team": map[string]any{"name": "Fallback", "rank": "0"}},
		map[string]any{"homeAway": "away", "score": "-7", "team": map[string]any{}},
	}

	g, err := NormalizeEvent(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Status != "STATUS_UNKNOWN" || g.IsLive || g.Period != 0 || g.Clock != "" {
		t.Fatalf("unexpected status defaults: %+v", g)
	}
	if g.Home.Name != "Fallback" || g.Home.Score != 0 || g.Home.Rank != nil {
		t.Fatalf("unexpected home defaults: %+v", g.Home)
	}
	if g.Away.Name != "" || g.Away.Abbreviation != "" || g.Away.Score != 0 {
		t.Fatalf("unexpected away defaults: %+v", g.Away)
	}
}

func TestNormalizeEventIDFallsBackToCompetition(t *testing.T) {
	ev := baseEvent()
	delete(ev, "id")
	competition(ev)["id"] = float64(987)

	g, err := NormalizeEvent(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ID != "987" {
		t.Fatalf("expected competition id, got %q", g.ID)
	}
}

func TestNormalizeEventPrefersCompetitionDate(t *testing.T) {
	ev := baseEvent()
	competition(ev)["date"] = "2023-10-22T00:00Z"

	g, err := NormalizeEvent(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.StartTime.Equal(time.Date(2023, 10, 22, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected competition date, got %v", g.StartTime)
	}
}

func TestNormalizeEventNotes(t *testing.T) {
	withNotes := func(state string) map[string]any {
		ev := baseEvent()
		comp := competition(ev)
		comp["status"].(map[string]any)["type"].(map[string]any)["state"] = state
		comp["odds"] = []any{map[string]any{"details": "HOM -7"}, map[string]any{"details": "ignored"}}
		comp["headlines"] = []any{map[string]any{"shortLinkText": "Preview"}}
		return ev
	}

	pre, err := NormalizeEvent(withNotes("pre"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(pre.Notes, []string{"HOM -7", "Preview"}) {
		t.Fatalf("unexpected pregame notes %v", pre.Notes)
	}

	live, err := NormalizeEvent(withNotes("in"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(live.Notes, []string{"Preview"}) {
		t.Fatalf("expected odds to be dropped once underway, got %v", live.Notes)
	}
}

func TestNormalizeEventBroadcasts(t *testing.T) {
	ev := baseEvent()
	comp := competition(ev)
	comp["broadcasts"] = []any{
		map[string]any{"media": "TV", "names": []any{"ESPN", "ESPN2"}},
		map[string]any{"media": "Radio", "names": []any{"Sports Radio"}},
		map[string]any{"media": "TV", "names": []any{"ESPN"}},
		map[string]any{"media": map[string]any{"shortName": "TV"}, "names": []any{"Odd"}},
	}
	comp["geoBroadcasts"] = []any{
		map[string]any{"type": map[string]any{"shortName": "Regional"}, "media": map[string]any{"type": "TV", "channel": "RSN"}},
	}

	g, err := NormalizeEvent(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(g.Broadcasts, []string{"ESPN", "ESPN2"}) {
		t.Fatalf("unexpected broadcasts %v", g.Broadcasts)
	}
}

func TestNormalizeEventGeoBroadcastFallback(t *testing.T) {
	ev := baseEvent()
	competition(ev)["geoBroadcasts"] = []any{
		map[string]any{"type": map[string]any{"shortName": "National"}, "media": map[string]any{"type": "TV", "channel": " ABC "}},
		map[string]any{"type": map[string]any{"shortName": "National"}, "media": map[string]any{"type": "TV", "channel": "ABC"}},
		map[string]any{"type": map[string]any{"shortName": "Streaming"}, "media": map[string]any{"type": "Web", "channel": "App"}},
		map[string]any{"type": map[string]any{"shortName": "Local"}, "media": map[string]any{"type": "TV"}},
		map[string]any{"media": map[string]any{"type": "TV", "channel": "NoType"}},
	}

	g, err := NormalizeEvent(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(g.Broadcasts, []string{"National ABC", "Local"}) {
		t.Fatalf("unexpected geo broadcasts %v", g.Broadcasts)
	}
}

func TestNormalizeEventStructuralFailures(t *testing.T) {
	cases := map[string]struct {
		mutate func(map[string]any)
		want   error
	}{
		"no competitions": {
			mutate: func(ev map[string]any) { ev["competitions"] = []any{} },
			want:   ErrMissingCompetition,
		},
		"no home": {
			mutate: func(ev map[string]any) {
				competition(ev)["competitors"] = []any{competitor("away", "AWY", "3")}
			},
			want: ErrMissingHome,
		},
		"no away": {
			mutate: func(ev map[string]any) {
				competition(ev)["competitors"] = []any{competitor("home", "HOM", "3")}
			},
			want: ErrMissingAway,
		},
		"no team": {
			mutate: func(ev map[string]any) {
				delete(competition(ev)["competitors"].([]any)[1].(map[string]any), "team")
			},
			want: ErrMissingTeam,
		},
		"no date": {
			mutate: func(ev map[string]any) { delete(ev, "date") },
			want:   ErrInvalidStartTime,
		},
		"bad date": {
			mutate: func(ev map[string]any) { ev["date"] = "soon" },
			want:   ErrInvalidStartTime,
		},
		"wrong shape": {
			mutate: func(ev map[string]any) { ev["competitions"] = "nope" },
			want:   ErrMalformedEvent,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ev := baseEvent()
			tc.mutate(ev)
			_, err := NormalizeEvent(ev)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			nErr, ok := AsNormalizationError(err)
			if !ok {
				t.Fatalf("expected NormalizationError, got %T", err)
			}
			if tc.want != ErrMalformedEvent && nErr.EventID != "1" {
				t.Fatalf("expected event id on error, got %q", nErr.EventID)
			}
		})
	}
}

func TestNormalizeEventRejectsNonObjects(t *testing.T) {
	for _, raw := range []any{"not-an-event", nil, float64(3), []any{}} {
		_, err := NormalizeEvent(raw)
		if !errors.Is(err, ErrMalformedEvent) {
			t.Fatalf("NormalizeEvent(%#v) err = %v", raw, err)
		}
	}
}
