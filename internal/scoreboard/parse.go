package scoreboard

import (
	"iter"

	"github.com/preston-bernstein/cfb-meta-service/internal/domain/games"
)

// Result is the outcome of normalizing the event at Index.
type Result struct {
	Index   int
	EventID string
	Game    games.Game
	Err     error
}

// OK reports whether the event produced a Game.
func (r Result) OK() bool {
	return r.Err == nil
}

// Results normalizes every event in the document, one Result per event, in feed order.
// The sequence is lazy and can be ranged over any number of times.
func Results(doc Document) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for i, raw := range doc.Events() {
			g, err := NormalizeEvent(raw)
			res := Result{Index: i, Game: g, Err: err}
			if err == nil {
				res.EventID = g.ID
			} else if nErr, ok := AsNormalizationError(err); ok {
				nErr.Index = i
				res.EventID = nErr.EventID
			}
			if !yield(res) {
				return
			}
		}
	}
}

// ParseGames yields the games that normalized cleanly; broken events are skipped silently.
func ParseGames(doc Document) iter.Seq[games.Game] {
	return func(yield func(games.Game) bool) {
		for res := range Results(doc) {
			if !res.OK() {
				continue
			}
			if !yield(res.Game) {
				return
			}
		}
	}
}

// Collect drains the document into its games plus the results that were skipped.
func Collect(doc Document) ([]games.Game, []Result) {
	parsed := make([]games.Game, 0, len(doc.Events()))
	var skipped []Result
	for res := range Results(doc) {
		if res.OK() {
			parsed = append(parsed, res.Game)
			continue
		}
		skipped = append(skipped, res)
	}
	return parsed, skipped
}
