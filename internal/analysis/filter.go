package analysis

import "github.com/preston-bernstein/cfb-meta-service/internal/domain/games"

// Predicate decides whether a game stays in a filtered view.
type Predicate func(games.Game) bool

// OnlyLive keeps games in progress.
func OnlyLive(g games.Game) bool { return g.IsLive }

// OnlyRanked keeps games with at least one ranked side.
func OnlyRanked(g games.Game) bool { return g.HasRankedTeam() }

// Featured keeps games that are live or involve a ranked team.
func Featured(g games.Game) bool { return g.IsLive || g.HasRankedTeam() }

// Filter returns a new slice with the games matching every predicate, in input order.
func Filter(gs []games.Game, preds ...Predicate) []games.Game {
	out := make([]games.Game, 0, len(gs))
next:
	for _, g := range gs {
		for _, keep := range preds {
			if !keep(g) {
				continue next
			}
		}
		out = append(out, g)
	}
	return out
}
