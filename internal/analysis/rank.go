package analysis

import (
	"cmp"
	"slices"
	"time"

	"github.com/preston-bernstein/cfb-meta-service/internal/domain/games"
)

// NoLimit asks SelectTopGames for every game.
const NoLimit = -1

type scoredGame struct {
	game  games.Game
	score float64
}

// SelectTopGames orders games by interest score, highest first, and keeps the first limit.
// Ties keep their input order. A negative limit keeps everything. The input slice is not modified.
func SelectTopGames(gs []games.Game, limit int, now time.Time) []games.Game {
	if now.IsZero() {
		now = time.Now().UTC()
	}

	scored := make([]scoredGame, len(gs))
	for i, g := range gs {
		scored[i] = scoredGame{game: g, score: InterestScore(g, now)}
	}
	slices.SortStableFunc(scored, func(a, b scoredGame) int {
		return cmp.Compare(b.score, a.score)
	})

	if limit >= 0 && limit < len(scored) {
		scored = scored[:limit]
	}
	ranked := make([]games.Game, len(scored))
	for i, s := range scored {
		ranked[i] = s.game
	}
	return ranked
}
