package analysis_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/preston-bernstein/cfb-meta-service/internal/analysis"
	"github.com/preston-bernstein/cfb-meta-service/internal/domain/games"
)

func TestSelectTopGames(t *testing.T) {
	now := time.Date(2023, 10, 21, 23, 45, 0, 0, time.UTC)

	Convey("Given the sample slate", t, func() {
		sample := sampleGames()

		Convey("When ranking without a limit", func() {
			ranked := analysis.SelectTopGames(sample, analysis.NoLimit, now)

			Convey("Then every game is kept, ordered by descending interest", func() {
				So(ids(ranked), ShouldResemble, []string{"401514123", "401514400", "401514500", "401514200"})

				scores := make([]float64, len(ranked))
				for i, g := range ranked {
					scores[i] = analysis.InterestScore(g, now)
				}
				So(scores, ShouldResemble, []float64{80.5, 22.5, 17.25, 10})
			})

			Convey("And the input slice keeps its original order", func() {
				So(ids(sample), ShouldResemble, []string{"401514123", "401514200", "401514400", "401514500"})
			})
		})

		Convey("When ranking with a limit", func() {
			So(ids(analysis.SelectTopGames(sample, 2, now)), ShouldResemble, []string{"401514123", "401514400"})
			So(analysis.SelectTopGames(sample, 0, now), ShouldBeEmpty)
			So(analysis.SelectTopGames(sample, 50, now), ShouldHaveLength, 4)
		})
	})

	Convey("Given games with tied scores", t, func() {
		start := now.Add(10 * time.Hour)
		tied := []games.Game{
			scheduledGame("a", start),
			finalGame(30, 0),
			scheduledGame("b", start),
			scheduledGame("c", start),
		}

		Convey("Then ties keep their input order", func() {
			ranked := analysis.SelectTopGames(tied, analysis.NoLimit, now)
			So(ids(ranked), ShouldResemble, []string{"final", "a", "b", "c"})
		})

		Convey("And repeated runs give the same order", func() {
			first := ids(analysis.SelectTopGames(tied, analysis.NoLimit, now))
			for i := 0; i < 5; i++ {
				So(ids(analysis.SelectTopGames(tied, analysis.NoLimit, now)), ShouldResemble, first)
			}
		})
	})

	Convey("Given no games", t, func() {
		So(analysis.SelectTopGames(nil, analysis.NoLimit, now), ShouldBeEmpty)
	})
}
