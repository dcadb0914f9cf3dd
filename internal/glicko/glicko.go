package glicko

import (
	"sort"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
	glicko "github.com/zelenin/go-glicko2"
)

// Starting values for players without history.
const (
	StartRating     = 1500
	StartDeviation  = 350
	StartVolatility = 0.06
)

type Rating struct {
	PlayerID   uuid.UUID
	Rating     float64
	Deviation  float64
	Volatility float64
	Matches    int
}

// Calculate rates every contested, completed match of the brackets as one
// rating period. Byes carry no information and are skipped.
func Calculate(brackets ...domain.Bracket) []Rating {
	players := make(map[uuid.UUID]*glicko.Player)
	played := make(map[uuid.UUID]int)
	get := func(id uuid.UUID) *glicko.Player {
		p, ok := players[id]
		if !ok {
			p = glicko.NewPlayer(glicko.NewRating(StartRating, StartDeviation, StartVolatility))
			players[id] = p
		}
		return p
	}

	period := glicko.NewRatingPeriod()
	for _, b := range brackets {
		for _, m := range b.Matches {
			if m.IsBye || m.Status != domain.MatchCompleted || m.Winner == uuid.Nil || m.Loser == uuid.Nil {
				continue
			}
			period.AddMatch(get(m.Winner), get(m.Loser), glicko.MATCH_RESULT_WIN)
			played[m.Winner]++
			played[m.Loser]++
		}
	}
	period.Calculate()

	ratings := make([]Rating, 0, len(players))
	for id, p := range players {
		ratings = append(ratings, Rating{
			PlayerID:   id,
			Rating:     p.Rating().R(),
			Deviation:  p.Rating().Rd(),
			Volatility: p.Rating().Sigma(),
			Matches:    played[id],
		})
	}
	sort.SliceStable(ratings, func(i, j int) bool {
		if ratings[i].Rating != ratings[j].Rating {
			return ratings[i].Rating > ratings[j].Rating
		}
		return ratings[i].PlayerID.String() < ratings[j].PlayerID.String()
	})
	return ratings
}
