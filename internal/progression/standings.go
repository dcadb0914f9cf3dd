package progression

import (
	"sort"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
)

// Standings ranks every player of a completed bracket. Final and third-place
// matches decide positions 1 to 4; losers of earlier rounds share the lowest
// position of their round: 8 for quarterfinals, 16 for the round before, etc.
// Without a third-place match the semifinal losers share position 3.
func (e *Engine) Standings(b domain.Bracket) ([]domain.Standing, error) {
	done, err := e.IsComplete(b)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, ErrNotComplete
	}

	positions := make(map[uuid.UUID]int)
	place := func(id uuid.UUID, pos int) {
		if id == uuid.Nil {
			return
		}
		if _, ok := positions[id]; !ok {
			positions[id] = pos
		}
	}

	final, _ := b.Final()
	place(final.Winner, 1)
	place(final.Loser, 2)
	if third, ok := b.ThirdPlace(); ok {
		place(third.Winner, 3)
		place(third.Loser, 4)
	}

	for r := b.TotalRounds - 1; r >= 1; r-- {
		pos := 1 << (b.TotalRounds - r + 1)
		if r == b.TotalRounds-1 {
			pos = 3
		}
		for _, m := range b.Round(r) {
			place(m.Loser, pos)
		}
	}

	standings := make([]domain.Standing, 0, len(positions))
	for id, pos := range positions {
		standings = append(standings, domain.Standing{PlayerID: id, Position: pos})
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Position != standings[j].Position {
			return standings[i].Position < standings[j].Position
		}
		return standings[i].PlayerID.String() < standings[j].PlayerID.String()
	})
	return standings, nil
}
