package glicko

import (
	"testing"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	br := domain.Bracket{TotalRounds: 2}
	br.Add(
		domain.Match{Key: domain.MatchKey{Round: 1, Number: 1}, Player1: a, Status: domain.MatchCompleted, Winner: a, IsBye: true},
		domain.Match{Key: domain.MatchKey{Round: 1, Number: 2}, Player1: b, Player2: c, Status: domain.MatchCompleted, Winner: b, Loser: c},
		domain.Match{Key: domain.MatchKey{Round: 2, Number: 1}, Player1: a, Player2: b, Status: domain.MatchCompleted, Winner: a, Loser: b},
	)

	ratings := Calculate(br)
	require.Len(t, ratings, 3)
	assert.Equal(t, a, ratings[0].PlayerID)
	assert.Equal(t, c, ratings[2].PlayerID)
	assert.Greater(t, ratings[0].Rating, float64(StartRating))
	assert.Less(t, ratings[2].Rating, float64(StartRating))
	assert.Less(t, ratings[0].Deviation, float64(StartDeviation))
	assert.Equal(t, 1, ratings[0].Matches)
	assert.Equal(t, 2, ratings[1].Matches)
}

func TestCalculateEmpty(t *testing.T) {
	assert.Empty(t, Calculate())
}
