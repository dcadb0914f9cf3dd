package bracket

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entrants(n int) []Entrant {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	es := make([]Entrant, n)
	for i := range es {
		es[i] = Entrant{
			PlayerID:     uuid.New(),
			Elo:          2000 - i*10,
			RegisteredAt: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return es
}

func TestPattern(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Pattern(2))
	assert.Equal(t, []int{1, 4, 2, 3}, Pattern(4))
	assert.Equal(t, []int{1, 8, 4, 5, 2, 7, 3, 6}, Pattern(8))
}

func TestBuildRoundsAndByes(t *testing.T) {
	for n := 2; n <= 40; n++ {
		es := entrants(n)
		b, seeds, err := Build(uuid.New(), es, Options{Method: MethodRanked})
		require.NoError(t, err)

		rounds := Rounds(n)
		assert.Equal(t, rounds, b.TotalRounds, "n=%d", n)
		assert.Equal(t, 1<<rounds, b.TotalPlayers, "n=%d", n)
		assert.GreaterOrEqual(t, b.TotalPlayers, n)
		assert.Less(t, b.TotalPlayers, 2*n)
		assert.Len(t, seeds, n)
		assert.Len(t, b.Matches, b.TotalPlayers/2)

		byes := b.TotalPlayers - n
		assert.Equal(t, byes, b.Byes(), "n=%d", n)

		seedOf := make(map[uuid.UUID]int, n)
		for _, s := range seeds {
			seedOf[s.PlayerID] = s.Number
		}
		for _, m := range b.Matches {
			assert.Equal(t, 1, m.Key.Round)
			if !m.IsBye {
				assert.Equal(t, domain.MatchScheduled, m.Status)
				continue
			}
			assert.LessOrEqual(t, seedOf[m.Player1], byes, "bye must go to a top seed, n=%d", n)
			assert.Equal(t, domain.MatchCompleted, m.Status)
			assert.Equal(t, m.Player1, m.Winner)
			assert.Equal(t, uuid.Nil, m.Player2)
		}
	}
}

func TestBuildLinks(t *testing.T) {
	b, _, err := Build(uuid.New(), entrants(8), Options{})
	require.NoError(t, err)

	m, ok := b.Match(domain.MatchKey{Round: 1, Number: 3})
	require.True(t, ok)
	require.NotNil(t, m.Next)
	assert.Equal(t, domain.MatchKey{Round: 2, Number: 2}, *m.Next)
	assert.Nil(t, m.Prev1)

	two, _, err := Build(uuid.New(), entrants(2), Options{})
	require.NoError(t, err)
	require.Len(t, two.Matches, 1)
	assert.Nil(t, two.Matches[0].Next)
}

func TestBuildSeedOrder(t *testing.T) {
	es := entrants(4)
	// Equal rating falls back to registration date.
	es[3].Elo = es[0].Elo

	b, seeds, err := Build(uuid.New(), es, Options{Method: MethodRanked})
	require.NoError(t, err)
	assert.Equal(t, es[0].PlayerID, seeds[0].PlayerID)
	assert.Equal(t, es[3].PlayerID, seeds[1].PlayerID)

	first := b.Round(1)
	require.Len(t, first, 2)
	assert.Equal(t, seeds[0].PlayerID, first[0].Player1)
	assert.Equal(t, seeds[3].PlayerID, first[0].Player2)
	assert.Equal(t, seeds[1].PlayerID, first[1].Player1)
	assert.Equal(t, seeds[2].PlayerID, first[1].Player2)

	reversed := []Entrant{es[2], es[1], es[0]}
	_, seeds, err = Build(uuid.New(), reversed, Options{Method: MethodRegistrationOrder})
	require.NoError(t, err)
	assert.Equal(t, es[0].PlayerID, seeds[0].PlayerID)
	assert.Equal(t, es[2].PlayerID, seeds[2].PlayerID)
}

func TestBuildRandomIsReproducible(t *testing.T) {
	es := entrants(16)
	_, a, err := Build(uuid.New(), es, Options{Method: MethodRandom, Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)
	_, b, err := Build(uuid.New(), es, Options{Method: MethodRandom, Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildErrors(t *testing.T) {
	_, _, err := Build(uuid.New(), entrants(1), Options{})
	assert.ErrorIs(t, err, ErrInsufficientParticipants)

	_, _, err = Build(uuid.New(), entrants(4), Options{Method: "swiss"})
	assert.ErrorIs(t, err, ErrUnknownMethod)

	es := entrants(3)
	es[2].PlayerID = es[0].PlayerID
	_, _, err = Build(uuid.New(), es, Options{})
	assert.ErrorIs(t, err, ErrInvalidEntrant)
}

func TestGenerate(t *testing.T) {
	tournament := domain.Tournament{ID: uuid.New()}
	es := entrants(6)

	b, _, err := Generate(tournament, nil, es, Options{})
	require.NoError(t, err)
	assert.Equal(t, tournament.ID, b.TournamentID)

	tournament.BracketGenerated = true
	_, _, err = Generate(tournament, &b, es, Options{})
	assert.ErrorIs(t, err, ErrAlreadyGenerated)

	again, _, err := Generate(tournament, &b, es, Options{ForceRegenerate: true})
	require.NoError(t, err)
	assert.Equal(t, b.ID, again.ID)

	played := b.Clone()
	for i := range played.Matches {
		if !played.Matches[i].IsBye {
			played.Matches[i].Status = domain.MatchCompleted
			played.Matches[i].Winner = played.Matches[i].Player1
			break
		}
	}
	_, _, err = Generate(tournament, &played, es, Options{ForceRegenerate: true})
	assert.ErrorIs(t, err, ErrAlreadyGenerated)

	_, _, err = Generate(domain.Tournament{ID: uuid.New()}, nil, es[:1], Options{})
	assert.ErrorIs(t, err, ErrInsufficientParticipants)
}
