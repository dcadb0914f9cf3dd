package bracket

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
)

var (
	ErrInsufficientParticipants = errors.New("at least two participants are required")
	ErrAlreadyGenerated         = errors.New("bracket already generated")
	ErrUnknownMethod            = errors.New("unknown seeding method")
	ErrInvalidEntrant           = errors.New("invalid entrant")
)

type Options struct {
	Method Method
	// Rand drives MethodRandom. A fixed source gives a reproducible draw.
	Rand            *rand.Rand
	ForceRegenerate bool
	Now             func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Build seeds entrants into a fresh single-elimination bracket. Only the
// first round is created; byes are completed immediately with the top
// seed as winner so they progress like any other finished match.
func Build(tournamentID uuid.UUID, entrants []Entrant, opts Options) (domain.Bracket, []Seed, error) {
	if len(entrants) < 2 {
		return domain.Bracket{}, nil, fmt.Errorf("%w: got %d", ErrInsufficientParticipants, len(entrants))
	}
	method := opts.Method
	if method == "" {
		method = MethodRanked
	}
	ordered, err := Order(entrants, method, opts.Rand)
	if err != nil {
		return domain.Bracket{}, nil, err
	}

	rounds := Rounds(len(ordered))
	size := 1 << rounds
	now := opts.now()

	seeds := make([]Seed, len(ordered))
	for i, e := range ordered {
		seeds[i] = Seed{PlayerID: e.PlayerID, Number: i + 1}
	}
	playerAt := func(seed int) uuid.UUID {
		if seed > len(seeds) {
			return uuid.Nil
		}
		return seeds[seed-1].PlayerID
	}

	b := domain.Bracket{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		TotalPlayers: size,
		TotalRounds:  rounds,
		CurrentRound: 1,
		Status:       domain.BracketSeeded,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	pattern := Pattern(size)
	matches := make([]domain.Match, 0, size/2)
	for i := 0; i < len(pattern); i += 2 {
		m := domain.NewMatch(domain.MatchKey{Round: 1, Number: i/2 + 1}, rounds)
		m.Player1 = playerAt(pattern[i])
		m.Player2 = playerAt(pattern[i+1])
		if m.Player2 == uuid.Nil {
			m.IsBye = true
			m.Status = domain.MatchCompleted
			m.Winner = m.Player1
		}
		matches = append(matches, m)
	}
	b.Add(matches...)
	return b, seeds, nil
}

// Generate builds the bracket for a tournament, refusing to replace an
// existing one unless regeneration is forced and nothing has been played.
// existing is nil when the tournament has no bracket yet.
func Generate(t domain.Tournament, existing *domain.Bracket, entrants []Entrant, opts Options) (domain.Bracket, []Seed, error) {
	if len(entrants) < 2 {
		return domain.Bracket{}, nil, fmt.Errorf("%w: got %d", ErrInsufficientParticipants, len(entrants))
	}
	if existing != nil || t.BracketGenerated {
		if !opts.ForceRegenerate {
			return domain.Bracket{}, nil, ErrAlreadyGenerated
		}
		if existing != nil && existing.PlayedMatches() > 0 {
			return domain.Bracket{}, nil, fmt.Errorf("%w: %d matches already played", ErrAlreadyGenerated, existing.PlayedMatches())
		}
	}

	b, seeds, err := Build(t.ID, entrants, opts)
	if err != nil {
		return domain.Bracket{}, nil, err
	}
	if existing != nil {
		b.ID = existing.ID
		b.CreatedAt = existing.CreatedAt
	}
	return b, seeds, nil
}
