package storage

import (
	"context"
	"errors"

	"github.com/goserg/tournament/internal/domain"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type TournamentStorage interface {
	LoadTournament(ctx context.Context, id uuid.UUID) (domain.Tournament, error)
	SaveTournament(ctx context.Context, t domain.Tournament) error
	ListTournaments(ctx context.Context) ([]domain.Tournament, error)
}

type RegistrationStorage interface {
	LoadRegistrations(ctx context.Context, tournamentID uuid.UUID) ([]domain.Registration, error)
	SaveRegistration(ctx context.Context, r domain.Registration) error
	// SaveSeeds stores seed numbers by player id.
	SaveSeeds(ctx context.Context, tournamentID uuid.UUID, seeds map[uuid.UUID]int) error
	RemoveRegistration(ctx context.Context, tournamentID, playerID uuid.UUID) error
}

type BracketStorage interface {
	LoadBracket(ctx context.Context, tournamentID uuid.UUID) (domain.Bracket, error)
	// SaveBracket replaces the stored bracket and all its matches atomically.
	SaveBracket(ctx context.Context, b domain.Bracket) error
}

type RankingStorage interface {
	LoadPlayerRanking(ctx context.Context, playerID uuid.UUID) (domain.PlayerRanking, error)
	SavePlayerRanking(ctx context.Context, r domain.PlayerRanking) error
	ListRankings(ctx context.Context) ([]domain.PlayerRanking, error)
}

type RewardPlanStorage interface {
	LoadRewardPlan(ctx context.Context, tournamentID uuid.UUID) (domain.RewardPlan, error)
	SaveRewardPlan(ctx context.Context, p domain.RewardPlan) error
}

// ResultStorage writes the outcome of a tournament step atomically, so a
// failed write leaves nothing half applied.
type ResultStorage interface {
	SaveResult(ctx context.Context, b domain.Bracket, rankings []domain.PlayerRanking) error
	SaveFinalization(ctx context.Context, t domain.Tournament, rankings []domain.PlayerRanking) error
}
