package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/goserg/tournament/gen/model"
	"github.com/goserg/tournament/gen/table"
	"github.com/goserg/tournament/internal/domain"
	"github.com/goserg/tournament/internal/storage"
)

func (s *Storage) LoadTournament(ctx context.Context, id uuid.UUID) (domain.Tournament, error) {
	var dest model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		WHERE(table.Tournaments.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Tournament{}, fmt.Errorf("tournament %s: %w", id, storage.ErrNotFound)
		}
		return domain.Tournament{}, err
	}
	return convertTournamentToDomain(dest)
}

func (s *Storage) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	var dest []model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		ORDER_BY(table.Tournaments.CreatedAt.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	tournaments := make([]domain.Tournament, 0, len(dest))
	for _, t := range dest {
		converted, err := convertTournamentToDomain(t)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, converted)
	}
	return tournaments, nil
}

func (s *Storage) SaveTournament(ctx context.Context, t domain.Tournament) error {
	return inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		return saveTournament(ctx, tx, t)
	})
}

func saveTournament(ctx context.Context, tx *sql.Tx, t domain.Tournament) error {
	row := convertTournamentFromDomain(t)
	ok, err := updated(table.Tournaments.
		UPDATE(table.Tournaments.MutableColumns).
		MODEL(row).
		WHERE(table.Tournaments.ID.EQ(sqlite.String(row.ID))).
		ExecContext(ctx, tx))
	if err != nil || ok {
		return err
	}
	_, err = table.Tournaments.INSERT(table.Tournaments.AllColumns).MODEL(row).ExecContext(ctx, tx)
	return err
}
