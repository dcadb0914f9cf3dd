package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/goserg/tournament/gen/model"
	"github.com/goserg/tournament/gen/table"
	"github.com/goserg/tournament/internal/domain"
	"github.com/goserg/tournament/internal/storage"
)

func (s *Storage) LoadRegistrations(ctx context.Context, tournamentID uuid.UUID) ([]domain.Registration, error) {
	var dest []model.Registrations
	err := table.Registrations.
		SELECT(table.Registrations.AllColumns).
		FROM(table.Registrations).
		WHERE(table.Registrations.TournamentID.EQ(sqlite.UUID(tournamentID))).
		ORDER_BY(table.Registrations.RegistrationDate.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	registrations := make([]domain.Registration, 0, len(dest))
	for _, r := range dest {
		converted, err := convertRegistrationToDomain(r)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, converted)
	}
	return registrations, nil
}

func (s *Storage) SaveRegistration(ctx context.Context, r domain.Registration) error {
	row := convertRegistrationFromDomain(r)
	return inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		ok, err := updated(table.Registrations.
			UPDATE(table.Registrations.MutableColumns).
			MODEL(row).
			WHERE(table.Registrations.ID.EQ(sqlite.String(row.ID))).
			ExecContext(ctx, tx))
		if err != nil || ok {
			return err
		}
		_, err = table.Registrations.INSERT(table.Registrations.AllColumns).MODEL(row).ExecContext(ctx, tx)
		return err
	})
}

func (s *Storage) SaveSeeds(ctx context.Context, tournamentID uuid.UUID, seeds map[uuid.UUID]int) error {
	return inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		_, err := table.Registrations.
			UPDATE(table.Registrations.SeedNumber).
			SET(sqlite.NULL).
			WHERE(table.Registrations.TournamentID.EQ(sqlite.UUID(tournamentID))).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
		for playerID, seed := range seeds {
			ok, err := updated(table.Registrations.
				UPDATE(table.Registrations.SeedNumber).
				SET(sqlite.Int(int64(seed))).
				WHERE(table.Registrations.TournamentID.EQ(sqlite.UUID(tournamentID)).
					AND(table.Registrations.PlayerID.EQ(sqlite.UUID(playerID)))).
				ExecContext(ctx, tx))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("registration of %s: %w", playerID, storage.ErrNotFound)
			}
		}
		return nil
	})
}

func (s *Storage) RemoveRegistration(ctx context.Context, tournamentID, playerID uuid.UUID) error {
	ok, err := updated(table.Registrations.
		DELETE().
		WHERE(table.Registrations.TournamentID.EQ(sqlite.UUID(tournamentID)).
			AND(table.Registrations.PlayerID.EQ(sqlite.UUID(playerID)))).
		ExecContext(ctx, s.db))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("registration of %s: %w", playerID, storage.ErrNotFound)
	}
	return nil
}
