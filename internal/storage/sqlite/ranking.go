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

func (s *Storage) LoadPlayerRanking(ctx context.Context, playerID uuid.UUID) (domain.PlayerRanking, error) {
	var dest model.PlayerRankings
	err := table.PlayerRankings.
		SELECT(table.PlayerRankings.AllColumns).
		FROM(table.PlayerRankings).
		WHERE(table.PlayerRankings.PlayerID.EQ(sqlite.UUID(playerID))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.PlayerRanking{}, fmt.Errorf("ranking of %s: %w", playerID, storage.ErrNotFound)
		}
		return domain.PlayerRanking{}, err
	}
	return convertRankingToDomain(dest)
}

func (s *Storage) ListRankings(ctx context.Context) ([]domain.PlayerRanking, error) {
	var dest []model.PlayerRankings
	err := table.PlayerRankings.
		SELECT(table.PlayerRankings.AllColumns).
		FROM(table.PlayerRankings).
		ORDER_BY(table.PlayerRankings.EloPoints.DESC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	rankings := make([]domain.PlayerRanking, 0, len(dest))
	for _, r := range dest {
		converted, err := convertRankingToDomain(r)
		if err != nil {
			return nil, err
		}
		rankings = append(rankings, converted)
	}
	return rankings, nil
}

func (s *Storage) SavePlayerRanking(ctx context.Context, r domain.PlayerRanking) error {
	return inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		return saveRanking(ctx, tx, r)
	})
}

func saveRanking(ctx context.Context, tx *sql.Tx, r domain.PlayerRanking) error {
	row := convertRankingFromDomain(r)
	ok, err := updated(table.PlayerRankings.
		UPDATE(table.PlayerRankings.MutableColumns).
		MODEL(row).
		WHERE(table.PlayerRankings.PlayerID.EQ(sqlite.String(row.PlayerID))).
		ExecContext(ctx, tx))
	if err != nil || ok {
		return err
	}
	_, err = table.PlayerRankings.INSERT(table.PlayerRankings.AllColumns).MODEL(row).ExecContext(ctx, tx)
	return err
}
