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

func (s *Storage) LoadBracket(ctx context.Context, tournamentID uuid.UUID) (domain.Bracket, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) (domain.Bracket, error) {
		var bracket model.Brackets
		err := table.Brackets.
			SELECT(table.Brackets.AllColumns).
			FROM(table.Brackets).
			WHERE(table.Brackets.TournamentID.EQ(sqlite.UUID(tournamentID))).
			QueryContext(ctx, tx, &bracket)
		if err != nil {
			if errors.Is(err, qrm.ErrNoRows) {
				return domain.Bracket{}, fmt.Errorf("bracket of %s: %w", tournamentID, storage.ErrNotFound)
			}
			return domain.Bracket{}, err
		}

		var matches []model.Matches
		err = table.Matches.
			SELECT(table.Matches.AllColumns).
			FROM(table.Matches).
			WHERE(table.Matches.BracketID.EQ(sqlite.String(bracket.ID))).
			ORDER_BY(table.Matches.Round.ASC(), table.Matches.Number.ASC()).
			QueryContext(ctx, tx, &matches)
		if err != nil {
			return domain.Bracket{}, err
		}
		return convertBracketToDomain(bracket, matches)
	})
}

// SaveBracket replaces the tournament's bracket, matches included, in one transaction.
func (s *Storage) SaveBracket(ctx context.Context, b domain.Bracket) error {
	err := inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		return saveBracket(ctx, tx, b)
	})
	if err != nil {
		return err
	}
	s.logBracket(b)
	return nil
}

func (s *Storage) logBracket(b domain.Bracket) {
	s.log.WithFields(map[string]interface{}{
		"tournament": b.TournamentID,
		"status":     b.Status,
		"matches":    len(b.Matches),
	}).Debug("bracket saved")
}

func saveBracket(ctx context.Context, tx *sql.Tx, b domain.Bracket) error {
	bracket, matches := convertBracketFromDomain(b)
	var existing []model.Brackets
	err := table.Brackets.
		SELECT(table.Brackets.ID).
		FROM(table.Brackets).
		WHERE(table.Brackets.TournamentID.EQ(sqlite.String(bracket.TournamentID)).
			OR(table.Brackets.ID.EQ(sqlite.String(bracket.ID)))).
		QueryContext(ctx, tx, &existing)
	if err != nil {
		return err
	}
	for _, old := range existing {
		_, err = table.Matches.DELETE().
			WHERE(table.Matches.BracketID.EQ(sqlite.String(old.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
		_, err = table.Brackets.DELETE().
			WHERE(table.Brackets.ID.EQ(sqlite.String(old.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}

	_, err = table.Brackets.INSERT(table.Brackets.AllColumns).MODEL(bracket).ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return nil
	}
	_, err = table.Matches.INSERT(table.Matches.AllColumns).MODELS(matches).ExecContext(ctx, tx)
	return err
}
