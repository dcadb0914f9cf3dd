package sqlite

import (
	"context"
	"database/sql"

	"github.com/goserg/tournament/internal/domain"
)

// SaveResult stores the bracket and the rankings a result changed in one transaction.
func (s *Storage) SaveResult(ctx context.Context, b domain.Bracket, rankings []domain.PlayerRanking) error {
	err := inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		if err := saveBracket(ctx, tx, b); err != nil {
			return err
		}
		for _, r := range rankings {
			if err := saveRanking(ctx, tx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logBracket(b)
	return nil
}

// SaveFinalization stores the closed tournament and the credited rankings in one transaction.
func (s *Storage) SaveFinalization(ctx context.Context, t domain.Tournament, rankings []domain.PlayerRanking) error {
	return inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		for _, r := range rankings {
			if err := saveRanking(ctx, tx, r); err != nil {
				return err
			}
		}
		return saveTournament(ctx, tx, t)
	})
}
