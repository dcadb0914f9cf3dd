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

func (s *Storage) LoadRewardPlan(ctx context.Context, tournamentID uuid.UUID) (domain.RewardPlan, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) (domain.RewardPlan, error) {
		var plan model.RewardPlans
		err := table.RewardPlans.
			SELECT(table.RewardPlans.AllColumns).
			FROM(table.RewardPlans).
			WHERE(table.RewardPlans.TournamentID.EQ(sqlite.UUID(tournamentID))).
			QueryContext(ctx, tx, &plan)
		if err != nil {
			if errors.Is(err, qrm.ErrNoRows) {
				return domain.RewardPlan{}, fmt.Errorf("reward plan of %s: %w", tournamentID, storage.ErrNotFound)
			}
			return domain.RewardPlan{}, err
		}

		var positions []model.RewardPositions
		err = table.RewardPositions.
			SELECT(table.RewardPositions.AllColumns).
			FROM(table.RewardPositions).
			WHERE(table.RewardPositions.TournamentID.EQ(sqlite.String(plan.TournamentID))).
			ORDER_BY(table.RewardPositions.Position.ASC()).
			QueryContext(ctx, tx, &positions)
		if err != nil {
			return domain.RewardPlan{}, err
		}

		var awards []model.SpecialAwards
		err = table.SpecialAwards.
			SELECT(table.SpecialAwards.AllColumns).
			FROM(table.SpecialAwards).
			WHERE(table.SpecialAwards.TournamentID.EQ(sqlite.String(plan.TournamentID))).
			ORDER_BY(table.SpecialAwards.ID.ASC()).
			QueryContext(ctx, tx, &awards)
		if err != nil {
			return domain.RewardPlan{}, err
		}
		return convertRewardPlanToDomain(plan, positions, awards)
	})
}

func (s *Storage) SaveRewardPlan(ctx context.Context, p domain.RewardPlan) error {
	plan, positions, awards, err := convertRewardPlanFromDomain(p)
	if err != nil {
		return err
	}
	return inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		where := sqlite.String(plan.TournamentID)
		_, err := table.SpecialAwards.DELETE().WHERE(table.SpecialAwards.TournamentID.EQ(where)).ExecContext(ctx, tx)
		if err != nil {
			return err
		}
		_, err = table.RewardPositions.DELETE().WHERE(table.RewardPositions.TournamentID.EQ(where)).ExecContext(ctx, tx)
		if err != nil {
			return err
		}
		_, err = table.RewardPlans.DELETE().WHERE(table.RewardPlans.TournamentID.EQ(where)).ExecContext(ctx, tx)
		if err != nil {
			return err
		}

		_, err = table.RewardPlans.INSERT(table.RewardPlans.AllColumns).MODEL(plan).ExecContext(ctx, tx)
		if err != nil {
			return err
		}
		if len(positions) > 0 {
			_, err = table.RewardPositions.INSERT(table.RewardPositions.AllColumns).MODELS(positions).ExecContext(ctx, tx)
			if err != nil {
				return err
			}
		}
		if len(awards) > 0 {
			_, err = table.SpecialAwards.INSERT(table.SpecialAwards.AllColumns).MODELS(awards).ExecContext(ctx, tx)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
