package reward

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goserg/tournament/internal/domain"
)

var (
	ErrBudgetExceeded    = errors.New("rewards exceed total prize")
	ErrInvalidPosition   = errors.New("position is not valid for tournament size")
	ErrNegativeValue     = errors.New("negative reward value")
	ErrMissingChampion   = errors.New("champion position is missing")
	ErrDuplicatePosition = errors.New("duplicate position")
)

// lowPayoutBasisPoints is the distribution share below which a plan is flagged.
const lowPayoutBasisPoints = 8000

type Validation struct {
	IsValid  bool
	Errors   []error
	Warnings []string
}

// Err joins all validation errors, nil for a valid plan.
func (v Validation) Err() error {
	return errors.Join(v.Errors...)
}

// Validate checks a possibly hand-edited plan against the bracket size.
func Validate(plan domain.RewardPlan, maxParticipants int) Validation {
	var v Validation

	total := plan.TotalCash()
	if total > plan.TotalPrize {
		v.Errors = append(v.Errors, fmt.Errorf("%w: %d > %d", ErrBudgetExceeded, total, plan.TotalPrize))
	}

	valid := validPositionSet(maxParticipants)
	seen := mapset.NewThreadUnsafeSet[int]()
	for _, p := range plan.Positions {
		if !seen.Add(p.Position) {
			v.Errors = append(v.Errors, fmt.Errorf("%w: %d", ErrDuplicatePosition, p.Position))
		}
		if !valid.Contains(p.Position) {
			v.Errors = append(v.Errors, fmt.Errorf("%w: %d for %d participants", ErrInvalidPosition, p.Position, maxParticipants))
		}
		if p.CashPrize < 0 || p.EloPoints < 0 || p.SpaPoints < 0 {
			v.Errors = append(v.Errors, fmt.Errorf("%w: position %d", ErrNegativeValue, p.Position))
		}
	}
	for _, a := range plan.SpecialAwards {
		if a.CashPrize < 0 {
			v.Errors = append(v.Errors, fmt.Errorf("%w: special award %s", ErrNegativeValue, a.ID))
		}
	}
	if !seen.Contains(1) {
		v.Errors = append(v.Errors, ErrMissingChampion)
	}

	if plan.TotalPrize > 0 && total < percentOf(plan.TotalPrize, lowPayoutBasisPoints) {
		v.Warnings = append(v.Warnings, fmt.Sprintf("only %d of %d prize pool is distributed", total, plan.TotalPrize))
	}
	if maxParticipants >= 4 && !seen.Contains(2) {
		v.Warnings = append(v.Warnings, "runner-up position is missing")
	}

	v.IsValid = len(v.Errors) == 0
	return v
}
