package domain

import "github.com/google/uuid"

// RewardParams are the tournament settings a reward plan is derived from.
type RewardParams struct {
	Tier            Tier
	EntryFee        int64
	MaxParticipants int
	GameFormat      GameFormat
}

type RewardPosition struct {
	Position  int
	EloPoints int
	SpaPoints int
	CashPrize int64
	Items     []string
	IsVisible bool
}

type SpecialAward struct {
	ID        string
	Name      string
	CashPrize int64
}

type RewardPlan struct {
	TournamentID  uuid.UUID
	Params        RewardParams
	TotalPrize    int64
	Positions     []RewardPosition
	SpecialAwards []SpecialAward
}

func (p RewardPlan) Position(pos int) (RewardPosition, bool) {
	for i := range p.Positions {
		if p.Positions[i].Position == pos {
			return p.Positions[i], true
		}
	}
	return RewardPosition{}, false
}

// TotalCash sums position and special award payouts.
func (p RewardPlan) TotalCash() int64 {
	var total int64
	for i := range p.Positions {
		total += p.Positions[i].CashPrize
	}
	for i := range p.SpecialAwards {
		total += p.SpecialAwards[i].CashPrize
	}
	return total
}
