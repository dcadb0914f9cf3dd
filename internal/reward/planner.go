package reward

import (
	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
)

// SpecialAwardRevenueThreshold is the entry revenue above which tier H and G
// tournaments fund special awards.
const SpecialAwardRevenueThreshold int64 = 10_000_000

type awardDefinition struct {
	ID          string
	Name        string
	BasisPoints int
}

var specialAwards = []awardDefinition{
	{ID: "best_break", Name: "Best break", BasisPoints: 200},
	{ID: "fair_play", Name: "Fair play", BasisPoints: 100},
}

func revenue(p domain.RewardParams) int64 {
	if p.EntryFee <= 0 || p.MaxParticipants <= 0 {
		return 0
	}
	return p.EntryFee * int64(p.MaxParticipants)
}

// TotalPrize is the rounded share of entry revenue paid out for the tier.
func TotalPrize(p domain.RewardParams) int64 {
	return percentOf(revenue(p), PrizePercentage(p.Tier))
}

// Calculate builds the baseline plan for a tournament configuration.
// Special awards are paid out of the prize pool before the positions are split.
func Calculate(p domain.RewardParams) domain.RewardPlan {
	plan := domain.RewardPlan{
		Params:     p,
		TotalPrize: TotalPrize(p),
	}

	rev := revenue(p)
	if p.Tier.AtLeast(domain.TierH) && rev > SpecialAwardRevenueThreshold {
		for _, a := range specialAwards {
			plan.SpecialAwards = append(plan.SpecialAwards, domain.SpecialAward{
				ID:        a.ID,
				Name:      a.Name,
				CashPrize: percentOf(rev, a.BasisPoints),
			})
		}
	}

	pool := plan.TotalPrize
	for _, a := range plan.SpecialAwards {
		pool -= a.CashPrize
	}
	if pool < 0 {
		pool = 0
	}

	shares := CashShares(p.MaxParticipants)
	var distributed int64
	for _, s := range shares {
		pts := Points(p.Tier, p.GameFormat, KeyFor(s.Position))
		cash := pool * int64(s.BasisPoints) / basisPoints
		distributed += cash
		plan.Positions = append(plan.Positions, domain.RewardPosition{
			Position:  s.Position,
			EloPoints: pts.Elo,
			SpaPoints: pts.Spa,
			CashPrize: cash,
			IsVisible: true,
		})
	}
	// Truncation leftovers go to the champion so the pool is paid out exactly.
	if len(plan.Positions) > 0 {
		plan.Positions[0].CashPrize += pool - distributed
	}
	return plan
}

// Recalculate derives a fresh plan for newParams. With preserve set, manual
// edits of the existing plan survive: cash that differs from the old
// baseline, custom items, visibility, and special awards the new baseline
// does not define.
func Recalculate(existing domain.RewardPlan, newParams domain.RewardParams, preserve bool) domain.RewardPlan {
	fresh := Calculate(newParams)
	fresh.TournamentID = existing.TournamentID
	if !preserve {
		return fresh
	}

	oldBaseline := Calculate(existing.Params)
	for i := range fresh.Positions {
		pos := &fresh.Positions[i]
		prev, ok := existing.Position(pos.Position)
		if !ok {
			continue
		}
		base, inBaseline := oldBaseline.Position(pos.Position)
		if !inBaseline || prev.CashPrize != base.CashPrize {
			pos.CashPrize = prev.CashPrize
		}
		if len(prev.Items) > 0 {
			pos.Items = append([]string(nil), prev.Items...)
		}
		pos.IsVisible = prev.IsVisible
	}

	known := make(map[string]struct{}, len(fresh.SpecialAwards))
	for _, a := range fresh.SpecialAwards {
		known[a.ID] = struct{}{}
	}
	for _, a := range existing.SpecialAwards {
		if _, ok := known[a.ID]; ok {
			continue
		}
		fresh.SpecialAwards = append(fresh.SpecialAwards, a)
	}
	return fresh
}

// Payout is what one player receives for a finished tournament.
type Payout struct {
	PlayerID  uuid.UUID
	Position  int
	CashPrize int64
	EloPoints int
	SpaPoints int
}

// Payouts distributes plan rewards over final standings. Cash of a position
// shared by several players (top 8, top 16) is split evenly; points are not.
// Players without a planned position receive participation points only.
func Payouts(plan domain.RewardPlan, standings []domain.Standing) []Payout {
	sharing := make(map[int]int)
	for _, s := range standings {
		sharing[s.Position]++
	}
	participation := Points(plan.Params.Tier, plan.Params.GameFormat, Participation)

	payouts := make([]Payout, 0, len(standings))
	for _, s := range standings {
		p := Payout{
			PlayerID:  s.PlayerID,
			Position:  s.Position,
			EloPoints: participation.Elo,
			SpaPoints: participation.Spa,
		}
		if pos, ok := plan.Position(s.Position); ok {
			p.EloPoints = pos.EloPoints
			p.SpaPoints = pos.SpaPoints
			p.CashPrize = pos.CashPrize / int64(sharing[s.Position])
		}
		payouts = append(payouts, p)
	}
	return payouts
}

// RatingRewards is the fallback used when a tournament has no reward plan:
// ELO and SPA come from the position tables, SPA scaled by the player's rank.
func RatingRewards(standings []domain.Standing, ranks map[uuid.UUID]domain.RankCode) []Payout {
	payouts := make([]Payout, 0, len(standings))
	for _, s := range standings {
		key := KeyFor(s.Position)
		payouts = append(payouts, Payout{
			PlayerID:  s.PlayerID,
			Position:  s.Position,
			EloPoints: TournamentElo(key),
			SpaPoints: TournamentSpa(key, ranks[s.PlayerID]),
		})
	}
	return payouts
}
