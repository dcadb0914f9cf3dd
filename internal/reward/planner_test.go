package reward

import (
	"testing"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTierI16(t *testing.T) {
	plan := Calculate(domain.RewardParams{
		Tier:            domain.TierI,
		EntryFee:        100_000,
		MaxParticipants: 16,
		GameFormat:      domain.Format8Ball,
	})

	assert.EqualValues(t, 1_200_000, plan.TotalPrize)
	assert.Empty(t, plan.SpecialAwards)

	champion, ok := plan.Position(1)
	require.True(t, ok)
	assert.EqualValues(t, 480_000, champion.CashPrize)

	var positions []int
	for _, p := range plan.Positions {
		positions = append(positions, p.Position)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 8}, positions)
	assert.Equal(t, plan.TotalPrize, plan.TotalCash())
	assert.True(t, Validate(plan, 16).IsValid)
}

func TestCalculateValidPositionsBySize(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{2, []int{1, 2}},
		{3, []int{1, 2}},
		{4, []int{1, 2, 3}},
		{7, []int{1, 2, 3}},
		{8, []int{1, 2, 3, 4}},
		{15, []int{1, 2, 3, 4}},
		{16, []int{1, 2, 3, 4, 8}},
		{31, []int{1, 2, 3, 4, 8}},
		{32, []int{1, 2, 3, 4, 8, 16}},
		{128, []int{1, 2, 3, 4, 8, 16}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPositions(tt.n), "n=%d", tt.n)
	}
}

func TestCalculatePointsScaleWithTier(t *testing.T) {
	k := Calculate(domain.RewardParams{Tier: domain.TierK, EntryFee: 1000, MaxParticipants: 8, GameFormat: domain.Format9Ball})
	g := Calculate(domain.RewardParams{Tier: domain.TierG, EntryFee: 1000, MaxParticipants: 8, GameFormat: domain.Format9Ball})

	kc, _ := k.Position(1)
	gc, _ := g.Position(1)
	assert.Equal(t, 110, kc.EloPoints)
	assert.Equal(t, 1100, kc.SpaPoints)
	assert.Equal(t, 220, gc.EloPoints)
	assert.Equal(t, 2200, gc.SpaPoints)
}

func TestCalculateSpecialAwards(t *testing.T) {
	t.Run("high tier with large revenue", func(t *testing.T) {
		plan := Calculate(domain.RewardParams{
			Tier:            domain.TierH,
			EntryFee:        500_000,
			MaxParticipants: 32,
			GameFormat:      domain.Format8Ball,
		})
		// revenue 16,000,000; prize 80%.
		assert.EqualValues(t, 12_800_000, plan.TotalPrize)
		require.Len(t, plan.SpecialAwards, 2)
		assert.Equal(t, "best_break", plan.SpecialAwards[0].ID)
		assert.EqualValues(t, 320_000, plan.SpecialAwards[0].CashPrize)
		assert.EqualValues(t, 160_000, plan.SpecialAwards[1].CashPrize)
		assert.Equal(t, plan.TotalPrize, plan.TotalCash())
		assert.True(t, Validate(plan, 32).IsValid)
	})
	t.Run("low tier never gets awards", func(t *testing.T) {
		plan := Calculate(domain.RewardParams{Tier: domain.TierI, EntryFee: 500_000, MaxParticipants: 32})
		assert.Empty(t, plan.SpecialAwards)
	})
	t.Run("revenue at threshold", func(t *testing.T) {
		plan := Calculate(domain.RewardParams{Tier: domain.TierG, EntryFee: 625_000, MaxParticipants: 16})
		assert.Empty(t, plan.SpecialAwards)
	})
}

func TestRecalculatePreservesCustomizations(t *testing.T) {
	oldParams := domain.RewardParams{Tier: domain.TierK, EntryFee: 100_000, MaxParticipants: 16, GameFormat: domain.Format8Ball}
	existing := Calculate(oldParams)
	existing.TournamentID = uuid.New()

	// Position 2 is edited by hand, position 3 keeps its baseline cash.
	for i := range existing.Positions {
		switch existing.Positions[i].Position {
		case 2:
			existing.Positions[i].CashPrize = 123
			existing.Positions[i].Items = []string{"cue"}
		case 4:
			existing.Positions[i].IsVisible = false
		}
	}
	existing.SpecialAwards = append(existing.SpecialAwards, domain.SpecialAward{ID: "longest_run", Name: "Longest run", CashPrize: 10})

	newParams := oldParams
	newParams.EntryFee = 200_000

	got := Recalculate(existing, newParams, true)
	baseline := Calculate(newParams)

	assert.Equal(t, existing.TournamentID, got.TournamentID)
	assert.Equal(t, baseline.TotalPrize, got.TotalPrize)

	second, _ := got.Position(2)
	assert.EqualValues(t, 123, second.CashPrize)
	assert.Equal(t, []string{"cue"}, second.Items)

	third, _ := got.Position(3)
	baseThird, _ := baseline.Position(3)
	assert.Equal(t, baseThird.CashPrize, third.CashPrize)

	fourth, _ := got.Position(4)
	assert.False(t, fourth.IsVisible)

	require.Len(t, got.SpecialAwards, 1)
	assert.Equal(t, "longest_run", got.SpecialAwards[0].ID)

	fresh := Recalculate(existing, newParams, false)
	freshSecond, _ := fresh.Position(2)
	baseSecond, _ := baseline.Position(2)
	assert.Equal(t, baseSecond.CashPrize, freshSecond.CashPrize)
	assert.Empty(t, fresh.SpecialAwards)
}

func TestRecalculateDropsOrphanWithBaselineEquivalent(t *testing.T) {
	params := domain.RewardParams{Tier: domain.TierG, EntryFee: 1_000_000, MaxParticipants: 16}
	existing := Calculate(params)
	existing.SpecialAwards[0].CashPrize = 1

	got := Recalculate(existing, params, true)
	require.Len(t, got.SpecialAwards, 2)
	assert.EqualValues(t, 320_000, got.SpecialAwards[0].CashPrize)
}

func TestPayouts(t *testing.T) {
	plan := Calculate(domain.RewardParams{Tier: domain.TierK, EntryFee: 10_000, MaxParticipants: 16, GameFormat: domain.Format8Ball})
	top8a, top8b := uuid.New(), uuid.New()
	outsider := uuid.New()
	champion := uuid.New()

	payouts := Payouts(plan, []domain.Standing{
		{PlayerID: champion, Position: 1},
		{PlayerID: top8a, Position: 8},
		{PlayerID: top8b, Position: 8},
		{PlayerID: outsider, Position: 16},
	})
	require.Len(t, payouts, 4)

	first, _ := plan.Position(1)
	assert.Equal(t, first.CashPrize, payouts[0].CashPrize)
	assert.Equal(t, 100, payouts[0].EloPoints)

	eighth, _ := plan.Position(8)
	assert.Equal(t, eighth.CashPrize/2, payouts[1].CashPrize)
	assert.Equal(t, payouts[1].CashPrize, payouts[2].CashPrize)
	assert.Equal(t, eighth.EloPoints, payouts[2].EloPoints)

	assert.Zero(t, payouts[3].CashPrize)
	assert.Equal(t, 5, payouts[3].EloPoints)
	assert.Equal(t, 100, payouts[3].SpaPoints)
}

func TestRatingRewards(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := RatingRewards(
		[]domain.Standing{{PlayerID: a, Position: 1}, {PlayerID: b, Position: 5}},
		map[uuid.UUID]domain.RankCode{a: domain.RankH},
	)
	require.Len(t, got, 2)
	assert.Equal(t, 100, got[0].EloPoints)
	assert.Equal(t, 1500, got[0].SpaPoints)
	assert.Equal(t, 5, got[1].EloPoints)
	assert.Equal(t, 100, got[1].SpaPoints)
}
