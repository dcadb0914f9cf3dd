package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    MatchStatus
		to      MatchStatus
		wantErr bool
	}{
		{"schedule to complete", MatchScheduled, MatchCompleted, false},
		{"schedule to progress", MatchScheduled, MatchInProgress, false},
		{"rescheduled back to scheduled", MatchRescheduled, MatchScheduled, false},
		{"completed is terminal", MatchCompleted, MatchScheduled, true},
		{"cancelled is terminal", MatchCancelled, MatchInProgress, true},
		{"in progress cannot reschedule", MatchInProgress, MatchRescheduled, true},
		{"same status is a no-op", MatchCompleted, MatchCompleted, false},
		{"unknown status", MatchStatus("paused"), MatchCompleted, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Transition(tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIllegalTransition)
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestTournamentStatusTransition(t *testing.T) {
	assert.True(t, TournamentOngoing.CanTransition(TournamentCompleted))
	assert.False(t, TournamentDraft.CanTransition(TournamentCompleted))
	assert.False(t, TournamentCompleted.CanTransition(TournamentOngoing))
	assert.True(t, TournamentCancelled.Closed())
	assert.False(t, TournamentOngoing.Closed())
}

func TestBracketStatusTransition(t *testing.T) {
	assert.True(t, BracketSeeded.CanTransition(BracketFinalPending))
	assert.True(t, BracketFinalPending.CanTransition(BracketAwaitingThirdPlace))
	assert.False(t, BracketAwaitingThirdPlace.CanTransition(BracketFinalPending))
	assert.False(t, BracketCompleted.CanTransition(BracketRoundInProgress))
}

func TestRankCodeNext(t *testing.T) {
	next, ok := RankK.Next()
	require.True(t, ok)
	assert.Equal(t, RankKPlus, next)

	next, ok = RankEPlus.Next()
	assert.False(t, ok)
	assert.Empty(t, next)

	_, ok = RankCode("Z").Next()
	assert.False(t, ok)
}

func TestTierOrder(t *testing.T) {
	assert.True(t, TierG.AtLeast(TierH))
	assert.True(t, TierH.AtLeast(TierH))
	assert.False(t, TierI.AtLeast(TierH))
	assert.False(t, Tier("X").AtLeast(TierK))
}

func TestBracketStatusPath(t *testing.T) {
	steps, err := BracketSeeded.Path(BracketCompleted)
	require.NoError(t, err)
	assert.Equal(t, []BracketStatus{BracketFinalPending, BracketCompleted}, steps)

	steps, err = BracketRoundComplete.Path(BracketRoundComplete)
	require.NoError(t, err)
	assert.Empty(t, steps)

	_, err = BracketCompleted.Path(BracketSeeded)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTournamentStatusPath(t *testing.T) {
	tests := []struct {
		from TournamentStatus
		want []TournamentStatus
	}{
		{TournamentDraft, []TournamentStatus{TournamentRegistrationOpen, TournamentRegistrationClosed, TournamentOngoing}},
		{TournamentUpcoming, []TournamentStatus{TournamentRegistrationOpen, TournamentRegistrationClosed, TournamentOngoing}},
		{TournamentRegistrationClosed, []TournamentStatus{TournamentOngoing}},
		{TournamentOngoing, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			steps, err := tt.from.Path(TournamentOngoing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, steps)
		})
	}

	_, err := TournamentCancelled.Path(TournamentOngoing)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestPaymentStatusValid(t *testing.T) {
	for _, p := range []PaymentStatus{PaymentPending, PaymentPaid, PaymentWaived, PaymentRefunded} {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, PaymentStatus("paypal").Valid())
	assert.False(t, PaymentStatus("").Valid())
}
