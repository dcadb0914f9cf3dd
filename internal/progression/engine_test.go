package progression

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/bracket"
	"github.com/goserg/tournament/internal/domain"
	"github.com/goserg/tournament/internal/reward"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EngineSuite struct {
	suite.Suite
	engine *Engine
	seeds  map[uuid.UUID]int
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	fixed := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	s.engine = New(true)
	s.engine.Now = func() time.Time { return fixed }
}

// build seeds n players in rating order so seed numbers follow the slice.
func (s *EngineSuite) build(n int) domain.Bracket {
	entrants := make([]bracket.Entrant, n)
	for i := range entrants {
		entrants[i] = bracket.Entrant{PlayerID: uuid.New(), Elo: 3000 - i}
	}
	b, seeds, err := bracket.Build(uuid.New(), entrants, bracket.Options{Method: bracket.MethodRanked})
	s.Require().NoError(err)
	s.seeds = make(map[uuid.UUID]int, n)
	for _, seed := range seeds {
		s.seeds[seed.PlayerID] = seed.Number
	}
	return b
}

// favourite is the lower seed number of the two players.
func (s *EngineSuite) favourite(m domain.Match) uuid.UUID {
	if s.seeds[m.Player1] < s.seeds[m.Player2] {
		return m.Player1
	}
	return m.Player2
}

func (s *EngineSuite) win(b domain.Bracket, key domain.MatchKey, winner uuid.UUID) Advance {
	m, ok := b.Match(key)
	s.Require().True(ok, key.String())
	score1, score2 := 5, 3
	if winner == m.Player2 {
		score1, score2 = 3, 5
	}
	step, err := s.engine.RecordResult(b, Result{Match: key, ScorePlayer1: score1, ScorePlayer2: score2, Winner: winner})
	s.Require().NoError(err)
	return step
}

// playOut resolves every open match in favour of the lower seed.
func (s *EngineSuite) playOut(b domain.Bracket) domain.Bracket {
	for i := 0; i < 64; i++ {
		var open *domain.Match
		for j := range b.Matches {
			m := b.Matches[j]
			if m.Status == domain.MatchScheduled && m.Player1 != uuid.Nil && m.Player2 != uuid.Nil {
				open = &m
				break
			}
		}
		if open == nil {
			return b
		}
		b = s.win(b, open.Key, s.favourite(*open)).Bracket
	}
	s.FailNow("bracket did not finish")
	return b
}

func (s *EngineSuite) TestEightPlayerRoundTrip() {
	b := s.build(8)
	b = s.playOut(b)

	done, err := s.engine.IsComplete(b)
	s.Require().NoError(err)
	s.True(done)
	s.Equal(domain.BracketCompleted, b.Status)

	final, ok := b.Final()
	s.Require().True(ok)
	s.Equal(1, s.seeds[final.Winner])
	s.Equal(2, s.seeds[final.Loser])

	third, ok := b.ThirdPlace()
	s.Require().True(ok)
	s.Equal(3, s.seeds[third.Winner])
	s.Nil(third.Next)

	standings, err := s.engine.Standings(b)
	s.Require().NoError(err)
	s.Require().Len(standings, 8)
	got := make(map[int][]int)
	for _, st := range standings {
		got[st.Position] = append(got[st.Position], s.seeds[st.PlayerID])
	}
	s.Equal([]int{1}, got[1])
	s.Equal([]int{2}, got[2])
	s.Equal([]int{3}, got[3])
	s.Equal([]int{4}, got[4])
	s.Len(got[8], 4)
}

func (s *EngineSuite) TestThirtyTwoPlayerStandingsAndPayouts() {
	b := s.playOut(s.build(32))
	s.Equal(5, b.TotalRounds)
	s.Equal(domain.BracketCompleted, b.Status)

	standings, err := s.engine.Standings(b)
	s.Require().NoError(err)
	s.Require().Len(standings, 32)
	got := make(map[int][]int)
	for _, st := range standings {
		got[st.Position] = append(got[st.Position], s.seeds[st.PlayerID])
	}
	s.Equal([]int{1}, got[1])
	s.Equal([]int{2}, got[2])
	s.Equal([]int{3}, got[3])
	s.Equal([]int{4}, got[4])
	s.ElementsMatch([]int{5, 6, 7, 8}, got[8])
	s.ElementsMatch([]int{9, 10, 11, 12, 13, 14, 15, 16}, got[16])
	s.Len(got[32], 16)

	plan := reward.Calculate(domain.RewardParams{
		Tier:            domain.TierK,
		EntryFee:        100_000,
		MaxParticipants: 32,
		GameFormat:      domain.Format9Ball,
	})
	top16, ok := plan.Position(16)
	s.Require().True(ok)
	top8, ok := plan.Position(8)
	s.Require().True(ok)

	byPosition := make(map[int][]reward.Payout)
	for _, p := range reward.Payouts(plan, standings) {
		byPosition[p.Position] = append(byPosition[p.Position], p)
	}
	s.Require().Len(byPosition[16], 8)
	for _, p := range byPosition[16] {
		s.Equal(top16.CashPrize/8, p.CashPrize)
		s.Equal(top16.SpaPoints, p.SpaPoints)
	}
	s.Require().Len(byPosition[8], 4)
	for _, p := range byPosition[8] {
		s.Equal(top8.CashPrize/4, p.CashPrize)
	}
	for _, p := range byPosition[32] {
		s.Zero(p.CashPrize)
	}
}

func (s *EngineSuite) TestRecordResultFillsExistingNextMatch() {
	b := s.build(4)
	b.Add(domain.NewMatch(domain.MatchKey{Round: 2, Number: 1}, b.TotalRounds))

	first, _ := b.Match(domain.MatchKey{Round: 1, Number: 1})
	step := s.win(b, first.Key, first.Player1)
	s.Require().Len(step.Events, 1)
	s.Equal(domain.EventMatchAdvanced, step.Events[0].Type)
	s.Equal(domain.MatchKey{Round: 2, Number: 1}, step.Events[0].Match)

	second, _ := step.Bracket.Match(domain.MatchKey{Round: 1, Number: 2})
	step = s.win(step.Bracket, second.Key, second.Player2)
	final, ok := step.Bracket.Final()
	s.Require().True(ok)
	s.Equal(first.Player1, final.Player1)
	s.Equal(second.Player2, final.Player2)

	taken := s.build(4)
	next := domain.NewMatch(domain.MatchKey{Round: 2, Number: 1}, taken.TotalRounds)
	next.Player1 = uuid.New()
	taken.Add(next)
	m, _ := taken.Match(domain.MatchKey{Round: 1, Number: 1})
	_, err := s.engine.RecordResult(taken, Result{Match: m.Key, Winner: m.Player1})
	s.ErrorIs(err, ErrConflictingAdvance)
}

func (s *EngineSuite) TestCompletionWaitsForThirdPlace() {
	b := s.build(8)
	for r := 1; r <= 2; r++ {
		for _, m := range b.Round(r) {
			b = s.win(b, m.Key, s.favourite(*m)).Bracket
		}
	}
	_, ok := b.ThirdPlace()
	s.Require().True(ok)
	s.Equal(domain.BracketFinalPending, b.Status)

	final, _ := b.Final()
	step := s.win(b, final.Key, s.favourite(*final))
	b = step.Bracket

	done, err := s.engine.IsComplete(b)
	s.Require().NoError(err)
	s.False(done)
	s.Equal(domain.BracketAwaitingThirdPlace, b.Status)
	for _, ev := range step.Events {
		s.NotEqual(domain.EventTournamentCompleted, ev.Type)
	}
	_, err = s.engine.Standings(b)
	s.ErrorIs(err, ErrNotComplete)

	third, _ := b.ThirdPlace()
	step = s.win(b, third.Key, third.Player1)
	s.Equal(domain.BracketCompleted, step.Bracket.Status)
	s.Equal(domain.EventTournamentCompleted, step.Events[len(step.Events)-1].Type)
}

func (s *EngineSuite) TestTwoPlayerBracket() {
	b := s.build(2)
	s.Equal(1, b.TotalRounds)

	final, ok := b.Final()
	s.Require().True(ok)
	step := s.win(b, final.Key, final.Player2)

	_, hasThird := step.Bracket.ThirdPlace()
	s.False(hasThird)
	s.Equal(domain.BracketCompleted, step.Bracket.Status)

	standings, err := s.engine.Standings(step.Bracket)
	s.Require().NoError(err)
	s.Equal([]domain.Standing{
		{PlayerID: final.Player2, Position: 1},
		{PlayerID: final.Player1, Position: 2},
	}, standings)
}

func (s *EngineSuite) TestThreePlayerBracketSkipsThirdPlace() {
	b := s.build(3)
	b = s.playOut(b)

	_, hasThird := b.ThirdPlace()
	s.False(hasThird)
	s.Equal(domain.BracketCompleted, b.Status)

	standings, err := s.engine.Standings(b)
	s.Require().NoError(err)
	s.Require().Len(standings, 3)
	s.Equal(3, standings[2].Position)
	s.Equal(3, s.seeds[standings[2].PlayerID])
}

func (s *EngineSuite) TestByesAdvance() {
	b := s.build(5)
	s.Equal(3, b.Byes())

	// The only contested first-round match is seed 4 against seed 5.
	var contested *domain.Match
	for _, m := range b.Round(1) {
		if !m.IsBye {
			contested = m
		}
	}
	s.Require().NotNil(contested)
	step := s.win(b, contested.Key, s.favourite(*contested))

	s.Require().True(step.Bracket.HasRound(2))
	for _, m := range step.Bracket.Round(2) {
		s.NotEqual(uuid.Nil, m.Player1)
		s.NotEqual(uuid.Nil, m.Player2)
	}
	s.Equal(domain.BracketRoundInProgress, step.Bracket.Status)
	s.Equal(2, step.Bracket.CurrentRound)
}

func (s *EngineSuite) TestRecordResultIdempotent() {
	b := s.build(4)
	m := b.Round(1)[0]
	res := Result{Match: m.Key, ScorePlayer1: 5, ScorePlayer2: 1, Winner: m.Player1}

	first, err := s.engine.RecordResult(b, res)
	s.Require().NoError(err)
	s.True(first.Generated)

	again, err := s.engine.RecordResult(first.Bracket, res)
	s.Require().NoError(err)
	s.False(again.Generated)
	s.Empty(again.Events)
	s.Equal(first.Bracket, again.Bracket)

	res.Winner = m.Player2
	_, err = s.engine.RecordResult(first.Bracket, res)
	s.ErrorIs(err, ErrConflictingResult)
}

func (s *EngineSuite) TestRecordResultRejects() {
	b := s.build(6)
	var bye, contested *domain.Match
	for _, m := range b.Round(1) {
		if m.IsBye {
			bye = m
		} else {
			contested = m
		}
	}
	_, err := s.engine.RecordResult(b, Result{Match: bye.Key, Winner: bye.Player1})
	s.ErrorIs(err, ErrInvalidResult)

	_, err = s.engine.RecordResult(b, Result{Match: contested.Key, Winner: uuid.New()})
	s.ErrorIs(err, ErrInvalidResult)

	_, err = s.engine.RecordResult(b, Result{Match: domain.MatchKey{Round: 7, Number: 1}, Winner: contested.Player1})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *EngineSuite) TestDoesNotMutateInput() {
	b := s.build(4)
	before := b.Clone()
	m := b.Round(1)[0]
	_, err := s.engine.RecordResult(b, Result{Match: m.Key, Winner: m.Player1})
	s.Require().NoError(err)
	s.Equal(before, b)
}

func TestAdvanceRoundManual(t *testing.T) {
	engine := New(false)
	entrants := make([]bracket.Entrant, 8)
	for i := range entrants {
		entrants[i] = bracket.Entrant{PlayerID: uuid.New(), Elo: 2000 - i}
	}
	b, _, err := bracket.Build(uuid.New(), entrants, bracket.Options{})
	require.NoError(t, err)

	_, err = engine.AdvanceRound(b, 1)
	assert.ErrorIs(t, err, ErrRoundNotComplete)

	for _, m := range b.Round(1) {
		step, err := engine.RecordResult(b, Result{Match: m.Key, Winner: m.Player1})
		require.NoError(t, err)
		b = step.Bracket
	}
	assert.False(t, b.HasRound(2))
	assert.Equal(t, domain.BracketRoundComplete, b.Status)

	first, err := engine.AdvanceRound(b, 1)
	require.NoError(t, err)
	assert.True(t, first.Generated)
	require.Len(t, first.Events, 1)
	assert.Equal(t, domain.EventRoundGenerated, first.Events[0].Type)
	assert.Equal(t, 2, first.Events[0].Round)

	second, err := engine.AdvanceRound(first.Bracket, 1)
	require.NoError(t, err)
	assert.False(t, second.Generated)
	assert.Equal(t, first.Bracket, second.Bracket)

	_, err = engine.AdvanceRound(first.Bracket, 2)
	assert.ErrorIs(t, err, ErrRoundNotComplete)

	// Round two is not played yet, so nothing further may be generated.
	rest, err := engine.GenerateRemainingRounds(first.Bracket)
	require.NoError(t, err)
	assert.False(t, rest.Generated)
	assert.False(t, rest.Bracket.HasRound(3))
}

func TestGenerateRemainingRounds(t *testing.T) {
	engine := New(false)
	entrants := make([]bracket.Entrant, 4)
	for i := range entrants {
		entrants[i] = bracket.Entrant{PlayerID: uuid.New(), Elo: 2000 - i}
	}
	b, _, err := bracket.Build(uuid.New(), entrants, bracket.Options{})
	require.NoError(t, err)
	for _, m := range b.Round(1) {
		step, err := engine.RecordResult(b, Result{Match: m.Key, Winner: m.Player2})
		require.NoError(t, err)
		b = step.Bracket
	}

	out, err := engine.GenerateRemainingRounds(b)
	require.NoError(t, err)
	assert.True(t, out.Generated)

	final, ok := out.Bracket.Final()
	require.True(t, ok)
	semis := out.Bracket.Round(1)
	assert.Equal(t, semis[0].Winner, final.Player1)
	assert.Equal(t, semis[1].Winner, final.Player2)

	third, ok := out.Bracket.ThirdPlace()
	require.True(t, ok)
	assert.Equal(t, domain.MatchKey{Round: 2, Number: 2}, third.Key)
	assert.Equal(t, semis[0].Loser, third.Player1)
	assert.Equal(t, domain.BracketFinalPending, out.Bracket.Status)

	again, err := engine.EnsureThirdPlace(out.Bracket)
	require.NoError(t, err)
	assert.False(t, again.Generated)
}

func TestIsCompleteMalformed(t *testing.T) {
	engine := New(true)
	_, err := engine.IsComplete(domain.Bracket{})
	assert.ErrorIs(t, err, ErrNoFinalMatch)

	b := domain.Bracket{TotalRounds: 2, CurrentRound: 2}
	b.Add(domain.NewMatch(domain.MatchKey{Round: 1, Number: 1}, 2))
	_, err = engine.IsComplete(b)
	assert.ErrorIs(t, err, ErrNoFinalMatch)
}
