package progression

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
)

var (
	ErrRoundNotComplete   = errors.New("round is not complete")
	ErrNoFinalMatch       = errors.New("bracket has no final match")
	ErrMatchNotFound      = errors.New("match not found")
	ErrInvalidResult      = errors.New("invalid match result")
	ErrConflictingResult  = errors.New("match already completed with a different result")
	ErrConflictingAdvance = errors.New("downstream slot holds another player")
	ErrNotComplete        = errors.New("bracket is not complete")
)

// Engine advances a bracket snapshot. Every method works on a copy of the
// bracket passed in and never mutates the caller's value.
type Engine struct {
	// AutoAdvance generates the next round and the third-place match as soon
	// as a recorded result settles a round.
	AutoAdvance bool
	Now         func() time.Time
}

func New(autoAdvance bool) *Engine {
	return &Engine{
		AutoAdvance: autoAdvance,
		Now:         time.Now,
	}
}

// Advance is the outcome of an engine step.
type Advance struct {
	Bracket domain.Bracket
	Events  []domain.Event
	// Generated is false when the step was an idempotent no-op.
	Generated bool
}

// Result reports a finished match. Winner must be one of the two players.
type Result struct {
	Match        domain.MatchKey
	ScorePlayer1 int
	ScorePlayer2 int
	Winner       uuid.UUID
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Engine) event(b *domain.Bracket, t domain.EventType) domain.Event {
	return domain.Event{
		Type:         t,
		TournamentID: b.TournamentID,
		At:           e.now(),
	}
}

// State derives the bracket status from its matches.
func (e *Engine) State(b domain.Bracket) domain.BracketStatus {
	if done, err := e.IsComplete(b); err == nil && done {
		return domain.BracketCompleted
	}
	if final, ok := b.Final(); ok {
		if final.Terminal() {
			return domain.BracketAwaitingThirdPlace
		}
		return domain.BracketFinalPending
	}
	r := currentRound(&b)
	switch {
	case r == 0:
		return domain.BracketSeeded
	case e.IsRoundComplete(b, r):
		return domain.BracketRoundComplete
	case r == 1 && !anyPlayed(b.Round(1)):
		return domain.BracketSeeded
	}
	return domain.BracketRoundInProgress
}

// IsRoundComplete reports whether every regular match of round r is completed.
// Byes are completed at creation. A round without matches is never complete.
func (e *Engine) IsRoundComplete(b domain.Bracket, r int) bool {
	matches := b.Round(r)
	if len(matches) == 0 {
		return false
	}
	for _, m := range matches {
		if m.Status != domain.MatchCompleted {
			return false
		}
	}
	return true
}

// RecordResult completes a match and moves the winner downstream. Recording
// the same result twice is a no-op.
func (e *Engine) RecordResult(b domain.Bracket, res Result) (Advance, error) {
	b = b.Clone()
	m, ok := b.Match(res.Match)
	if !ok {
		return Advance{}, fmt.Errorf("%w: %s", ErrMatchNotFound, res.Match)
	}
	if m.IsBye {
		return Advance{}, fmt.Errorf("%w: %s is a bye", ErrInvalidResult, res.Match)
	}
	if m.Player1 == uuid.Nil || m.Player2 == uuid.Nil {
		return Advance{}, fmt.Errorf("%w: %s has no opponents yet", ErrInvalidResult, res.Match)
	}
	if !m.HasPlayer(res.Winner) {
		return Advance{}, fmt.Errorf("%w: winner %s does not play %s", ErrInvalidResult, res.Winner, res.Match)
	}
	if res.ScorePlayer1 < 0 || res.ScorePlayer2 < 0 {
		return Advance{}, fmt.Errorf("%w: negative score", ErrInvalidResult)
	}

	if m.Status == domain.MatchCompleted {
		if m.Winner == res.Winner && m.ScorePlayer1 == res.ScorePlayer1 && m.ScorePlayer2 == res.ScorePlayer2 {
			return Advance{Bracket: b}, nil
		}
		return Advance{}, fmt.Errorf("%w: %s", ErrConflictingResult, res.Match)
	}
	status, err := m.Status.Transition(domain.MatchCompleted)
	if err != nil {
		return Advance{}, fmt.Errorf("match %s: %w", res.Match, err)
	}
	m.Status = status
	m.ScorePlayer1 = res.ScorePlayer1
	m.ScorePlayer2 = res.ScorePlayer2
	m.Winner = res.Winner
	m.Loser = m.Opponent(res.Winner)

	out := Advance{Generated: true}
	moved, err := e.propagate(&b, *m)
	if err != nil {
		return Advance{}, err
	}
	out.Events = append(out.Events, moved...)

	if e.AutoAdvance {
		step, err := e.AdvanceRound(b, res.Match.Round)
		if err != nil && !errors.Is(err, ErrRoundNotComplete) {
			return Advance{}, err
		}
		if err == nil {
			b = step.Bracket
			out.Events = append(out.Events, step.Events...)
		}
		third, err := e.EnsureThirdPlace(b)
		if err != nil {
			return Advance{}, err
		}
		b = third.Bracket
		out.Events = append(out.Events, third.Events...)
	}

	completed, err := e.settle(&b)
	if err != nil {
		return Advance{}, err
	}
	if completed {
		out.Events = append(out.Events, e.event(&b, domain.EventTournamentCompleted))
	}
	out.Bracket = b
	return out, nil
}

// propagate writes the winner of m into its downstream slot if that match
// exists already. Odd slots feed Player1, even slots Player2. Rounds built
// here only appear once their feeders are settled, so this fills snapshots
// whose next round was created elsewhere, and rejects a slot already taken
// by someone else.
func (e *Engine) propagate(b *domain.Bracket, m domain.Match) ([]domain.Event, error) {
	if m.Next == nil || m.IsThirdPlace {
		return nil, nil
	}
	next, ok := b.Match(*m.Next)
	if !ok {
		return nil, nil
	}
	slot := &next.Player2
	if m.Key.Number%2 == 1 {
		slot = &next.Player1
	}
	switch *slot {
	case m.Winner:
		return nil, nil
	case uuid.Nil:
		*slot = m.Winner
	default:
		return nil, fmt.Errorf("%w: %s into %s", ErrConflictingAdvance, m.Key, next.Key)
	}
	ev := e.event(b, domain.EventMatchAdvanced)
	ev.Round = next.Key.Round
	ev.Match = next.Key
	ev.PlayerID = m.Winner
	return []domain.Event{ev}, nil
}

// AdvanceRound creates the round following round once it is complete.
// Calling it again after that round exists changes nothing.
func (e *Engine) AdvanceRound(b domain.Bracket, round int) (Advance, error) {
	b = b.Clone()
	r := round
	if r < 1 || !b.HasRound(r) {
		return Advance{}, fmt.Errorf("%w: round %d has no matches", ErrRoundNotComplete, r)
	}
	if r >= b.TotalRounds || b.HasRound(r+1) {
		return Advance{Bracket: b}, nil
	}
	if !e.IsRoundComplete(b, r) {
		return Advance{}, fmt.Errorf("%w: round %d", ErrRoundNotComplete, r)
	}

	idx := b.Index()
	count := len(b.Round(r)) / 2
	matches := make([]domain.Match, 0, count)
	for n := 1; n <= count; n++ {
		m := domain.NewMatch(domain.MatchKey{Round: r + 1, Number: n}, b.TotalRounds)
		f1, f2 := m.Key.FeederKeys()
		if feeder, ok := idx[f1]; ok {
			m.Player1 = feeder.Winner
		}
		if feeder, ok := idx[f2]; ok {
			m.Player2 = feeder.Winner
		}
		matches = append(matches, m)
	}
	b.Add(matches...)
	b.CurrentRound = r + 1

	ev := e.event(&b, domain.EventRoundGenerated)
	ev.Round = r + 1
	out := Advance{Events: []domain.Event{ev}, Generated: true}

	if r+1 == b.TotalRounds {
		third, err := e.EnsureThirdPlace(b)
		if err != nil {
			return Advance{}, err
		}
		b = third.Bracket
		out.Events = append(out.Events, third.Events...)
	}
	if _, err := e.settle(&b); err != nil {
		return Advance{}, err
	}
	out.Bracket = b
	return out, nil
}

// EnsureThirdPlace creates the match between the semifinal losers once both
// semifinals are decided. Brackets without two contested semifinals get none.
func (e *Engine) EnsureThirdPlace(b domain.Bracket) (Advance, error) {
	b = b.Clone()
	if _, exists := b.ThirdPlace(); exists || b.TotalRounds < 2 {
		return Advance{Bracket: b}, nil
	}
	semis := b.Round(b.TotalRounds - 1)
	if len(semis) < 2 {
		return Advance{Bracket: b}, nil
	}
	for _, s := range semis {
		if s.Status != domain.MatchCompleted || s.IsBye || s.Loser == uuid.Nil {
			return Advance{Bracket: b}, nil
		}
	}

	m := domain.NewMatch(domain.MatchKey{Round: b.TotalRounds, Number: 2}, b.TotalRounds)
	m.IsThirdPlace = true
	m.Prev1 = &domain.MatchKey{Round: semis[0].Key.Round, Number: semis[0].Key.Number}
	m.Prev2 = &domain.MatchKey{Round: semis[1].Key.Round, Number: semis[1].Key.Number}
	m.Next = nil
	m.Player1 = semis[0].Loser
	m.Player2 = semis[1].Loser
	b.Add(m)

	ev := e.event(&b, domain.EventRoundGenerated)
	ev.Round = m.Key.Round
	ev.Match = m.Key
	return Advance{Bracket: b, Events: []domain.Event{ev}, Generated: true}, nil
}

// GenerateRemainingRounds creates every round whose previous round is
// complete, stopping at the first one still being played.
func (e *Engine) GenerateRemainingRounds(b domain.Bracket) (Advance, error) {
	out := Advance{Bracket: b.Clone()}
	for r := currentRound(&out.Bracket); r > 0 && r < out.Bracket.TotalRounds; r++ {
		step, err := e.AdvanceRound(out.Bracket, r)
		if errors.Is(err, ErrRoundNotComplete) {
			break
		}
		if err != nil {
			return Advance{}, err
		}
		if !step.Generated {
			break
		}
		out.Bracket = step.Bracket
		out.Events = append(out.Events, step.Events...)
		out.Generated = true
	}
	third, err := e.EnsureThirdPlace(out.Bracket)
	if err != nil {
		return Advance{}, err
	}
	out.Bracket = third.Bracket
	out.Events = append(out.Events, third.Events...)
	out.Generated = out.Generated || third.Generated
	return out, nil
}

// IsComplete reports whether the final and, when present, the third-place
// match are decided.
func (e *Engine) IsComplete(b domain.Bracket) (bool, error) {
	if b.TotalRounds < 1 {
		return false, ErrNoFinalMatch
	}
	final, ok := b.Final()
	if !ok {
		if b.CurrentRound >= b.TotalRounds {
			return false, fmt.Errorf("%w: round %d", ErrNoFinalMatch, b.TotalRounds)
		}
		return false, nil
	}
	if !final.Terminal() {
		return false, nil
	}
	if third, ok := b.ThirdPlace(); ok && !third.Terminal() {
		return false, nil
	}
	return true, nil
}

// settle moves the stored status to the derived one through legal steps and
// reports whether the bracket has just completed.
func (e *Engine) settle(b *domain.Bracket) (bool, error) {
	if r := currentRound(b); r > 0 {
		b.CurrentRound = r
	}
	target := e.State(*b)
	steps, err := b.Status.Path(target)
	if err != nil {
		return false, fmt.Errorf("bracket %s: %w", b.ID, err)
	}
	if len(steps) == 0 {
		return false, nil
	}
	b.Status = steps[len(steps)-1]
	b.UpdatedAt = e.now()
	return b.Status == domain.BracketCompleted, nil
}

// currentRound is the highest round holding regular matches, 0 when empty.
func currentRound(b *domain.Bracket) int {
	r := 0
	for i := range b.Matches {
		if m := b.Matches[i]; !m.IsThirdPlace && m.Key.Round > r {
			r = m.Key.Round
		}
	}
	return r
}

func anyPlayed(matches []*domain.Match) bool {
	for _, m := range matches {
		if !m.IsBye && m.Status != domain.MatchScheduled {
			return true
		}
	}
	return false
}
