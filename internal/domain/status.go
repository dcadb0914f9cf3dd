package domain

import (
	"errors"
	"fmt"
)

var ErrIllegalTransition = errors.New("illegal status transition")

type transitions[S comparable] map[S][]S

func (t transitions[S]) allows(from, to S) bool {
	if from == to {
		return true
	}
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (t transitions[S]) move(from, to S) (S, error) {
	if _, known := t[from]; !known {
		return from, fmt.Errorf("%w: unknown status %v", ErrIllegalTransition, from)
	}
	if !t.allows(from, to) {
		return from, fmt.Errorf("%w: %v -> %v", ErrIllegalTransition, from, to)
	}
	return to, nil
}

// path is the shortest chain of legal moves leading from one status to another,
// excluding from itself.
func (t transitions[S]) path(from, to S) ([]S, error) {
	if from == to {
		return nil, nil
	}
	prev := map[S]S{from: from}
	queue := []S{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range t[cur] {
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = cur
			if next == to {
				var steps []S
				for s := to; s != from; s = prev[s] {
					steps = append([]S{s}, steps...)
				}
				return steps, nil
			}
			queue = append(queue, next)
		}
	}
	return nil, fmt.Errorf("%w: %v -> %v", ErrIllegalTransition, from, to)
}

type TournamentStatus string

const (
	TournamentDraft              TournamentStatus = "draft"
	TournamentUpcoming           TournamentStatus = "upcoming"
	TournamentRegistrationOpen   TournamentStatus = "registration_open"
	TournamentRegistrationClosed TournamentStatus = "registration_closed"
	TournamentOngoing            TournamentStatus = "ongoing"
	TournamentCompleted          TournamentStatus = "completed"
	TournamentCancelled          TournamentStatus = "cancelled"
)

var tournamentTransitions = transitions[TournamentStatus]{
	TournamentDraft:              {TournamentUpcoming, TournamentRegistrationOpen, TournamentCancelled},
	TournamentUpcoming:           {TournamentRegistrationOpen, TournamentCancelled},
	TournamentRegistrationOpen:   {TournamentRegistrationClosed, TournamentCancelled},
	TournamentRegistrationClosed: {TournamentRegistrationOpen, TournamentOngoing, TournamentCancelled},
	TournamentOngoing:            {TournamentCompleted, TournamentCancelled},
	TournamentCompleted:          {},
	TournamentCancelled:          {},
}

func (s TournamentStatus) CanTransition(to TournamentStatus) bool {
	return tournamentTransitions.allows(s, to)
}

// Transition returns the new status or ErrIllegalTransition.
func (s TournamentStatus) Transition(to TournamentStatus) (TournamentStatus, error) {
	return tournamentTransitions.move(s, to)
}

// Path lists the legal steps from s to the target status, s excluded.
func (s TournamentStatus) Path(to TournamentStatus) ([]TournamentStatus, error) {
	return tournamentTransitions.path(s, to)
}

// Closed reports whether the tournament accepts no further bracket changes.
func (s TournamentStatus) Closed() bool {
	return s == TournamentCompleted || s == TournamentCancelled
}

type MatchStatus string

const (
	MatchScheduled   MatchStatus = "scheduled"
	MatchInProgress  MatchStatus = "in_progress"
	MatchCompleted   MatchStatus = "completed"
	MatchCancelled   MatchStatus = "cancelled"
	MatchRescheduled MatchStatus = "rescheduled"
)

var matchTransitions = transitions[MatchStatus]{
	MatchScheduled:   {MatchInProgress, MatchCompleted, MatchCancelled, MatchRescheduled},
	MatchRescheduled: {MatchScheduled, MatchInProgress, MatchCompleted, MatchCancelled},
	MatchInProgress:  {MatchCompleted, MatchCancelled},
	MatchCompleted:   {},
	MatchCancelled:   {},
}

func (s MatchStatus) CanTransition(to MatchStatus) bool {
	return matchTransitions.allows(s, to)
}

func (s MatchStatus) Transition(to MatchStatus) (MatchStatus, error) {
	return matchTransitions.move(s, to)
}

type BracketStatus string

const (
	BracketSeeded             BracketStatus = "seeded"
	BracketRoundInProgress    BracketStatus = "round_in_progress"
	BracketRoundComplete      BracketStatus = "round_complete"
	BracketAwaitingThirdPlace BracketStatus = "awaiting_third_place"
	BracketFinalPending       BracketStatus = "final_pending"
	BracketCompleted          BracketStatus = "completed"
)

var bracketTransitions = transitions[BracketStatus]{
	BracketSeeded:             {BracketRoundInProgress, BracketRoundComplete, BracketFinalPending},
	BracketRoundInProgress:    {BracketRoundComplete, BracketFinalPending},
	BracketRoundComplete:      {BracketRoundInProgress, BracketFinalPending},
	BracketFinalPending:       {BracketAwaitingThirdPlace, BracketCompleted},
	BracketAwaitingThirdPlace: {BracketCompleted},
	BracketCompleted:          {},
}

func (s BracketStatus) CanTransition(to BracketStatus) bool {
	return bracketTransitions.allows(s, to)
}

func (s BracketStatus) Transition(to BracketStatus) (BracketStatus, error) {
	return bracketTransitions.move(s, to)
}

// Path lists the intermediate and final statuses walked from s to reach to.
// Engine states are derived, so one operation may legitimately cross several.
func (s BracketStatus) Path(to BracketStatus) ([]BracketStatus, error) {
	return bracketTransitions.path(s, to)
}
