package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// MatchKey addresses a bracket slot. Numbers are 1-based within a round.
type MatchKey struct {
	Round  int
	Number int
}

func (k MatchKey) String() string {
	return fmt.Sprintf("R%dM%d", k.Round, k.Number)
}

// NextKey is the slot in the following round that receives this slot's winner.
func (k MatchKey) NextKey() MatchKey {
	return MatchKey{Round: k.Round + 1, Number: (k.Number + 1) / 2}
}

// FeederKeys are the two slots of the previous round feeding this one.
func (k MatchKey) FeederKeys() (MatchKey, MatchKey) {
	return MatchKey{Round: k.Round - 1, Number: 2*k.Number - 1},
		MatchKey{Round: k.Round - 1, Number: 2 * k.Number}
}

func keyRef(k MatchKey) *MatchKey {
	return &k
}

type Match struct {
	ID           uuid.UUID
	Key          MatchKey
	Player1      uuid.UUID
	Player2      uuid.UUID
	ScorePlayer1 int
	ScorePlayer2 int
	Winner       uuid.UUID
	Loser        uuid.UUID
	Status       MatchStatus
	IsThirdPlace bool
	IsBye        bool
	Prev1        *MatchKey
	Prev2        *MatchKey
	Next         *MatchKey
}

// NewMatch returns a scheduled match with feeder/next links filled in.
func NewMatch(key MatchKey, totalRounds int) Match {
	m := Match{
		ID:     uuid.New(),
		Key:    key,
		Status: MatchScheduled,
	}
	if key.Round > 1 {
		p1, p2 := key.FeederKeys()
		m.Prev1, m.Prev2 = keyRef(p1), keyRef(p2)
	}
	if key.Round < totalRounds {
		m.Next = keyRef(key.NextKey())
	}
	return m
}

// Terminal reports whether the match is settled: completed with a winner.
func (m Match) Terminal() bool {
	return m.Status == MatchCompleted && m.Winner != uuid.Nil
}

func (m Match) HasPlayer(id uuid.UUID) bool {
	return id != uuid.Nil && (m.Player1 == id || m.Player2 == id)
}

// Opponent of id in this match, uuid.Nil for a bye or a stranger.
func (m Match) Opponent(id uuid.UUID) uuid.UUID {
	switch id {
	case m.Player1:
		return m.Player2
	case m.Player2:
		return m.Player1
	}
	return uuid.Nil
}

func (m Match) clone() Match {
	c := m
	if m.Prev1 != nil {
		c.Prev1 = keyRef(*m.Prev1)
	}
	if m.Prev2 != nil {
		c.Prev2 = keyRef(*m.Prev2)
	}
	if m.Next != nil {
		c.Next = keyRef(*m.Next)
	}
	return c
}
