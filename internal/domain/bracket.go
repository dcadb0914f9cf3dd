package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Bracket is a single-elimination tree owned by one tournament.
// Matches is kept ordered by round, then slot number.
type Bracket struct {
	ID           uuid.UUID
	TournamentID uuid.UUID
	TotalPlayers int
	TotalRounds  int
	CurrentRound int
	Status       BracketStatus
	Matches      []Match
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a deep copy, so engine operations never alias the caller's snapshot.
func (b Bracket) Clone() Bracket {
	c := b
	c.Matches = make([]Match, len(b.Matches))
	for i := range b.Matches {
		c.Matches[i] = b.Matches[i].clone()
	}
	return c
}

// Index maps every slot to its match. Pointers stay valid until Matches is appended to.
func (b *Bracket) Index() map[MatchKey]*Match {
	idx := make(map[MatchKey]*Match, len(b.Matches))
	for i := range b.Matches {
		idx[b.Matches[i].Key] = &b.Matches[i]
	}
	return idx
}

func (b *Bracket) Match(key MatchKey) (*Match, bool) {
	for i := range b.Matches {
		if b.Matches[i].Key == key {
			return &b.Matches[i], true
		}
	}
	return nil, false
}

// Round returns the regular (non third-place) matches of round r ordered by slot.
func (b *Bracket) Round(r int) []*Match {
	var matches []*Match
	for i := range b.Matches {
		if b.Matches[i].Key.Round == r && !b.Matches[i].IsThirdPlace {
			matches = append(matches, &b.Matches[i])
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Key.Number < matches[j].Key.Number
	})
	return matches
}

func (b *Bracket) HasRound(r int) bool {
	for i := range b.Matches {
		if b.Matches[i].Key.Round == r && !b.Matches[i].IsThirdPlace {
			return true
		}
	}
	return false
}

// Final is the regular match of the last round.
func (b *Bracket) Final() (*Match, bool) {
	for i := range b.Matches {
		m := &b.Matches[i]
		if m.Key.Round == b.TotalRounds && !m.IsThirdPlace {
			return m, true
		}
	}
	return nil, false
}

func (b *Bracket) ThirdPlace() (*Match, bool) {
	for i := range b.Matches {
		if b.Matches[i].IsThirdPlace {
			return &b.Matches[i], true
		}
	}
	return nil, false
}

// Add appends matches and restores slot ordering.
func (b *Bracket) Add(matches ...Match) {
	b.Matches = append(b.Matches, matches...)
	sort.SliceStable(b.Matches, func(i, j int) bool {
		ki, kj := b.Matches[i].Key, b.Matches[j].Key
		if ki.Round != kj.Round {
			return ki.Round < kj.Round
		}
		return ki.Number < kj.Number
	})
}

// PlayedMatches counts completed matches that were actually contested.
func (b *Bracket) PlayedMatches() int {
	n := 0
	for i := range b.Matches {
		if b.Matches[i].Status == MatchCompleted && !b.Matches[i].IsBye {
			n++
		}
	}
	return n
}

// Byes counts first-round walkovers.
func (b *Bracket) Byes() int {
	n := 0
	for i := range b.Matches {
		if b.Matches[i].IsBye {
			n++
		}
	}
	return n
}

// Standing is a player's finishing position. Players eliminated in the same
// round share a position (top 8, top 16, ...).
type Standing struct {
	PlayerID uuid.UUID
	Position int
}
