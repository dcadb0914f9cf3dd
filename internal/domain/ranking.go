package domain

import (
	"time"

	"github.com/google/uuid"
)

// RankCode is a player's skill tier. The zero value is not a valid rank.
type RankCode string

const (
	RankK     RankCode = "K"
	RankKPlus RankCode = "K+"
	RankI     RankCode = "I"
	RankIPlus RankCode = "I+"
	RankH     RankCode = "H"
	RankHPlus RankCode = "H+"
	RankG     RankCode = "G"
	RankGPlus RankCode = "G+"
	RankF     RankCode = "F"
	RankFPlus RankCode = "F+"
	RankE     RankCode = "E"
	RankEPlus RankCode = "E+"
)

// Ranks lists every rank from lowest to highest.
var Ranks = []RankCode{
	RankK, RankKPlus, RankI, RankIPlus, RankH, RankHPlus,
	RankG, RankGPlus, RankF, RankFPlus, RankE, RankEPlus,
}

// Level is the index of r in Ranks, -1 when unknown.
func (r RankCode) Level() int {
	for i := range Ranks {
		if Ranks[i] == r {
			return i
		}
	}
	return -1
}

func (r RankCode) Valid() bool {
	return r.Level() >= 0
}

// Next returns the rank above r. ok is false past the top rank and for unknown ranks.
func (r RankCode) Next() (next RankCode, ok bool) {
	lvl := r.Level()
	if lvl < 0 || lvl+1 >= len(Ranks) {
		return "", false
	}
	return Ranks[lvl+1], true
}

type PlayerRanking struct {
	PlayerID        uuid.UUID
	EloPoints       int
	RankCode        RankCode
	SpaPoints       int
	TotalMatches    int
	Wins            int
	LastPromotionAt *time.Time
	UpdatedAt       time.Time
}

// NewPlayerRanking is the starting record of a player with no history.
func NewPlayerRanking(playerID uuid.UUID, startElo int) PlayerRanking {
	return PlayerRanking{
		PlayerID:  playerID,
		EloPoints: startElo,
		RankCode:  RankK,
	}
}
