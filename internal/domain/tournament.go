package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tier is the competitive classification of a tournament. Higher tiers pay a
// larger share of the entry revenue and multiply reward points.
type Tier string

const (
	TierK Tier = "K"
	TierI Tier = "I"
	TierH Tier = "H"
	TierG Tier = "G"
)

var tierOrder = []Tier{TierK, TierI, TierH, TierG}

// Level is the position of the tier in K < I < H < G, or -1 for unknown tiers.
func (t Tier) Level() int {
	for i := range tierOrder {
		if tierOrder[i] == t {
			return i
		}
	}
	return -1
}

func (t Tier) Valid() bool {
	return t.Level() >= 0
}

// AtLeast reports whether t ranks at or above other.
func (t Tier) AtLeast(other Tier) bool {
	return t.Valid() && t.Level() >= other.Level()
}

type GameFormat string

const (
	Format8Ball  GameFormat = "8-ball"
	Format9Ball  GameFormat = "9-ball"
	Format10Ball GameFormat = "10-ball"
)

type Tournament struct {
	ID                  uuid.UUID
	Name                string
	Status              TournamentStatus
	Tier                Tier
	GameFormat          GameFormat
	MaxParticipants     int
	CurrentParticipants int
	EntryFee            int64
	PrizePool           int64
	BracketGenerated    bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
