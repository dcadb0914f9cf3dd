package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBracketGenerated    EventType = "bracket_generated"
	EventRoundGenerated      EventType = "round_generated"
	EventMatchAdvanced       EventType = "match_advanced"
	EventTournamentCompleted EventType = "tournament_completed"
	EventPlayerPromoted      EventType = "player_promoted"
)

// Event is a fact about a tournament for downstream collaborators.
// Fields that do not apply to the type are left zero.
type Event struct {
	Type         EventType
	TournamentID uuid.UUID
	Round        int
	Match        MatchKey
	PlayerID     uuid.UUID
	Rank         RankCode
	At           time.Time
}
