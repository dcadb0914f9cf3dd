package bracket

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

type Method string

const (
	MethodRanked            Method = "ranked"
	MethodRandom            Method = "random"
	MethodRegistrationOrder Method = "registration_order"
)

func (m Method) Valid() bool {
	switch m {
	case MethodRanked, MethodRandom, MethodRegistrationOrder:
		return true
	}
	return false
}

// Entrant is a seedable registration together with the player's rating.
type Entrant struct {
	PlayerID     uuid.UUID
	Elo          int
	RegisteredAt time.Time
}

// Seed is the seed number assigned to a player, 1 being the strongest.
type Seed struct {
	PlayerID uuid.UUID
	Number   int
}

// Order returns entrants in seed order for the method. The input is not modified.
func Order(entrants []Entrant, method Method, rnd *rand.Rand) ([]Entrant, error) {
	seen := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, e := range entrants {
		if e.PlayerID == uuid.Nil {
			return nil, fmt.Errorf("%w: empty player id", ErrInvalidEntrant)
		}
		if !seen.Add(e.PlayerID) {
			return nil, fmt.Errorf("%w: %s registered twice", ErrInvalidEntrant, e.PlayerID)
		}
	}

	ordered := make([]Entrant, len(entrants))
	copy(ordered, entrants)
	byRegistration := func(i, j int) bool {
		return ordered[i].RegisteredAt.Before(ordered[j].RegisteredAt)
	}

	switch method {
	case MethodRanked:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Elo != ordered[j].Elo {
				return ordered[i].Elo > ordered[j].Elo
			}
			return byRegistration(i, j)
		})
	case MethodRegistrationOrder:
		sort.SliceStable(ordered, byRegistration)
	case MethodRandom:
		if rnd == nil {
			rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		sort.SliceStable(ordered, byRegistration)
		rnd.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	return ordered, nil
}

// Pattern lists seed numbers in slot order for a bracket of size players,
// size being a power of two. Adjacent pairs form the first round:
// 8 gives 1,8,4,5,2,7,3,6, so seeds 1 and 2 can only meet in the final.
func Pattern(size int) []int {
	pattern := []int{1}
	for n := 2; n <= size; n *= 2 {
		next := make([]int, 0, n)
		for _, s := range pattern {
			next = append(next, s, n+1-s)
		}
		pattern = next
	}
	return pattern
}

// Rounds is ceil(log2(n)) for n >= 2.
func Rounds(n int) int {
	rounds := 0
	for size := 1; size < n; size *= 2 {
		rounds++
	}
	return rounds
}
