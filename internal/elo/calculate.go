package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

// StartRating is assigned to players without rating history.
const StartRating = 1000

// K-factors. New players move fastest so their rating converges quickly.
const (
	KNew      = 40
	KRegular  = 20
	KAdvanced = 15
	KMaster   = 10

	EstablishedAfter = 30
	AdvancedRating   = 2100
	MasterRating     = 2400
)

// KFactor selects the coefficient for a player with matchCount rated games.
func KFactor(matchCount int, rating int) int {
	switch {
	case matchCount < EstablishedAfter:
		return KNew
	case rating >= MasterRating:
		return KMaster
	case rating >= AdvancedRating:
		return KAdvanced
	default:
		return KRegular
	}
}

// Expected score of a player against an opponent, in [0, 1].
func Expected(player int, opponent int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(opponent-player)/400.0))
}

// Delta is the signed, rounded rating change.
func Delta(player int, opponent int, k int, result Points) int {
	e := Expected(player, opponent)
	return int(math.Round(float64(k) * (float64(result) - e)))
}

// Calculate new rating.
// Ra - player A rating.
// Rb - player B rating.
// K - coefficient, see KFactor.
// Sa - points: 1 for win; 0.5 for draw; 0 for lose.
func Calculate(Ra int, Rb int, K int, Sa Points) int {
	return Ra + Delta(Ra, Rb, K, Sa)
}

// Change is the outcome of one rated match for one player.
type Change struct {
	K        int
	Expected float64
	Delta    int
	Rating   int
}

// Update rates a single match from the point of view of player.
func Update(player int, opponent int, matchCount int, result Points) Change {
	k := KFactor(matchCount, player)
	delta := Delta(player, opponent, k, result)
	return Change{
		K:        k,
		Expected: Expected(player, opponent),
		Delta:    delta,
		Rating:   player + delta,
	}
}
