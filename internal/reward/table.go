package reward

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goserg/tournament/internal/domain"
)

// All percentages are basis points: 10000 = 100%.
const basisPoints = 10000

// PositionKey names a finishing position for point lookups.
type PositionKey string

const (
	Champion      PositionKey = "CHAMPION"
	RunnerUp      PositionKey = "RUNNER_UP"
	ThirdPlace    PositionKey = "THIRD_PLACE"
	FourthPlace   PositionKey = "FOURTH_PLACE"
	Top8          PositionKey = "TOP_8"
	Top16         PositionKey = "TOP_16"
	Participation PositionKey = "PARTICIPATION"
)

// KeyFor maps a numeric finishing position to its key.
func KeyFor(position int) PositionKey {
	switch position {
	case 1:
		return Champion
	case 2:
		return RunnerUp
	case 3:
		return ThirdPlace
	case 4:
		return FourthPlace
	case 8:
		return Top8
	case 16:
		return Top16
	}
	return Participation
}

var prizePercentage = map[domain.Tier]int{
	domain.TierK: 7000,
	domain.TierI: 7500,
	domain.TierH: 8000,
	domain.TierG: 8500,
}

var tierMultiplier = map[domain.Tier]int{
	domain.TierK: 10000,
	domain.TierI: 12000,
	domain.TierH: 15000,
	domain.TierG: 20000,
}

// PrizePercentage is the share of entry revenue paid out, K when tier is unknown.
func PrizePercentage(tier domain.Tier) int {
	if p, ok := prizePercentage[tier]; ok {
		return p
	}
	return prizePercentage[domain.TierK]
}

func TierMultiplier(tier domain.Tier) int {
	if m, ok := tierMultiplier[tier]; ok {
		return m
	}
	return tierMultiplier[domain.TierK]
}

// Share is one position's cut of the prize pool.
type Share struct {
	Position    int
	BasisPoints int
}

// CashRow applies to brackets with at least MinPlayers participants.
type CashRow struct {
	MinPlayers int
	Shares     []Share
}

// cashTable is ordered by MinPlayers descending.
var cashTable = []CashRow{
	{MinPlayers: 32, Shares: []Share{{1, 3500}, {2, 2000}, {3, 1200}, {4, 800}, {8, 1500}, {16, 1000}}},
	{MinPlayers: 16, Shares: []Share{{1, 4000}, {2, 2500}, {3, 1500}, {4, 1000}, {8, 1000}}},
	{MinPlayers: 8, Shares: []Share{{1, 4500}, {2, 2500}, {3, 1500}, {4, 1500}}},
	{MinPlayers: 4, Shares: []Share{{1, 5000}, {2, 3000}, {3, 2000}}},
	{MinPlayers: 0, Shares: []Share{{1, 7000}, {2, 3000}}},
}

// CashShares returns the distribution row for a bracket of n participants.
func CashShares(n int) []Share {
	for _, row := range cashTable {
		if n >= row.MinPlayers {
			shares := make([]Share, len(row.Shares))
			copy(shares, row.Shares)
			return shares
		}
	}
	return nil
}

// ValidPositions lists the positions that can be rewarded for n participants, ascending.
func ValidPositions(n int) []int {
	shares := CashShares(n)
	positions := make([]int, 0, len(shares))
	for _, s := range shares {
		positions = append(positions, s.Position)
	}
	return positions
}

func validPositionSet(n int) mapset.Set[int] {
	return mapset.NewSet[int](ValidPositions(n)...)
}

type PositionPoints struct {
	Elo int
	Spa int
}

var formatPoints = map[domain.GameFormat]map[PositionKey]PositionPoints{
	domain.Format8Ball: {
		Champion:      {Elo: 100, Spa: 1000},
		RunnerUp:      {Elo: 75, Spa: 700},
		ThirdPlace:    {Elo: 50, Spa: 500},
		FourthPlace:   {Elo: 40, Spa: 400},
		Top8:          {Elo: 25, Spa: 250},
		Top16:         {Elo: 15, Spa: 150},
		Participation: {Elo: 5, Spa: 100},
	},
	domain.Format9Ball: {
		Champion:      {Elo: 110, Spa: 1100},
		RunnerUp:      {Elo: 83, Spa: 770},
		ThirdPlace:    {Elo: 55, Spa: 550},
		FourthPlace:   {Elo: 44, Spa: 440},
		Top8:          {Elo: 28, Spa: 275},
		Top16:         {Elo: 17, Spa: 165},
		Participation: {Elo: 6, Spa: 110},
	},
	domain.Format10Ball: {
		Champion:      {Elo: 120, Spa: 1200},
		RunnerUp:      {Elo: 90, Spa: 840},
		ThirdPlace:    {Elo: 60, Spa: 600},
		FourthPlace:   {Elo: 48, Spa: 480},
		Top8:          {Elo: 30, Spa: 300},
		Top16:         {Elo: 18, Spa: 180},
		Participation: {Elo: 6, Spa: 120},
	},
}

// Points for a position in a tournament of the given tier and format.
// Unknown formats use the 8-ball table.
func Points(tier domain.Tier, format domain.GameFormat, key PositionKey) PositionPoints {
	table, ok := formatPoints[format]
	if !ok {
		table = formatPoints[domain.Format8Ball]
	}
	base, ok := table[key]
	if !ok {
		base = table[Participation]
	}
	m := TierMultiplier(tier)
	return PositionPoints{
		Elo: int(percentOf(int64(base.Elo), m)),
		Spa: int(percentOf(int64(base.Spa), m)),
	}
}

var tournamentElo = map[PositionKey]int{
	Champion:      100,
	RunnerUp:      75,
	ThirdPlace:    50,
	FourthPlace:   40,
	Top8:          25,
	Top16:         15,
	Participation: 5,
}

// TournamentElo is the rating bonus for a finishing position.
func TournamentElo(key PositionKey) int {
	if v, ok := tournamentElo[key]; ok {
		return v
	}
	return tournamentElo[Participation]
}

var tournamentSpa = map[domain.RankCode]map[PositionKey]int{
	domain.RankK:     spaRow(1000, 700, 500, 400, 250, 150, 100),
	domain.RankKPlus: spaRow(1100, 770, 550, 440, 275, 165, 110),
	domain.RankI:     spaRow(1200, 840, 600, 480, 300, 180, 120),
	domain.RankIPlus: spaRow(1300, 910, 650, 520, 325, 195, 130),
	domain.RankH:     spaRow(1500, 1050, 750, 600, 375, 225, 150),
	domain.RankHPlus: spaRow(1600, 1120, 800, 640, 400, 240, 160),
	domain.RankG:     spaRow(1800, 1260, 900, 720, 450, 270, 180),
	domain.RankGPlus: spaRow(1900, 1330, 950, 760, 475, 285, 190),
	domain.RankF:     spaRow(2100, 1470, 1050, 840, 525, 315, 210),
	domain.RankFPlus: spaRow(2200, 1540, 1100, 880, 550, 330, 220),
	domain.RankE:     spaRow(2500, 1750, 1250, 1000, 625, 375, 250),
	domain.RankEPlus: spaRow(2600, 1820, 1300, 1040, 650, 390, 260),
}

func spaRow(champion, runnerUp, third, fourth, top8, top16, participation int) map[PositionKey]int {
	return map[PositionKey]int{
		Champion:      champion,
		RunnerUp:      runnerUp,
		ThirdPlace:    third,
		FourthPlace:   fourth,
		Top8:          top8,
		Top16:         top16,
		Participation: participation,
	}
}

// TournamentSpa looks up ranking points by rank, then position.
// Unknown ranks use the K table; unknown positions use PARTICIPATION.
func TournamentSpa(key PositionKey, rank domain.RankCode) int {
	table, ok := tournamentSpa[rank]
	if !ok {
		table = tournamentSpa[domain.RankK]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return table[Participation]
}

// percentOf rounds half up; amount and bp are non-negative.
func percentOf(amount int64, bp int) int64 {
	return (amount*int64(bp) + basisPoints/2) / basisPoints
}
