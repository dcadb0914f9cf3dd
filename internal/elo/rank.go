package elo

import "github.com/goserg/tournament/internal/domain"

// RankThresholds is the minimum rating a player needs to hold each rank.
var RankThresholds = map[domain.RankCode]int{
	domain.RankK:     1000,
	domain.RankKPlus: 1100,
	domain.RankI:     1200,
	domain.RankIPlus: 1300,
	domain.RankH:     1400,
	domain.RankHPlus: 1500,
	domain.RankG:     1600,
	domain.RankGPlus: 1700,
	domain.RankF:     1800,
	domain.RankFPlus: 1900,
	domain.RankE:     2000,
	domain.RankEPlus: 2100,
}

func Threshold(rank domain.RankCode) (int, bool) {
	t, ok := RankThresholds[rank]
	return t, ok
}

// RankFor returns the highest rank whose threshold rating reaches, K at minimum.
func RankFor(rating int) domain.RankCode {
	rank := domain.RankK
	for _, r := range domain.Ranks {
		if t, ok := RankThresholds[r]; ok && rating >= t {
			rank = r
		}
	}
	return rank
}
