package promotion

import (
	"time"

	"github.com/goserg/tournament/internal/domain"
	"github.com/goserg/tournament/internal/elo"
)

const (
	MinMatches     = 10
	MinDaysBetween = 7
)

// Policy decides whether a player has earned the next rank. It never
// changes the ranking itself.
type Policy struct {
	MinMatches     int
	MinDaysBetween int
	// Thresholds is the ELO needed to hold each rank.
	Thresholds map[domain.RankCode]int
	Now        func() time.Time
}

func DefaultPolicy() Policy {
	return Policy{
		MinMatches:     MinMatches,
		MinDaysBetween: MinDaysBetween,
		Thresholds:     elo.RankThresholds,
		Now:            time.Now,
	}
}

// NextRank returns the rank above rank, false at the top or for unknown ranks.
func NextRank(rank domain.RankCode) (domain.RankCode, bool) {
	return rank.Next()
}

func (p Policy) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// IsEligible reports whether a player with the given rating and history may
// move up from rank. lastPromotion is nil when the player was never promoted.
func (p Policy) IsEligible(rating int, rank domain.RankCode, matches int, lastPromotion *time.Time) bool {
	if matches < p.MinMatches {
		return false
	}
	if lastPromotion != nil {
		cooldown := time.Duration(p.MinDaysBetween) * 24 * time.Hour
		if p.now().Sub(*lastPromotion) < cooldown {
			return false
		}
	}
	next, ok := NextRank(rank)
	if !ok {
		return false
	}
	threshold, ok := p.Thresholds[next]
	if !ok {
		return false
	}
	return rating >= threshold
}

// Check evaluates a stored ranking and returns the rank it qualifies for.
func (p Policy) Check(r domain.PlayerRanking) (domain.RankCode, bool) {
	if !p.IsEligible(r.EloPoints, r.RankCode, r.TotalMatches, r.LastPromotionAt) {
		return "", false
	}
	return NextRank(r.RankCode)
}
