package mem

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
)

// Cache keeps player rankings in memory between storage reads.
type Cache struct {
	mu       sync.RWMutex
	valid    bool
	rankings map[uuid.UUID]domain.PlayerRanking
}

func New() *Cache {
	return &Cache{
		rankings: make(map[uuid.UUID]domain.PlayerRanking),
	}
}

// Update replaces the whole cache content.
func (c *Cache) Update(rankings []domain.PlayerRanking) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rankings = make(map[uuid.UUID]domain.PlayerRanking, len(rankings))
	for i := range rankings {
		c.rankings[rankings[i].PlayerID] = rankings[i]
	}
	c.valid = true
}

// Put stores a single ranking without touching the rest.
func (c *Cache) Put(r domain.PlayerRanking) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rankings[r.PlayerID] = r
}

// Invalidate marks the cache stale so the next reader reloads it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
}

func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.valid
}

func (c *Cache) GetRanking(playerID uuid.UUID) (domain.PlayerRanking, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.rankings[playerID]
	return r, ok
}

// Leaderboard returns rankings by ELO, then SPA points, highest first.
func (c *Cache) Leaderboard() []domain.PlayerRanking {
	c.mu.RLock()
	rankings := make([]domain.PlayerRanking, 0, len(c.rankings))
	for _, r := range c.rankings {
		rankings = append(rankings, r)
	}
	c.mu.RUnlock()

	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].EloPoints != rankings[j].EloPoints {
			return rankings[i].EloPoints > rankings[j].EloPoints
		}
		if rankings[i].SpaPoints != rankings[j].SpaPoints {
			return rankings[i].SpaPoints > rankings[j].SpaPoints
		}
		return rankings[i].PlayerID.String() < rankings[j].PlayerID.String()
	})
	return rankings
}
