package memory

import (
	"sync"
	"time"

	"github.com/omarshaarawi/coachrank/internal/models"
)

type rangeKey struct {
	from int
	to   int
}

type entry struct {
	players     []models.PlayerRecord
	lastUpdated time.Time
}

// RosterCache keeps roster snapshots per matchday range until they are older
// than ttl or explicitly invalidated.
type RosterCache struct {
	ttl     time.Duration
	now     func() time.Time
	rosters map[rangeKey]entry
	mu      sync.RWMutex
}

func NewRosterCache(ttl time.Duration) *RosterCache {
	return &RosterCache{
		ttl:     ttl,
		now:     time.Now,
		rosters: make(map[rangeKey]entry),
	}
}

func (c *RosterCache) Save(from, to int, players []models.PlayerRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rosters[rangeKey{from, to}] = entry{
		players:     append([]models.PlayerRecord(nil), players...),
		lastUpdated: c.now(),
	}
}

// Get returns a copy of the cached snapshot, or false when it is missing or
// expired.
func (c *RosterCache) Get(from, to int) ([]models.PlayerRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.rosters[rangeKey{from, to}]
	if !ok || c.now().Sub(e.lastUpdated) > c.ttl {
		return nil, false
	}
	return append([]models.PlayerRecord(nil), e.players...), true
}

func (c *RosterCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rosters = make(map[rangeKey]entry)
}
