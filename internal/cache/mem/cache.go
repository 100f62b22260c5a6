// Package mem keeps an in-memory index of the roster for name lookups.
package mem

import (
	"sync"

	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/normalize"
)

type Cache struct {
	mu      sync.RWMutex
	valid   bool
	players map[string]domain.Player
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
	}
}

// Update replaces the index. When two players share a normalized name the first
// one wins.
func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player, len(players))
	for i := range players {
		name := normalize.Name(players[i].Name)
		if _, ok := c.players[name]; ok {
			continue
		}
		c.players[name] = players[i]
	}
	c.valid = true
}

// GetPlayerByName looks a player up ignoring case, accents and extra spaces.
func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return domain.Player{}, false
	}
	player, ok := c.players[normalize.Name(name)]
	if !ok {
		return domain.Player{}, false
	}
	return player, true
}
