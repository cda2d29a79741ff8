// Package cache holds a small read cache for nation snapshots used by
// display-only commands. Every engine write invalidates the entry, so no
// mutation path ever reads a stale snapshot.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/worlddominion/worldbot/worldbot/database/models"
)

const defaultSize = 512

type entry struct {
	nation  *models.Nation
	fetched time.Time
}

type NationCache struct {
	cache *lru.Cache
	ttl   time.Duration
}

func NewNationCache(ttl time.Duration) *NationCache {
	c, _ := lru.New(defaultSize)
	return &NationCache{cache: c, ttl: ttl}
}

// Get returns a cached snapshot clone, or nil when absent or expired.
func (c *NationCache) Get(id int64) *models.Nation {
	v, ok := c.cache.Get(id)
	if !ok {
		return nil
	}
	e := v.(entry)
	if time.Since(e.fetched) > c.ttl {
		c.cache.Remove(id)
		return nil
	}
	return e.nation.Clone()
}

// Put stores a clone so later writes to the original cannot leak in.
func (c *NationCache) Put(nation *models.Nation) {
	c.cache.Add(nation.ID, entry{nation: nation.Clone(), fetched: time.Now()})
}

// Invalidate drops the entry for a nation after any write to it.
func (c *NationCache) Invalidate(id int64) {
	c.cache.Remove(id)
}
