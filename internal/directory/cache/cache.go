// Package cache holds the in-process directory listing cache. The
// organization services publish change events instead of callers
// refetching after every mutation; the cache subscribes and drops its
// snapshot, and a TTL bounds staleness if an event is ever missed.
package cache

import (
	"sync"
	"time"

	"github.com/aidnetlk/aidnet/internal/events"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
)

// Cache is a single-snapshot cache of the approved organization listing.
type Cache struct {
	mu       sync.Mutex
	snapshot []organizationModel.Organization
	loadedAt time.Time
	ttl      time.Duration
}

// New creates a cache and subscribes it to organization change events.
func New(ttl time.Duration, bus *events.Bus) *Cache {
	c := &Cache{ttl: ttl}
	bus.Subscribe(events.TopicOrganizationChanged, func(events.Event) {
		c.Invalidate()
	})
	return c
}

// Get returns the cached snapshot, or nil when empty or expired.
func (c *Cache) Get() []organizationModel.Organization {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot == nil || time.Since(c.loadedAt) > c.ttl {
		return nil
	}
	return c.snapshot
}

// Set replaces the cached snapshot.
func (c *Cache) Set(organizations []organizationModel.Organization) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = organizations
	c.loadedAt = time.Now()
}

// Invalidate drops the cached snapshot.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
}
