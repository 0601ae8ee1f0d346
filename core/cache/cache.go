package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Cache is an in-process store with per-entry TTLs and tag invalidation.
// Computed reports live here; Remote mirrors them to Redis when configured.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	tags    map[string]map[string]struct{}
	now     func() time.Time
}

type entry struct {
	value   interface{}
	expires time.Time // zero never expires
	tags    []string
}

var (
	once     sync.Once
	instance *Cache
)

// GetInstance returns the process-wide cache.
func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		tags:    make(map[string]map[string]struct{}),
		now:     time.Now,
	}
}

// Key joins parts into a composite key.
func Key(parts ...interface{}) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(p)
	}
	return strings.Join(s, "|")
}

// Set stores value under key. ttl <= 0 keeps it until deleted.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration, tags []string) {
	e := entry{value: value, tags: tags}
	if ttl > 0 {
		e.expires = c.now().Add(ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
	c.entries[key] = e
	for _, t := range tags {
		keys, ok := c.tags[t]
		if !ok {
			keys = make(map[string]struct{})
			c.tags[t] = keys
		}
		keys[key] = struct{}{}
	}
}

// Get returns the live value of key. Expired entries are dropped on read.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expires.IsZero() && c.now().After(e.expires) {
		c.Delete(key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	c.removeLocked(key)
	c.mu.Unlock()
}

// DeleteByTag drops every entry carrying tag.
func (c *Cache) DeleteByTag(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.tags[tag] {
		c.removeLocked(key)
	}
	delete(c.tags, tag)
}

// Tagged returns how many entries carry tag.
func (c *Cache) Tagged(tag string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tags[tag])
}

func (c *Cache) removeLocked(key string) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	for _, t := range e.tags {
		if keys, ok := c.tags[t]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(c.tags, t)
			}
		}
	}
}
