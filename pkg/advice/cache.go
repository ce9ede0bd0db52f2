package advice

import (
	"sync"
	"time"
)

// Cache remembers recent answers keyed by question. It is an explicit object
// with a bounded size and lifetime, owned by whoever wires the controller —
// never a package-level singleton.
type Cache struct {
	mu      sync.Mutex
	max     int
	ttl     time.Duration
	entries map[string]cacheEntry
	order   []string // insertion order, for eviction
}

type cacheEntry struct {
	answer string
	at     time.Time
}

func NewCache(max int, ttl time.Duration) *Cache {
	return &Cache{max: max, ttl: ttl, entries: map[string]cacheEntry{}}
}

func (c *Cache) Get(question string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[question]
	if !ok || time.Since(e.at) > c.ttl {
		return "", false
	}
	return e.answer, true
}

func (c *Cache) Put(question, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[question]; !exists {
		c.order = append(c.order, question)
	}
	c.entries[question] = cacheEntry{answer: answer, at: time.Now()}
	for len(c.order) > c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}
