package nominatim

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
)

// Cache lookup outcomes, used as metric labels.
const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheStale = "stale"
)

type cacheEntry struct {
	district   domain.District
	resolvedAt time.Time
}

// ttlCache is a thread-safe map of rounded coordinate keys to resolved
// districts. Entries expire after a TTL; exceeding the size bound clears
// the whole map rather than evicting one entry. The clock is injected so
// tests control expiry.
type ttlCache struct {
	mu         sync.Mutex
	clock      clockwork.Clock
	ttl        time.Duration
	maxEntries int
	entries    map[string]cacheEntry
}

func newTTLCache(ttl time.Duration, maxEntries int, clock clockwork.Clock) *ttlCache {
	return &ttlCache{
		clock:      clock,
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]cacheEntry),
	}
}

// get returns the cached district for key and the lookup outcome. A stale
// entry is reported as such and left in place; the caller's next put
// replaces it.
func (c *ttlCache) get(key string) (domain.District, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", cacheMiss
	}
	if c.clock.Since(e.resolvedAt) >= c.ttl {
		return "", cacheStale
	}
	return e.district, cacheHit
}

// put records a resolved district, replace-or-insert. When the map has
// grown past the size bound it is cleared entirely first.
func (c *ttlCache) put(key string, district domain.District) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) > c.maxEntries {
		c.entries = make(map[string]cacheEntry)
	}
	c.entries[key] = cacheEntry{district: district, resolvedAt: c.clock.Now()}
}

func (c *ttlCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
