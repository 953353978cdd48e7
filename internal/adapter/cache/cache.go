package cache

import (
	"sync"

	"github.com/S4ng4/winery-resolver/internal/domain"
	"github.com/S4ng4/winery-resolver/internal/observability"
)

// lookupResult is a cached resolution. Misses are cached too: the catalog
// never changes while the process runs, so a miss stays a miss.
type lookupResult struct {
	match domain.Match
	found bool
}

// CachedResolver wraps a Resolver with an in-memory LRU keyed by the
// normalized producer name, and counts every lookup by outcome.
type CachedResolver struct {
	inner   domain.Resolver
	cache   *lru[string, lookupResult]
	metrics *observability.Metrics
}

// NewCachedResolver creates a cache decorator around a resolver.
func NewCachedResolver(inner domain.Resolver, maxEntries int, metrics *observability.Metrics) *CachedResolver {
	return &CachedResolver{
		inner:   inner,
		cache:   newLRU[string, lookupResult](maxEntries),
		metrics: metrics,
	}
}

// Resolve implements domain.Resolver.
func (c *CachedResolver) Resolve(producerName string) (domain.Match, bool) {
	key := domain.Normalize(producerName)
	if key == "" {
		c.metrics.Lookups.WithLabelValues(domain.MatchNone.String()).Inc()
		return domain.Match{}, false
	}

	res, ok := c.cache.get(key)
	if ok {
		c.metrics.LookupCache.WithLabelValues("hit").Inc()
	} else {
		c.metrics.LookupCache.WithLabelValues("miss").Inc()
		res.match, res.found = c.inner.Resolve(key)
		c.cache.put(key, res)
	}

	if !res.found {
		c.metrics.Lookups.WithLabelValues(domain.MatchNone.String()).Inc()
		return domain.Match{}, false
	}
	c.metrics.Lookups.WithLabelValues(res.match.Strategy.String()).Inc()
	m := res.match
	m.Winery = m.Winery.Clone()
	return m, true
}

// lru is a small thread-safe least-recently-used cache.
type lru[K comparable, V any] struct {
	maxEntries int
	mu         sync.Mutex
	items      map[K]*node[K, V]
	head       *node[K, V] // most recently used
	tail       *node[K, V] // least recently used
}

type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

func newLRU[K comparable, V any](maxEntries int) *lru[K, V] {
	return &lru[K, V]{
		maxEntries: max(maxEntries, 1),
		items:      make(map[K]*node[K, V]),
	}
}

func (c *lru[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.promote(n)
	return n.value, true
}

func (c *lru[K, V]) put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		n.value = value
		c.promote(n)
		return
	}

	n := &node[K, V]{key: key, value: value}
	c.items[key] = n
	c.pushFront(n)

	if len(c.items) > c.maxEntries {
		oldest := c.tail
		c.unlink(oldest)
		delete(c.items, oldest.key)
	}
}

func (c *lru[K, V]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *lru[K, V]) promote(n *node[K, V]) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *lru[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *lru[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
