package ltlsyntax

// Cache is the hash-cons table for canonicalized formula nodes: a content
// addressed map keyed by the node's serialization, so that two structurally
// equal subformulas become the same *Node. This is the Go analogue of
// `in_cache`/`cached` in `original_source/cache.c`, which buckets nodes by
// a recursive hash and resolves collisions with `isequal`. A Go map already
// gives us collision-free bucketing on the string key, so the explicit hash
// buckets of the C implementation collapse to map lookups; two nodes with
// the same serialization are taken to be equal, with no IsEqual check.
type Cache struct {
	preds   *PredicateTable
	entries map[string]*Node
}

// NewCache returns an empty hash-cons cache bound to the given predicate
// table (Serialize needs it to render literal names into cache keys).
func NewCache(preds *PredicateTable) *Cache {
	return &Cache{preds: preds, entries: make(map[string]*Node)}
}

// Intern returns the canonical shared node equal to n: an existing cache
// entry if one matches n's serialization, otherwise n itself, newly
// inserted. Callers must already have canonicalized n's children (Intern
// does not recurse) — Canonical is responsible for interning bottom-up.
func (c *Cache) Intern(n *Node) *Node {
	key := Serialize(n, c.preds)
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = n
	return n
}

// Lookup returns the cached node for a serialization key, if any.
func (c *Cache) Lookup(key string) (*Node, bool) {
	n, ok := c.entries[key]
	return n, ok
}

// Len reports how many distinct nodes are currently cached.
func (c *Cache) Len() int {
	return len(c.entries)
}
