// Package equality implements reduction-driven structural equality
// (component E): two terms are equal when they reduce to the same
// normal form modulo definition expansion, computed through a small
// tree of And/Or sub-goals with a fast structural pre-check and a
// hash-keyed memoization cache.
package equality

// key identifies a memoized verdict by the pair of hashes produced at
// the end of step 1 (weak-normalize in erased mode, no expansion).
type key struct {
	a, b uint64
}

// Cache is the pluggable memoization contract. Register is called
// with a provisional verdict before any recursive call that might
// re-ask the same question, then called again with the final verdict
// once it is known — so a Check during that recursion sees the
// provisional entry instead of looping. Check is consulted first by
// every Equal call. Callers must always query a pair in the same order
// they registered it — Cache does not promise symmetric storage (see
// spec.md's open question on this).
type Cache interface {
	Check(a, b uint64) (verdict bool, found bool)
	Register(a, b uint64, verdict bool)
}

// NullCache never remembers anything; every Check misses. Useful for
// one-shot equality checks where memoization would only cost memory.
type NullCache struct{}

// Check always reports a miss.
func (NullCache) Check(uint64, uint64) (bool, bool) { return false, false }

// Register is a no-op.
func (NullCache) Register(uint64, uint64, bool) {}

// MapCache memoizes verdicts in a plain Go map, scoped to a single
// checking invocation per spec.md's resource policy (§5): it must not
// be shared across concurrent checks, but may be reused across
// sequential ones to amortize repeated sub-goals.
type MapCache struct {
	entries map[key]bool
}

// NewMapCache creates an empty cache.
func NewMapCache() *MapCache {
	return &MapCache{entries: make(map[key]bool)}
}

// Check looks up a previously registered verdict.
func (c *MapCache) Check(a, b uint64) (bool, bool) {
	v, ok := c.entries[key{a, b}]
	return v, ok
}

// Register remembers the verdict for (a, b) as queried, in that order.
func (c *MapCache) Register(a, b uint64, verdict bool) {
	c.entries[key{a, b}] = verdict
}

var (
	_ Cache = NullCache{}
	_ Cache = (*MapCache)(nil)
)
