package alloc

import "github.com/vic/eacore/pkg/term"

// Arena is a bump-style allocator: every Copy is still a full
// term.Clone (Go offers no way to sub-allocate inside an interface
// value's backing struct without unsafe tricks), but the arena retains
// a reference to every node it has produced so a caller can measure or
// release the whole batch at once. It is the stand-in for the slab/pool
// implementations the allocator contract admits alongside System.
type Arena struct {
	nodes []term.Term
}

// NewArena creates an arena that expects to hand out roughly capacity
// copies before being discarded.
func NewArena(capacity int) *Arena {
	return &Arena{nodes: make([]term.Term, 0, capacity)}
}

// Copy deep-copies t and records the result in the arena's batch.
func (a *Arena) Copy(t term.Term) term.Term {
	c := term.Clone(t)
	a.nodes = append(a.nodes, c)
	return c
}

// Reallocate adopts a foreign term into this arena's batch.
func (a *Arena) Reallocate(t term.Term) term.Term {
	return a.Copy(t)
}

// Len reports how many nodes have passed through this arena.
func (a *Arena) Len() int { return len(a.nodes) }

// Reset discards the batch, letting the GC reclaim it.
func (a *Arena) Reset() { a.nodes = a.nodes[:0] }

var _ Reallocator = (*Arena)(nil)
