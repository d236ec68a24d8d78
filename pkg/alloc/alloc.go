// Package alloc implements the allocator contract from spec.md's data
// model: a pluggable owner for the boxes holding term subtrees. Go's GC
// makes most of the original ownership bookkeeping moot, so the
// contract collapses to a single policy decision — how a subterm gets
// copied when it is shared between two new owners — with Reallocate
// covering the cross-allocator case where a term built under one
// policy needs to be adopted by another.
package alloc

import "github.com/vic/eacore/pkg/term"

// Allocator owns the copies it hands out. Copy must return a term that
// shares no mutable state with its argument; callers are free to treat
// the result as uniquely owned.
type Allocator interface {
	Copy(t term.Term) term.Term
}

// Reallocator additionally knows how to adopt a term produced by a
// foreign allocator, re-copying it under its own policy.
type Reallocator interface {
	Allocator
	Reallocate(t term.Term) term.Term
}

// System is the default allocator: every copy is a plain heap
// allocation via term.Clone, exactly as Go would do anyway. It exists
// so call sites can depend on the Allocator interface rather than
// term.Clone directly.
type System struct{}

// Copy deep-copies t.
func (System) Copy(t term.Term) term.Term { return term.Clone(t) }

// Reallocate adopts a term built under any other allocator; since
// System carries no per-node bookkeeping, this is just Copy.
func (System) Reallocate(t term.Term) term.Term { return term.Clone(t) }

var _ Reallocator = System{}
