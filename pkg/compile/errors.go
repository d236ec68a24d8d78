package compile

import (
	"fmt"

	"github.com/vic/eacore/pkg/term"
)

// Kind distinguishes NetError's variants.
type Kind int

const (
	// KindTypedTerm: BuildNet encountered a Universe, Function, Wrap
	// or Primitive — a type-only (or host-opaque) construct that
	// should already have been erased before reaching the net
	// compiler (spec.md §7).
	KindTypedTerm Kind = iota
	// KindUnboundReference: a Reference named no known definition.
	KindUnboundReference
	// KindUnboundVariable: a Variable's index had no enclosing
	// binder frame left on the compiler's scope stack.
	KindUnboundVariable
)

func (k Kind) String() string {
	switch k {
	case KindTypedTerm:
		return "TypedTerm"
	case KindUnboundReference:
		return "UnboundReference"
	case KindUnboundVariable:
		return "UnboundVariable"
	default:
		return "Unknown"
	}
}

// NetError is the error BuildNet returns; spec.md §7 names only the
// TypedTerm variant. Of the other two, a dangling Reference is also
// rejected by stratification; an out-of-scope Variable passes
// stratification and is caught only here.
type NetError struct {
	Kind Kind
	Term term.Term
	Name string
}

func (e *NetError) Error() string {
	switch e.Kind {
	case KindUnboundReference:
		return fmt.Sprintf("compile: UnboundReference: %s", e.Name)
	default:
		return fmt.Sprintf("compile: %s: %s", e.Kind, e.Term)
	}
}

// ReadError reports a malformed net encountered while reading a term
// back out: a dangling port, a duplication node with no recorded exit
// side, or a traversal that reached the root or an erased position
// mid-read. None of these occur for a net BuildNet produced and the
// rewriter reduced to normal form; they signal a hand-built or
// partially reduced net passed to ReadTerm directly.
type ReadError struct {
	Reason string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("compile: ReadError: %s", e.Reason)
}
