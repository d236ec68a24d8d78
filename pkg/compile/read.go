package compile

import (
	"github.com/vic/eacore/pkg/net"
	"github.com/vic/eacore/pkg/term"
)

// reader holds the state threaded through the net->term walk:
// lambdaFrames is the stack of Delta addresses currently open as
// binders (innermost last), used to turn a binder-port occurrence into
// a de Bruijn index by its position; dupExit records, for each Zeta
// the walk is currently inside, which side (left or right) it entered
// from, so that later arriving at that same Zeta's principal port
// knows which consumer side to route back out through.
type reader[T net.Unsigned] struct {
	n            *net.Net[T]
	lambdaFrames []int
	dupExit      []net.Slot
}

// ReadTerm reconstructs a term from a net's current state, starting at
// the root's external port, per spec.md §4.I. Only Lambda, Apply and
// Variable ever come back out: Put, Duplicate, Annotation, Wrap,
// Universe, Function, Reference and Primitive are either transparent
// to the net or fatal to build (see NetError), so none of them can
// reappear here.
//
// Canonicalize runs first so any agent left unreachable from root by
// the reduction just performed (an argument discarded by an eraser
// rewrite that never got spliced out, for instance) cannot be mistaken
// for part of the live term during the walk.
func ReadTerm[T net.Unsigned](n *net.Net[T]) (term.Term, error) {
	n.Canonicalize()
	r := &reader[T]{n: n}
	return r.build(n.Follow(n.RootPort()))
}

func (r *reader[T]) build(p net.Port[T]) (term.Term, error) {
	addr := p.Address()
	if addr < 0 || addr >= len(r.n.Agents) {
		return nil, &ReadError{Reason: "dangling port"}
	}

	switch r.n.Agents[addr].Type {
	case net.Delta:
		return r.buildDelta(addr, p.Slot())
	case net.Zeta:
		return r.buildZeta(addr, p.Slot())
	case net.Root:
		return nil, &ReadError{Reason: "traversal reached the root mid-read"}
	default: // Epsilon
		return nil, &ReadError{Reason: "traversal reached an erased position"}
	}
}

func (r *reader[T]) buildDelta(addr int, slot net.Slot) (term.Term, error) {
	switch slot {
	case net.SlotPrincipal:
		r.lambdaFrames = append(r.lambdaFrames, addr)
		body, err := r.build(r.n.Follow(net.PortOf[T](addr, net.SlotRight)))
		r.lambdaFrames = r.lambdaFrames[:len(r.lambdaFrames)-1]
		if err != nil {
			return nil, err
		}
		return term.Lambda{Body: body, Erased: false}, nil

	case net.SlotLeft:
		for i := len(r.lambdaFrames) - 1; i >= 0; i-- {
			if r.lambdaFrames[i] == addr {
				return term.Variable{Index: term.Index(len(r.lambdaFrames) - 1 - i)}, nil
			}
		}
		return nil, &ReadError{Reason: "variable occurrence outside its binder's scope"}

	default: // SlotRight
		fn, err := r.build(r.n.Follow(net.PortOf[T](addr, net.SlotPrincipal)))
		if err != nil {
			return nil, err
		}
		arg, err := r.build(r.n.Follow(net.PortOf[T](addr, net.SlotLeft)))
		if err != nil {
			return nil, err
		}
		return term.Apply{Function: fn, Argument: arg, Erased: false}, nil
	}
}

func (r *reader[T]) buildZeta(addr int, slot net.Slot) (term.Term, error) {
	if slot == net.SlotPrincipal {
		if len(r.dupExit) == 0 {
			return nil, &ReadError{Reason: "duplication node entered with no recorded exit side"}
		}
		exit := r.dupExit[len(r.dupExit)-1]
		return r.build(r.n.Follow(net.PortOf[T](addr, exit)))
	}

	r.dupExit = append(r.dupExit, slot)
	result, err := r.build(r.n.Follow(net.PortOf[T](addr, net.SlotPrincipal)))
	r.dupExit = r.dupExit[:len(r.dupExit)-1]
	return result, err
}
