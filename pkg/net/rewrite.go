package net

import (
	"go.uber.org/zap"

	"github.com/vic/eacore/pkg/diag"
)

// Reduce drains Active one redex at a time, performing at most max
// rewrites when max >= 0; a negative max drains to completion. It
// returns the number of rewrites actually performed.
//
// An Active entry is queued the instant two principal ports meet
// (Connect), but the net compiler can rewire a port several times
// before settling (each additional use of a shared binder splices in
// another Zeta), so by the time an entry is popped its connection may
// already be superseded or gone. Reduce re-validates that x's
// principal still faces a reciprocal principal port before treating it
// as a redex, silently dropping anything that doesn't — the agent that
// made the entry stale either isn't a redex anymore or was re-queued
// fresh under its current wiring when it was last connected.
func (n *Net[T]) Reduce(max int) int {
	rewrites := 0
	for len(n.Active) > 0 {
		if max >= 0 && rewrites == max {
			break
		}
		last := len(n.Active) - 1
		x := n.Active[last]
		n.Active = n.Active[:last]

		xp := pack[T](x, SlotPrincipal)
		yp := n.Follow(xp)
		if yp == xp || yp.Slot() != SlotPrincipal || n.Follow(yp) != xp {
			continue
		}

		n.rewrite(x, yp.Address())
		rewrites++
	}
	return rewrites
}

// ReduceAll drains Active to completion.
func (n *Net[T]) ReduceAll() int {
	return n.Reduce(-1)
}

// rewrite performs the single interaction between agents x and y,
// whose principal ports currently face each other, per spec.md §4.J.
func (n *Net[T]) rewrite(x, y int) {
	xTy, yTy := n.Agents[x].Type, n.Agents[y].Type
	diag.L().Debug("rewrite", zap.Int("x", x), zap.Stringer("xType", xTy), zap.Int("y", y), zap.Stringer("yType", yTy))

	switch {
	case xTy == yTy:
		n.recordTrace(RuleAnnihilate, x, xTy, y, yTy)
		if xTy != Epsilon {
			n.Connect(n.Follow(pack[T](x, SlotLeft)), n.Follow(pack[T](y, SlotLeft)))
			n.Connect(n.Follow(pack[T](x, SlotRight)), n.Follow(pack[T](y, SlotRight)))
		}
		n.Free(x)
		n.Free(y)

	case xTy == Epsilon || yTy == Epsilon:
		n.recordTrace(RuleErase, x, xTy, y, yTy)
		other := y
		if xTy != Epsilon {
			other = x
		}

		p := n.Add(Epsilon)
		q := n.Add(Epsilon)
		n.Connect(pack[T](p, SlotPrincipal), n.Follow(pack[T](other, SlotLeft)))
		n.Connect(pack[T](q, SlotPrincipal), n.Follow(pack[T](other, SlotRight)))
		n.Free(x)
		n.Free(y)

	default:
		n.recordTrace(RuleCommute, x, xTy, y, yTy)
		p := n.Add(yTy)
		q := n.Add(yTy)
		r := n.Add(xTy)
		s := n.Add(xTy)

		n.Connect(pack[T](r, SlotLeft), pack[T](p, SlotLeft))
		n.Connect(pack[T](s, SlotLeft), pack[T](p, SlotRight))
		n.Connect(pack[T](r, SlotRight), pack[T](q, SlotLeft))
		n.Connect(pack[T](s, SlotRight), pack[T](q, SlotRight))

		n.Connect(pack[T](p, SlotPrincipal), n.Follow(pack[T](x, SlotLeft)))
		n.Connect(pack[T](q, SlotPrincipal), n.Follow(pack[T](x, SlotRight)))
		n.Connect(pack[T](r, SlotPrincipal), n.Follow(pack[T](y, SlotLeft)))
		n.Connect(pack[T](s, SlotPrincipal), n.Follow(pack[T](y, SlotRight)))

		n.Free(x)
		n.Free(y)
	}
}
