// Package compile implements the Term<->Net compiler (component I):
// BuildNet walks a stratification-proven term and wires it into a
// pkg/net graph, and ReadTerm (in read.go) walks the graph back into a
// term. Grounded on vic-GoDNet's pkg/lambda/translate.go
// (ToDeltaNet/FromDeltaNet), adapted from that package's
// Fan/Replicator vocabulary to this package's Delta/Zeta agents and
// from untyped lambda terms to the full eleven-constructor calculus —
// most of which (Put, Duplicate, Annotation, Reference) is transparent
// to the net and never reappears on the way back out.
package compile

import (
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/net"
	"github.com/vic/eacore/pkg/stratify"
	"github.com/vic/eacore/pkg/term"
)

// builder holds the state threaded through the term->net walk: the net
// under construction, the definitions table References are inlined
// against, and varPtrs — the stack of ports representing the
// currently in-scope binders (Lambda parameters and Duplicate-bound
// expressions alike), innermost last.
type builder[T net.Unsigned] struct {
	net     *net.Net[T]
	d       defs.Definitions
	varPtrs []net.Port[T]
}

// BuildNet compiles a stratified term into a net per spec.md §4.I.
// Only a stratify.Proof may be compiled: stratification is what
// guarantees the resulting net's reduction terminates, so "this term
// compiles" and "this term is known to reduce to a normal form" are
// the same fact rather than two checks the caller has to remember to
// both run.
func BuildNet[T net.Unsigned](proof stratify.Proof) (*net.Net[T], error) {
	n := net.New[T]()
	b := &builder[T]{net: n, d: proof.Definitions()}

	entry, err := b.build(proof.Term())
	if err != nil {
		return nil, err
	}
	n.Connect(n.RootPort(), entry)
	b.bindUnbound()
	return n, nil
}

func (b *builder[T]) build(t term.Term) (net.Port[T], error) {
	switch v := t.(type) {
	case term.Variable:
		return b.useVar(int(v.Index))

	case term.Lambda:
		if v.Erased {
			// Erased lambdas never appear in the net: its parameter
			// is (by stratification) unused, so closing the binder
			// is just a shift, never a real substitution.
			return b.build(term.SubstituteTop(v.Body, term.Variable{Index: 0}))
		}
		addr := b.net.Add(net.Delta)
		b.varPtrs = append(b.varPtrs, net.PortOf[T](addr, net.SlotLeft))
		bodyPort, err := b.build(v.Body)
		b.varPtrs = b.varPtrs[:len(b.varPtrs)-1]
		if err != nil {
			return net.Port[T]{}, err
		}
		b.net.Connect(net.PortOf[T](addr, net.SlotRight), bodyPort)
		return net.PortOf[T](addr, net.SlotPrincipal), nil

	case term.Apply:
		if v.Erased {
			return b.build(v.Function)
		}
		addr := b.net.Add(net.Delta)
		fnPort, err := b.build(v.Function)
		if err != nil {
			return net.Port[T]{}, err
		}
		b.net.Connect(net.PortOf[T](addr, net.SlotPrincipal), fnPort)
		argPort, err := b.build(v.Argument)
		if err != nil {
			return net.Port[T]{}, err
		}
		b.net.Connect(net.PortOf[T](addr, net.SlotLeft), argPort)
		return net.PortOf[T](addr, net.SlotRight), nil

	case term.Put:
		return b.build(v.Term)

	case term.Annotation:
		return b.build(v.Expression)

	case term.Duplicate:
		exprPort, err := b.build(v.Expression)
		if err != nil {
			return net.Port[T]{}, err
		}
		b.varPtrs = append(b.varPtrs, exprPort)
		bodyPort, err := b.build(v.Body)
		b.varPtrs = b.varPtrs[:len(b.varPtrs)-1]
		return bodyPort, err

	case term.Reference:
		value, ok := b.d.Get(v.Name)
		if !ok {
			return net.Port[T]{}, &NetError{Kind: KindUnboundReference, Name: v.Name}
		}
		return b.build(value)

	default:
		// Universe, Function, Wrap, Primitive: type-only (or
		// host-opaque) constructs that a correctly erased term
		// should never still contain by the time it reaches the net.
		return net.Port[T]{}, &NetError{Kind: KindTypedTerm, Term: t}
	}
}

// useVar resolves the i-th enclosing binder (0 = innermost). The first
// occurrence returns the binder's port directly, still a self-loop.
// Every subsequent occurrence finds that port already connected and
// splices in a Zeta: its principal takes over the connection the
// binder port already had, its left keeps that previous target, and
// its right is handed back as the new, distinct use site.
func (b *builder[T]) useVar(i int) (net.Port[T], error) {
	idx := len(b.varPtrs) - 1 - i
	if idx < 0 {
		return net.Port[T]{}, &NetError{Kind: KindUnboundVariable, Term: term.Variable{Index: term.Index(i)}}
	}
	port := b.varPtrs[idx]
	other := b.net.Follow(port)
	if other.IsRoot() || other == port {
		return port, nil
	}

	z := b.net.Add(net.Zeta)
	b.net.Disconnect(port)
	b.net.Connect(port, net.PortOf[T](z, net.SlotPrincipal))
	b.net.Connect(net.PortOf[T](z, net.SlotLeft), other)
	return net.PortOf[T](z, net.SlotRight), nil
}

// bindUnbound wires a freshly created Epsilon onto every Delta agent
// whose parameter port (left) was never connected to a use — spec.md's
// "weakening" step for lambdas whose body never references the bound
// variable. Zeta and Root never need this: a Zeta's left is always
// connected the moment it is allocated (useVar's splice), and Root is
// excluded outright.
func (b *builder[T]) bindUnbound() {
	count := len(b.net.Agents)
	for addr := 0; addr < count; addr++ {
		if b.net.Agents[addr].Type != net.Delta {
			continue
		}
		left := net.PortOf[T](addr, net.SlotLeft)
		if b.net.Follow(left) == left {
			era := b.net.Add(net.Epsilon)
			b.net.Connect(left, net.PortOf[T](era, net.SlotPrincipal))
		}
	}
}
