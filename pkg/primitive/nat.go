// Package primitive gives an example implementation of
// term.PrimitiveValue: unboxed natural numbers with a successor and an
// addition primitive, reduced by Go code instead of by unfolding a
// Church encoding through the net. There is no teacher file for this
// one — pkg/term's own PrimitiveValue doc comment is the only
// contract to ground it on, since Primitive is a host extension point
// the evaluator core never constructs itself.
package primitive

import (
	"fmt"

	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/reduce"
	"github.com/vic/eacore/pkg/term"
)

// NatType is the type of Nat values, `*`-kinded and otherwise
// contentless; it stands in for a Reference to a "Nat" type
// declaration a host wouldn't otherwise have, the same way a Reference
// would if one were defined.
type NatType struct{}

func (NatType) Ty() term.Term { return term.Universe{} }

func (NatType) Apply(term.Term) (term.Term, error) {
	return nil, fmt.Errorf("primitive: Nat is a type, not a function")
}

func (NatType) String() string { return "Nat" }

// natType is the term naming NatType, used wherever a Nat-typed
// Function's ArgumentType or ReturnType is built.
var natType = term.Primitive{Value: NatType{}}

// Nat is a fully reduced natural number value.
type Nat struct {
	N uint64
}

func (Nat) Ty() term.Term { return natType }

func (Nat) Apply(term.Term) (term.Term, error) {
	return nil, fmt.Errorf("primitive: Nat value is not callable")
}

func (n Nat) String() string { return fmt.Sprintf("%d", n.N) }

func wrapNat(n uint64) term.Term { return term.Primitive{Value: Nat{N: n}} }

// asNat weak-normalizes t against an empty definitions table (the
// primitive has no access to whatever table the caller is checking
// or reducing against; it only ever needs to see t's own head
// normal form) and reports whether it is a Nat.
func asNat(t term.Term) (Nat, bool, error) {
	v, err := reduce.WeakNormalize(t, defs.Empty{})
	if err != nil {
		return Nat{}, false, err
	}
	p, ok := v.(term.Primitive)
	if !ok {
		return Nat{}, false, nil
	}
	n, ok := p.Value.(Nat)
	return n, ok, nil
}

// stuck reconstructs `fn argument` unevaluated, for a primitive whose
// argument did not reduce to the shape it expects.
func stuck(fn term.PrimitiveValue, argument term.Term) term.Term {
	return term.Apply{Function: term.Primitive{Value: fn}, Argument: argument}
}

// Succ is the successor function, `Nat -> Nat`.
type Succ struct{}

func (Succ) Ty() term.Term {
	return term.Function{ArgumentType: natType, ReturnType: natType}
}

func (s Succ) Apply(argument term.Term) (term.Term, error) {
	n, ok, err := asNat(argument)
	if err != nil {
		return nil, err
	}
	if !ok {
		return stuck(s, argument), nil
	}
	return wrapNat(n.N + 1), nil
}

func (Succ) String() string { return "succ" }

// Add is curried: applying it to one Nat yields an addPartial closed
// over that left operand; applying that to a second Nat yields the
// sum.
type Add struct{}

func (Add) Ty() term.Term {
	return term.Function{
		ArgumentType: natType,
		ReturnType:   term.Function{ArgumentType: natType, ReturnType: natType},
	}
}

func (a Add) Apply(argument term.Term) (term.Term, error) {
	n, ok, err := asNat(argument)
	if err != nil {
		return nil, err
	}
	if !ok {
		return stuck(a, argument), nil
	}
	return term.Primitive{Value: addPartial{left: n.N}}, nil
}

func (Add) String() string { return "add" }

type addPartial struct {
	left uint64
}

func (addPartial) Ty() term.Term {
	return term.Function{ArgumentType: natType, ReturnType: natType}
}

func (p addPartial) Apply(argument term.Term) (term.Term, error) {
	n, ok, err := asNat(argument)
	if err != nil {
		return nil, err
	}
	if !ok {
		return stuck(p, argument), nil
	}
	return wrapNat(p.left + n.N), nil
}

func (p addPartial) String() string { return fmt.Sprintf("(add %d)", p.left) }

// Zero is the Nat literal 0, exported for callers building term trees
// by hand.
var Zero = wrapNat(0)

// Of builds the Nat literal n.
func Of(n uint64) term.Term { return wrapNat(n) }
