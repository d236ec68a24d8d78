package reduce

import (
	"github.com/vic/eacore/pkg/alloc"
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/term"
)

// Normalize computes t's full normal form: like WeakNormalize, but once
// the head is a value its subterms are normalized too, and the
// erasure rule collapses erased Lambdas and erased Applies.
func Normalize(t term.Term, d defs.Definitions) (term.Term, error) {
	return NormalizeWith(alloc.System{}, t, d, false)
}

// NormalizeErased is Normalize run with boxes (Put/Duplicate) treated
// as identity throughout, matching WeakNormalizeErased.
func NormalizeErased(t term.Term, d defs.Definitions) (term.Term, error) {
	return NormalizeWith(alloc.System{}, t, d, true)
}

// NormalizeWith is Normalize/NormalizeErased parameterized over the
// copying allocator, mirroring WeakNormalizeWith.
func NormalizeWith(a alloc.Allocator, t term.Term, d defs.Definitions, erased bool) (term.Term, error) {
	v, err := WeakNormalizeWith(a, t, d, erased)
	if err != nil {
		return nil, err
	}

	switch x := v.(type) {
	case term.Lambda:
		body, err := NormalizeWith(a, x.Body, d, erased)
		if err != nil {
			return nil, err
		}
		if x.Erased {
			return term.SubstituteTop(body, term.Variable{Index: 0}), nil
		}
		return term.Lambda{Body: body, Erased: x.Erased}, nil

	case term.Apply:
		fn, err := NormalizeWith(a, x.Function, d, erased)
		if err != nil {
			return nil, err
		}
		if x.Erased {
			return fn, nil
		}
		arg, err := NormalizeWith(a, x.Argument, d, erased)
		if err != nil {
			return nil, err
		}
		return term.Apply{Function: fn, Argument: arg, Erased: x.Erased}, nil

	case term.Put:
		inner, err := NormalizeWith(a, x.Term, d, erased)
		if err != nil {
			return nil, err
		}
		return term.Put{Term: inner}, nil

	case term.Duplicate:
		expr, err := NormalizeWith(a, x.Expression, d, erased)
		if err != nil {
			return nil, err
		}
		body, err := NormalizeWith(a, x.Body, d, erased)
		if err != nil {
			return nil, err
		}
		return term.Duplicate{Expression: expr, Body: body}, nil

	case term.Function:
		argTy, err := NormalizeWith(a, x.ArgumentType, d, erased)
		if err != nil {
			return nil, err
		}
		retTy, err := NormalizeWith(a, x.ReturnType, d, erased)
		if err != nil {
			return nil, err
		}
		return term.Function{ArgumentType: argTy, ReturnType: retTy, Erased: x.Erased}, nil

	case term.Wrap:
		inner, err := NormalizeWith(a, x.Term, d, erased)
		if err != nil {
			return nil, err
		}
		return term.Wrap{Term: inner}, nil

	default:
		return v, nil
	}
}
