package reduce

import (
	"github.com/vic/eacore/pkg/alloc"
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/term"
)

// WeakNormalize reduces the outermost redex of t until its head is a
// value, expanding References against d. It is not erased-aware: Put
// and Duplicate keep their box semantics even when nested inside an
// erased position elsewhere in the term.
func WeakNormalize(t term.Term, d defs.Definitions) (term.Term, error) {
	return WeakNormalizeWith(alloc.System{}, t, d, false)
}

// WeakNormalizeErased is WeakNormalize run in erased mode, where Put
// and Duplicate both collapse to identity. This is the mode the
// equality algorithm (pkg/equality) uses so that erased box structure
// never affects whether two terms are judged equal.
func WeakNormalizeErased(t term.Term, d defs.Definitions) (term.Term, error) {
	return WeakNormalizeWith(alloc.System{}, t, d, true)
}

// WeakNormalizeWith is WeakNormalize/WeakNormalizeErased parameterized
// over the allocator used to copy looked-up definitions, so a caller
// doing many lookups in a tight loop can supply an arena instead of the
// default system allocator.
func WeakNormalizeWith(a alloc.Allocator, t term.Term, d defs.Definitions, erased bool) (term.Term, error) {
	switch v := t.(type) {
	case term.Annotation:
		return WeakNormalizeWith(a, v.Expression, d, erased)

	case term.Reference:
		value, ok := d.Get(v.Name)
		if !ok {
			return v, nil
		}
		return WeakNormalizeWith(a, a.Copy(value), d, erased)

	case term.Apply:
		f, err := WeakNormalizeWith(a, v.Function, d, erased)
		if err != nil {
			return nil, err
		}
		switch fv := f.(type) {
		case term.Put:
			return nil, InvalidApplicationError{}

		case term.Duplicate:
			shiftedArg := term.Shift(v.Argument, 0)
			inner := term.Apply{Function: fv.Body, Argument: shiftedArg, Erased: v.Erased}
			return WeakNormalizeWith(a, term.Duplicate{Expression: fv.Expression, Body: inner}, d, erased)

		case term.Lambda:
			substituted := term.SubstituteTop(fv.Body, v.Argument)
			return WeakNormalizeWith(a, substituted, d, erased)

		case term.Primitive:
			if v.Erased {
				return term.Apply{Function: f, Argument: v.Argument, Erased: v.Erased}, nil
			}
			result, err := fv.Value.Apply(v.Argument)
			if err != nil {
				return nil, primitiveApplyError{err: err}
			}
			return result, nil

		default:
			return term.Apply{Function: f, Argument: v.Argument, Erased: v.Erased}, nil
		}

	case term.Put:
		if erased {
			return WeakNormalizeWith(a, v.Term, d, erased)
		}
		return v, nil

	case term.Duplicate:
		if erased {
			substituted := term.SubstituteTop(v.Body, v.Expression)
			return WeakNormalizeWith(a, substituted, d, erased)
		}

		e, err := WeakNormalizeWith(a, v.Expression, d, erased)
		if err != nil {
			return nil, err
		}
		switch ev := e.(type) {
		case term.Put:
			substituted := term.SubstituteTop(v.Body, ev.Term)
			return WeakNormalizeWith(a, substituted, d, erased)

		case term.Duplicate:
			shiftedBody := term.Shift(v.Body, 1)
			inner := term.Duplicate{Expression: ev.Body, Body: shiftedBody}
			return WeakNormalizeWith(a, term.Duplicate{Expression: ev.Expression, Body: inner}, d, erased)

		case term.Lambda:
			return nil, InvalidDuplicationError{}

		default:
			return term.Duplicate{Expression: e, Body: v.Body}, nil
		}

	default:
		return t, nil
	}
}
