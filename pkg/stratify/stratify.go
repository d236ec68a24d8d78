package stratify

import (
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/term"
)

// IsStratified reports whether t respects the affine-use and
// box-level discipline: a non-erased lambda's body uses its parameter
// at most once, at box-level 0; an erased lambda's body does not use
// its parameter at all; a duplicate's body places its bound variable
// at box-level exactly 1; and no reference cycle is reachable through
// a non-erased position.
func IsStratified(t term.Term, d defs.Definitions) error {
	switch v := t.(type) {
	case term.Lambda:
		uses := Uses(v.Body, 0)
		if v.Erased {
			if uses != 0 {
				return &Error{Kind: ErasedUsed, Term: t}
			}
		} else {
			if uses > 1 {
				return &Error{Kind: MultiplicityMismatch, Term: t}
			}
			if !BoxedNTimes(v.Body, 0, 0) {
				return &Error{Kind: AffineUsedInBox, Term: t}
			}
		}
		return IsStratified(v.Body, d)

	case term.Apply:
		if err := IsStratified(v.Function, d); err != nil {
			return err
		}
		return IsStratified(v.Argument, d)

	case term.Put:
		return IsStratified(v.Term, d)

	case term.Duplicate:
		if !BoxedNTimes(v.Body, 0, 1) {
			return &Error{Kind: DupNonUnitBoxMultiplicity, Term: t}
		}
		if err := IsStratified(v.Expression, d); err != nil {
			return err
		}
		return IsStratified(v.Body, d)

	case term.Reference:
		value, ok := d.Get(v.Name)
		if !ok {
			return &Error{Kind: UndefinedReference, Name: v.Name}
		}
		if Recursive(value, d) {
			return &Error{Kind: RecursiveDefinition, Name: v.Name, Term: t}
		}
		return IsStratified(value, d)

	case term.Variable, term.Universe, term.Primitive:
		return nil

	case term.Wrap:
		return IsStratified(v.Term, d)

	case term.Annotation:
		if err := IsStratified(v.Expression, d); err != nil {
			return err
		}
		return IsStratified(v.Type, d)

	case term.Function:
		if v.Erased {
			return nil
		}
		if err := IsStratified(v.ArgumentType, d); err != nil {
			return err
		}
		return IsStratified(v.ReturnType, d)

	default:
		return nil
	}
}

// IsSound is the weaker check intended for compiled-away type-level
// terms: it only verifies that erased parameters go unused, skipping
// the multiplicity and box-level discipline IsStratified also
// enforces.
func IsSound(t term.Term, d defs.Definitions) error {
	switch v := t.(type) {
	case term.Lambda:
		if v.Erased && Uses(v.Body, 0) != 0 {
			return &Error{Kind: ErasedUsed, Term: t}
		}
		return IsSound(v.Body, d)

	case term.Apply:
		if err := IsSound(v.Function, d); err != nil {
			return err
		}
		return IsSound(v.Argument, d)

	case term.Put:
		return IsSound(v.Term, d)

	case term.Duplicate:
		if err := IsSound(v.Expression, d); err != nil {
			return err
		}
		return IsSound(v.Body, d)

	case term.Reference:
		value, ok := d.Get(v.Name)
		if !ok {
			return nil
		}
		if Recursive(value, d) {
			return &Error{Kind: RecursiveDefinition, Name: v.Name, Term: t}
		}
		return IsSound(value, d)

	case term.Wrap:
		return IsSound(v.Term, d)

	case term.Annotation:
		if err := IsSound(v.Expression, d); err != nil {
			return err
		}
		return IsSound(v.Type, d)

	case term.Function:
		if v.Erased {
			return nil
		}
		if err := IsSound(v.ArgumentType, d); err != nil {
			return err
		}
		return IsSound(v.ReturnType, d)

	default:
		return nil
	}
}
