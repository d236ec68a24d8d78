package equality

import (
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/reduce"
	"github.com/vic/eacore/pkg/term"
)

// Checker holds the definitions table and cache an equality session
// amortizes work across. One Checker is exclusively owned by a single
// top-level check or normalize call; it is not safe to share across
// concurrent invocations (spec.md §5).
type Checker struct {
	Definitions defs.Definitions
	Cache       Cache
}

// NewChecker builds a Checker with a fresh map-backed cache.
func NewChecker(d defs.Definitions) *Checker {
	return &Checker{Definitions: d, Cache: NewMapCache()}
}

// Equal reports whether a and b are equal up to reduction and
// definition expansion.
func (c *Checker) Equal(a, b term.Term) (bool, error) {
	a1, err := reduce.WeakNormalizeErased(a, defs.Empty{})
	if err != nil {
		return false, err
	}
	b1, err := reduce.WeakNormalizeErased(b, defs.Empty{})
	if err != nil {
		return false, err
	}

	h1, h2 := hashTerm(a1), hashTerm(b1)
	if h1 == h2 {
		return true, nil
	}
	if verdict, found := c.Cache.Check(h1, h2); found {
		return verdict, nil
	}

	// Register a provisional verdict before any recursive sub-goal can
	// re-ask this same (h1, h2) pair, per spec.md §4.E's ordering
	// requirement ("register... before recursive calls may issue the
	// same query"). This is what lets equal recursive references (two
	// occurrences of the same self-referential definition, say) settle
	// without looping: a sub-goal that circles back to this pair finds
	// it optimistically true rather than recursing forever. If the
	// comparison below instead lands on false, the final Register call
	// corrects the entry.
	c.Cache.Register(h1, h2, true)

	candidateA, applicable, err := c.fastPath(a1, b1)
	if err != nil {
		return false, err
	}

	// Step 4: Or(A, B) collapses to true the moment A is true, so B
	// need not be computed at all in that case — skipping it avoids
	// needlessly expanding definitions (and weak-normalizing through
	// them) when the cheap fast path already settled the question.
	var candidateB bool
	if !applicable || !candidateA {
		a2, err := reduce.WeakNormalizeErased(a1, c.Definitions)
		if err != nil {
			return false, err
		}
		b2, err := reduce.WeakNormalizeErased(b1, c.Definitions)
		if err != nil {
			return false, err
		}
		candidateB, err = c.fullCompare(a2, b2)
		if err != nil {
			return false, err
		}
	}

	verdict := candidateB
	if applicable {
		verdict = candidateA || candidateB
	}

	c.Cache.Register(h1, h2, verdict)
	return verdict, nil
}

// fastPath is step 2: a structural compare without expanding
// definitions, applicable only to the two shapes spec.md names.
// applicable reports whether a candidate was produced at all.
func (c *Checker) fastPath(a, b term.Term) (verdict bool, applicable bool, err error) {
	switch av := a.(type) {
	case term.Apply:
		bv, ok := b.(term.Apply)
		if !ok || av.Erased != bv.Erased {
			return false, false, nil
		}
		fnEq, err := c.Equal(av.Function, bv.Function)
		if err != nil {
			return false, false, err
		}
		argEq, err := c.Equal(av.Argument, bv.Argument)
		if err != nil {
			return false, false, err
		}
		return fnEq && argEq, true, nil

	case term.Reference:
		bv, ok := b.(term.Reference)
		if ok && av.Name == bv.Name {
			return true, true, nil
		}
		return false, false, nil

	default:
		return false, false, nil
	}
}

// fullCompare is step 3: a structural compare with full fan-out, run
// against terms that have already been weak-normalized with
// definitions expanded.
func (c *Checker) fullCompare(a, b term.Term) (bool, error) {
	a = term.ExtractFromAnnotation(a)
	b = term.ExtractFromAnnotation(b)

	switch av := a.(type) {
	case term.Universe:
		_, ok := b.(term.Universe)
		return ok, nil

	case term.Variable:
		bv, ok := b.(term.Variable)
		return ok && av.Index == bv.Index, nil

	case term.Reference:
		bv, ok := b.(term.Reference)
		return ok && av.Name == bv.Name, nil

	case term.Lambda:
		bv, ok := b.(term.Lambda)
		if !ok || av.Erased != bv.Erased {
			return false, nil
		}
		return c.Equal(av.Body, bv.Body)

	case term.Wrap:
		bv, ok := b.(term.Wrap)
		if !ok {
			return false, nil
		}
		return c.Equal(av.Term, bv.Term)

	case term.Put:
		bv, ok := b.(term.Put)
		if !ok {
			return false, nil
		}
		return c.Equal(av.Term, bv.Term)

	case term.Apply:
		bv, ok := b.(term.Apply)
		if !ok || av.Erased != bv.Erased {
			return false, nil
		}
		fnEq, err := c.Equal(av.Function, bv.Function)
		if err != nil || !fnEq {
			return false, err
		}
		return c.Equal(av.Argument, bv.Argument)

	case term.Duplicate:
		bv, ok := b.(term.Duplicate)
		if !ok {
			return false, nil
		}
		exprEq, err := c.Equal(av.Expression, bv.Expression)
		if err != nil || !exprEq {
			return false, err
		}
		return c.Equal(av.Body, bv.Body)

	case term.Function:
		bv, ok := b.(term.Function)
		if !ok || av.Erased != bv.Erased {
			return false, nil
		}
		argEq, err := c.Equal(av.ArgumentType, bv.ArgumentType)
		if err != nil || !argEq {
			return false, err
		}
		return c.Equal(av.ReturnType, bv.ReturnType)

	case term.Primitive:
		bv, ok := b.(term.Primitive)
		return ok && av.Value == bv.Value, nil

	default:
		return false, nil
	}
}

// Equal is a convenience entry point building a one-shot Checker. For
// repeated equality checks against the same definitions, construct a
// Checker directly and reuse its cache.
func Equal(a, b term.Term, d defs.Definitions) (bool, error) {
	return NewChecker(d).Equal(a, b)
}
