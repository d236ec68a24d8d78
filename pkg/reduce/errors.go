// Package reduce implements the normalizer (component D): weak-head,
// full, and erased-mode reduction over pkg/term values, grounded on
// the shift/substitute primitives in pkg/term and consulting a
// pkg/defs.Definitions table for Reference lookups.
package reduce

import "fmt"

// InvalidDuplicationError is raised when a Duplicate closes over an
// expression that weak-normalizes to an irreducible Lambda — a value
// that was never wrapped in a box, so there is nothing to unbox.
type InvalidDuplicationError struct{}

func (InvalidDuplicationError) Error() string {
	return "reduce: duplicate closed over a lambda that is not boxed"
}

// InvalidApplicationError is raised when an Apply's function position
// weak-normalizes to a Put — a box can never be called.
type InvalidApplicationError struct{}

func (InvalidApplicationError) Error() string {
	return "reduce: applied a put (box) as a function"
}

// primitiveApplyError wraps a failure returned by a PrimitiveValue's
// own Apply rule so callers can tell host-primitive errors apart from
// the two structural ones above.
type primitiveApplyError struct {
	err error
}

func (e primitiveApplyError) Error() string {
	return fmt.Sprintf("reduce: primitive application failed: %s", e.err)
}

func (e primitiveApplyError) Unwrap() error { return e.err }
