package stratify

import (
	"fmt"

	"github.com/vic/eacore/pkg/term"
)

// Kind distinguishes the ways a term can fail stratification.
type Kind int

const (
	// MultiplicityMismatch: a non-erased lambda's body uses its
	// parameter more than once.
	MultiplicityMismatch Kind = iota
	// AffineUsedInBox: a non-erased lambda's single use of its
	// parameter does not sit at box-level 0.
	AffineUsedInBox
	// DupNonUnitBoxMultiplicity: a duplicate's body does not place
	// its bound variable at box-level exactly 1.
	DupNonUnitBoxMultiplicity
	// RecursiveDefinition: a reference cycle was found in a
	// non-erased position.
	RecursiveDefinition
	// UndefinedReference: a Reference names no known definition.
	UndefinedReference
	// ErasedUsed: an erased lambda's body uses its (supposedly
	// compile-time-only) parameter.
	ErasedUsed
)

func (k Kind) String() string {
	switch k {
	case MultiplicityMismatch:
		return "MultiplicityMismatch"
	case AffineUsedInBox:
		return "AffineUsedInBox"
	case DupNonUnitBoxMultiplicity:
		return "DupNonUnitBoxMultiplicity"
	case RecursiveDefinition:
		return "RecursiveDefinition"
	case UndefinedReference:
		return "UndefinedReference"
	case ErasedUsed:
		return "ErasedUsed"
	default:
		return "Unknown"
	}
}

// Error reports a stratification failure.
type Error struct {
	Kind Kind
	Name string // set for UndefinedReference and RecursiveDefinition
	Term term.Term
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("stratify: %s: %s", e.Kind, e.Name)
	}
	return fmt.Sprintf("stratify: %s: %s", e.Kind, e.Term)
}
