// Package check implements the bidirectional type checker (component
// G): check and infer, mutually recursive over pkg/term values,
// resolving equality through pkg/equality and reduction through
// pkg/reduce.
package check

import (
	"fmt"

	"github.com/vic/eacore/pkg/term"
)

// Kind distinguishes AnalysisError's variants.
type Kind int

const (
	KindNormalization Kind = iota
	KindNonFunctionLambda
	KindTypeError
	KindErasureMismatch
	KindUnboundReference
	KindNonFunctionApplication
	KindUnboxedDuplication
	KindImpossible
	KindExpectedWrap
	KindInvalidWrap
)

func (k Kind) String() string {
	switch k {
	case KindNormalization:
		return "NormalizationError"
	case KindNonFunctionLambda:
		return "NonFunctionLambda"
	case KindTypeError:
		return "TypeError"
	case KindErasureMismatch:
		return "ErasureMismatch"
	case KindUnboundReference:
		return "UnboundReference"
	case KindNonFunctionApplication:
		return "NonFunctionApplication"
	case KindUnboxedDuplication:
		return "UnboxedDuplication"
	case KindImpossible:
		return "Impossible"
	case KindExpectedWrap:
		return "ExpectedWrap"
	case KindInvalidWrap:
		return "InvalidWrap"
	default:
		return "Unknown"
	}
}

// AnalysisError is the single error type check/infer return, carrying
// whichever fields its Kind needs.
type AnalysisError struct {
	Kind     Kind
	Term     term.Term
	Ty       term.Term
	Expected term.Term
	Got      term.Term
	Name     string
	Err      error // wrapped NormalizationError, for KindNormalization
}

func (e *AnalysisError) Error() string {
	switch e.Kind {
	case KindNormalization:
		return fmt.Sprintf("check: %s", e.Err)
	case KindNonFunctionLambda:
		return fmt.Sprintf("check: NonFunctionLambda: %s against %s", e.Term, e.Ty)
	case KindTypeError:
		return fmt.Sprintf("check: TypeError: expected %s, got %s", e.Expected, e.Got)
	case KindErasureMismatch:
		return fmt.Sprintf("check: ErasureMismatch: %s against %s", e.Term, e.Ty)
	case KindUnboundReference:
		return fmt.Sprintf("check: UnboundReference: %s", e.Name)
	case KindNonFunctionApplication:
		return fmt.Sprintf("check: NonFunctionApplication: %s", e.Term)
	case KindUnboxedDuplication:
		return fmt.Sprintf("check: UnboxedDuplication: %s : %s", e.Term, e.Ty)
	case KindImpossible:
		return fmt.Sprintf("check: Impossible: %s", e.Term)
	case KindExpectedWrap:
		return fmt.Sprintf("check: ExpectedWrap: %s : %s", e.Term, e.Ty)
	case KindInvalidWrap:
		return fmt.Sprintf("check: InvalidWrap: %s, got %s", e.Term, e.Got)
	default:
		return "check: unknown error"
	}
}

func (e *AnalysisError) Unwrap() error { return e.Err }

func normalizationError(err error) error {
	return &AnalysisError{Kind: KindNormalization, Err: err}
}
