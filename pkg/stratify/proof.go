package stratify

import (
	"go.uber.org/zap"

	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/diag"
	"github.com/vic/eacore/pkg/term"
)

// Proof is a term bundled with evidence that it passed IsStratified
// against a particular definitions table. It is the only way to
// obtain a value pkg/compile's net builder will accept, so "this term
// compiles to a net" and "this term terminates" are the same proof by
// construction rather than a check the compiler has to repeat.
type Proof struct {
	term term.Term
	defs defs.Definitions
}

// Prove checks t against d and, on success, returns a Proof wrapping
// both.
func Prove(t term.Term, d defs.Definitions) (Proof, error) {
	if err := IsStratified(t, d); err != nil {
		diag.L().Debug("stratification rejected", zap.Error(err), zap.Stringer("term", t))
		return Proof{}, err
	}
	return Proof{term: t, defs: d}, nil
}

// Term returns the proven term.
func (p Proof) Term() term.Term { return p.term }

// Definitions returns the definitions table the proof was checked
// against.
func (p Proof) Definitions() defs.Definitions { return p.defs }
