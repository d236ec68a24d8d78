package check

import (
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/equality"
	"github.com/vic/eacore/pkg/reduce"
	"github.com/vic/eacore/pkg/term"
)

// Checker holds the typed definitions table and the equality session
// consulted while comparing inferred and expected types. One Checker
// is exclusively owned by a single top-level check or infer call.
type Checker struct {
	Definitions defs.TypedDefinitions
	Equality    *equality.Checker
}

// NewChecker builds a Checker with a fresh equality cache over d.
func NewChecker(d defs.TypedDefinitions) *Checker {
	return &Checker{Definitions: d, Equality: equality.NewChecker(d)}
}

// Check verifies t against expectedTy.
func (c *Checker) Check(t, expectedTy term.Term) error {
	reduced, err := reduce.WeakNormalize(expectedTy, c.Definitions)
	if err != nil {
		return normalizationError(err)
	}

	switch v := t.(type) {
	case term.Lambda:
		fn, ok := reduced.(term.Function)
		if !ok {
			return &AnalysisError{Kind: KindNonFunctionLambda, Term: t, Ty: expectedTy}
		}
		if v.Erased != fn.Erased {
			return &AnalysisError{Kind: KindErasureMismatch, Term: t, Ty: expectedTy}
		}

		selfAnn := term.Annotation{Expression: t, Type: expectedTy, Checked: true}
		argAnn := term.Annotation{Expression: term.Variable{Index: 0}, Type: fn.ArgumentType, Checked: true}
		openedRet := term.SubstituteFunctionUnshifted(fn.ReturnType, selfAnn, argAnn)
		openedBody := term.SubstituteTopUnshifted(v.Body, argAnn)
		return c.Check(openedBody, openedRet)

	case term.Duplicate:
		exprTy, err := c.Infer(v.Expression)
		if err != nil {
			return err
		}
		exprTyWeak, err := reduce.WeakNormalize(exprTy, c.Definitions)
		if err != nil {
			return normalizationError(err)
		}
		wrap, ok := exprTyWeak.(term.Wrap)
		if !ok {
			return &AnalysisError{Kind: KindUnboxedDuplication, Term: t, Ty: exprTy}
		}

		innerAnn := term.Annotation{Expression: term.Variable{Index: 0}, Type: wrap.Term, Checked: true}
		openedBody := term.SubstituteTopUnshifted(v.Body, innerAnn)
		return c.Check(openedBody, expectedTy)

	case term.Put:
		wrap, ok := reduced.(term.Wrap)
		if !ok {
			return &AnalysisError{Kind: KindExpectedWrap, Term: t, Ty: expectedTy}
		}
		return c.Check(v.Term, wrap.Term)

	default:
		inferred, err := c.Infer(t)
		if err != nil {
			return err
		}
		eq, err := c.Equality.Equal(inferred, reduced)
		if err != nil {
			return normalizationError(err)
		}
		if !eq {
			return &AnalysisError{Kind: KindTypeError, Expected: reduced, Got: inferred}
		}
		return nil
	}
}

// Infer synthesizes t's type.
func (c *Checker) Infer(t term.Term) (term.Term, error) {
	ty, err := c.inferInner(t)
	if err != nil {
		return nil, err
	}
	return term.ExtractFromAnnotation(ty), nil
}

func (c *Checker) inferInner(t term.Term) (term.Term, error) {
	switch v := t.(type) {
	case term.Universe:
		return term.Universe{}, nil

	case term.Annotation:
		if !v.Checked {
			if err := c.Check(v.Expression, v.Type); err != nil {
				return nil, err
			}
		}
		return v.Type, nil

	case term.Reference:
		_, ty, ok := c.Definitions.GetTyped(v.Name)
		if !ok {
			return nil, &AnalysisError{Kind: KindUnboundReference, Name: v.Name}
		}
		return ty, nil

	case term.Function:
		if err := c.Check(v.ArgumentType, term.Universe{}); err != nil {
			return nil, err
		}

		selfAnn := term.Annotation{Expression: term.Variable{Index: 1}, Type: t, Checked: true}
		argAnn := term.Annotation{Expression: term.Variable{Index: 0}, Type: v.ArgumentType, Checked: true}
		openedRet := term.SubstituteFunctionUnshifted(v.ReturnType, selfAnn, argAnn)
		if err := c.Check(openedRet, term.Universe{}); err != nil {
			return nil, err
		}
		return term.Universe{}, nil

	case term.Apply:
		fnTy, err := c.Infer(v.Function)
		if err != nil {
			return nil, err
		}
		fnTyWeak, err := reduce.WeakNormalize(fnTy, c.Definitions)
		if err != nil {
			return nil, normalizationError(err)
		}
		fn, ok := fnTyWeak.(term.Function)
		if !ok {
			return nil, &AnalysisError{Kind: KindNonFunctionApplication, Term: t}
		}
		if v.Erased != fn.Erased {
			return nil, &AnalysisError{Kind: KindErasureMismatch, Term: t, Ty: fnTyWeak}
		}
		if err := c.Check(v.Argument, fn.ArgumentType); err != nil {
			return nil, err
		}

		selfAnn := term.Annotation{Expression: v.Function, Type: fnTyWeak, Checked: true}
		argAnn := term.Annotation{Expression: v.Argument, Type: fn.ArgumentType, Checked: true}
		openedRet := term.SubstituteFunctionUnshifted(fn.ReturnType, selfAnn, argAnn)
		return reduce.WeakNormalize(openedRet, c.Definitions)

	case term.Variable:
		return v, nil

	case term.Wrap:
		innerTy, err := c.Infer(v.Term)
		if err != nil {
			return nil, err
		}
		innerTyWeak, err := reduce.WeakNormalize(innerTy, c.Definitions)
		if err != nil {
			return nil, normalizationError(err)
		}
		if _, ok := innerTyWeak.(term.Universe); !ok {
			return nil, &AnalysisError{Kind: KindInvalidWrap, Term: t, Got: innerTyWeak}
		}
		return term.Universe{}, nil

	case term.Put:
		innerTy, err := c.Infer(v.Term)
		if err != nil {
			return nil, err
		}
		return term.Wrap{Term: innerTy}, nil

	case term.Primitive:
		return v.Value.Ty(), nil

	default:
		return nil, &AnalysisError{Kind: KindImpossible, Term: t}
	}
}
