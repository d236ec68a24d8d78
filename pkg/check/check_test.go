package check_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/eacore/pkg/check"
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/term"
)

// idType is the self-dependent Pi for the identity function:
// +self,arg:* *  (argument a Universe, result a Universe).
func idType() term.Term {
	return term.Function{
		ArgumentType: term.Universe{},
		ReturnType:   term.Universe{},
	}
}

func TestCheckIdentityAgainstSelfDependentPi(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	idTerm := term.Lambda{Body: term.Variable{Index: 0}}
	require.NoError(t, c.Check(idTerm, idType()))
}

func TestInferThenCheckRoundTrips(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	annotated := term.Annotation{
		Expression: term.Lambda{Body: term.Variable{Index: 0}},
		Type:       idType(),
		Checked:    false,
	}
	ty, err := c.Infer(annotated)
	require.NoError(t, err)
	require.NoError(t, c.Check(annotated.Expression, ty))
}

func TestCheckRejectsNonFunctionLambda(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	err := c.Check(term.Lambda{Body: term.Variable{Index: 0}}, term.Universe{})
	var ae *check.AnalysisError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, check.KindNonFunctionLambda, ae.Kind)
}

func TestCheckRejectsErasureMismatch(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	fn := term.Function{ArgumentType: term.Universe{}, ReturnType: term.Universe{}, Erased: true}
	lam := term.Lambda{Body: term.Variable{Index: 0}, Erased: false}

	err := c.Check(lam, fn)
	var ae *check.AnalysisError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, check.KindErasureMismatch, ae.Kind)
}

func TestInferRejectsUnboundReference(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	_, err := c.Infer(term.Reference{Name: "missing"})
	var ae *check.AnalysisError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, check.KindUnboundReference, ae.Kind)
	require.Equal(t, "missing", ae.Name)
}

func TestInferReferenceUsesDeclaredType(t *testing.T) {
	d := defs.NewMapDefinitions()
	d.Define("unit", term.Lambda{Body: term.Variable{Index: 0}}, idType())

	c := check.NewChecker(d)
	ty, err := c.Infer(term.Reference{Name: "unit"})
	require.NoError(t, err)
	require.Equal(t, idType(), ty)
}

func TestCheckRejectsTypeMismatch(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	err := c.Check(term.Universe{}, idType())
	var ae *check.AnalysisError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, check.KindTypeError, ae.Kind)
}

func TestCheckRejectsUnboxedDuplication(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	dup := term.Duplicate{
		Expression: term.Universe{},
		Body:       term.Variable{Index: 0},
	}
	err := c.Check(dup, term.Universe{})
	var ae *check.AnalysisError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, check.KindUnboxedDuplication, ae.Kind)
}

func TestCheckAcceptsBoxedDuplication(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	dup := term.Duplicate{
		Expression: term.Put{Term: term.Universe{}},
		Body:       term.Variable{Index: 0},
	}
	require.NoError(t, c.Check(dup, term.Universe{}))
}

func TestCheckRejectsPutAgainstNonWrap(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	err := c.Check(term.Put{Term: term.Universe{}}, term.Universe{})
	var ae *check.AnalysisError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, check.KindExpectedWrap, ae.Kind)
}

func TestCheckAcceptsPutAgainstWrap(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	require.NoError(t, c.Check(term.Put{Term: term.Universe{}}, term.Wrap{Term: term.Universe{}}))
}

func TestInferFunctionFormsUniverse(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	ty, err := c.Infer(idType())
	require.NoError(t, err)
	require.Equal(t, term.Universe{}, ty)
}

func TestInferApplyOpensSelfDependentReturnType(t *testing.T) {
	d := defs.NewMapDefinitions()
	d.Define("unit", term.Lambda{Body: term.Variable{Index: 0}}, idType())

	c := check.NewChecker(d)
	applied := term.Apply{
		Function: term.Reference{Name: "unit"},
		Argument: term.Universe{},
	}
	ty, err := c.Infer(applied)
	require.NoError(t, err)
	require.Equal(t, term.Universe{}, ty)
}

func TestInferRejectsNonFunctionApplication(t *testing.T) {
	d := defs.NewMapDefinitions()
	c := check.NewChecker(d)

	_, err := c.Infer(term.Apply{Function: term.Universe{}, Argument: term.Universe{}})
	var ae *check.AnalysisError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, check.KindNonFunctionApplication, ae.Kind)
}
