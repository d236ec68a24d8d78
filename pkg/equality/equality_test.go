package equality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/equality"
	"github.com/vic/eacore/pkg/term"
)

func TestEqualReflexive(t *testing.T) {
	d := defs.NewMapDefinitions()
	idTerm := term.Lambda{Body: term.Variable{Index: 0}}

	eq, err := equality.Equal(idTerm, idTerm, d)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestEqualUpToReduction(t *testing.T) {
	d := defs.NewMapDefinitions()
	idTerm := term.Lambda{Body: term.Variable{Index: 0}}
	appliedToId := term.Apply{
		Function: term.Lambda{Body: term.Variable{Index: 0}},
		Argument: idTerm,
	}

	eq, err := equality.Equal(idTerm, appliedToId, d)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestEqualUpToDefinitionExpansion(t *testing.T) {
	d := defs.NewMapDefinitions()
	idTerm := term.Lambda{Body: term.Variable{Index: 0}}
	d.DefineUntyped("id", idTerm)

	eq, err := equality.Equal(term.Reference{Name: "id"}, idTerm, d)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestNotEqualDifferentShape(t *testing.T) {
	d := defs.NewMapDefinitions()
	eq, err := equality.Equal(term.Universe{}, term.Lambda{Body: term.Variable{Index: 0}}, d)
	require.NoError(t, err)
	require.False(t, eq)
}

func TestEqualIgnoresErasedBoxStructure(t *testing.T) {
	d := defs.NewMapDefinitions()
	boxed := term.Put{Term: term.Universe{}}

	eq, err := equality.Equal(boxed, term.Universe{}, d)
	require.NoError(t, err)
	require.True(t, eq, "erased-mode weak normalization should treat Put as identity")
}

func TestCacheMemoizesVerdict(t *testing.T) {
	d := defs.NewMapDefinitions()
	d.DefineUntyped("id", term.Lambda{Body: term.Variable{Index: 0}})
	checker := equality.NewChecker(d)
	a := term.Reference{Name: "id"}
	b := term.Lambda{Body: term.Variable{Index: 0}}

	first, err := checker.Equal(a, b)
	require.NoError(t, err)
	require.True(t, first)

	// Without the definition only the cached verdict can still equate
	// the two terms.
	checker.Definitions = defs.NewMapDefinitions()
	second, err := checker.Equal(a, b)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
