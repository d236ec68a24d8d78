package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/eacore/pkg/check"
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/primitive"
	"github.com/vic/eacore/pkg/reduce"
	"github.com/vic/eacore/pkg/term"
)

func TestSuccApplyIncrements(t *testing.T) {
	entry := term.Apply{
		Function: term.Primitive{Value: primitive.Succ{}},
		Argument: primitive.Of(4),
	}
	got, err := reduce.Normalize(entry, defs.Empty{})
	require.NoError(t, err)
	require.True(t, term.Equals(primitive.Of(5), got))
}

func TestSuccOnStuckArgumentReconstructsApply(t *testing.T) {
	entry := term.Apply{
		Function: term.Primitive{Value: primitive.Succ{}},
		Argument: term.Variable{Index: 0},
	}
	got, err := reduce.WeakNormalize(entry, defs.Empty{})
	require.NoError(t, err)

	apply, ok := got.(term.Apply)
	require.True(t, ok)
	require.Equal(t, term.Variable{Index: 0}, apply.Argument)
}

func TestAddCurriesToPartialThenSums(t *testing.T) {
	addTwo := term.Apply{Function: term.Primitive{Value: primitive.Add{}}, Argument: primitive.Of(2)}
	entry := term.Apply{Function: addTwo, Argument: primitive.Of(3)}

	got, err := reduce.Normalize(entry, defs.Empty{})
	require.NoError(t, err)
	require.True(t, term.Equals(primitive.Of(5), got))
}

func TestNatTypeChecksAgainstSuccSignature(t *testing.T) {
	c := check.NewChecker(defs.NewMapDefinitions())
	ty, err := c.Infer(term.Primitive{Value: primitive.Succ{}})
	require.NoError(t, err)

	fn, ok := ty.(term.Function)
	require.True(t, ok)
	require.False(t, fn.Erased)
}

func TestZeroTypesAsNat(t *testing.T) {
	c := check.NewChecker(defs.NewMapDefinitions())
	err := c.Check(primitive.Zero, term.Primitive{Value: primitive.NatType{}})
	require.NoError(t, err)
}
