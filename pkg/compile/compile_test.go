package compile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/eacore/pkg/compile"
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/net"
	"github.com/vic/eacore/pkg/reduce"
	"github.com/vic/eacore/pkg/stratify"
	"github.com/vic/eacore/pkg/term"
)

// id is `\x x`.
var id = term.Lambda{Body: term.Variable{Index: 0}}

func prove(t *testing.T, tm term.Term, d defs.Definitions) stratify.Proof {
	t.Helper()
	p, err := stratify.Prove(tm, d)
	require.NoError(t, err)
	return p
}

// roundTrip builds a net for tm, reduces it to completion, reads a
// term back, and checks it normalizes to the same thing tm itself
// normalizes to — spec.md §8 invariant 5.
func roundTrip(t *testing.T, tm term.Term, d defs.Definitions) term.Term {
	t.Helper()
	proof := prove(t, tm, d)

	n, err := compile.BuildNet[uint32](proof)
	require.NoError(t, err)

	n.ReduceAll()

	got, err := compile.ReadTerm[uint32](n)
	require.NoError(t, err)

	want, err := reduce.Normalize(tm, d)
	require.NoError(t, err)

	gotNorm, err := reduce.Normalize(got, d)
	require.NoError(t, err)

	require.True(t, term.Equals(want, gotNorm), "roundtrip mismatch: want %s got %s", want, gotNorm)
	return gotNorm
}

func TestRoundTripIdentityOnIdentity(t *testing.T) {
	entry := term.Apply{Function: id, Argument: id}
	roundTrip(t, entry, defs.Empty{})
}

func TestRoundTripChurchBooleans(t *testing.T) {
	// true = \t\f t ; not = \a \t\f (a f t)
	trueT := term.Lambda{Body: term.Lambda{Body: term.Variable{Index: 1}}}
	not := term.Lambda{Body: term.Lambda{Body: term.Lambda{Body: term.Apply{
		Function: term.Apply{
			Function: term.Variable{Index: 2},
			Argument: term.Variable{Index: 0},
		},
		Argument: term.Variable{Index: 1},
	}}}}

	entry := term.Apply{Function: not, Argument: term.Apply{Function: not, Argument: trueT}}
	got := roundTrip(t, entry, defs.Empty{})

	wantNorm, err := reduce.Normalize(trueT, defs.Empty{})
	require.NoError(t, err)
	require.True(t, term.Equals(wantNorm, got))
}

func TestRoundTripUnusedParameterGetsEraser(t *testing.T) {
	// const = \x \y x
	constT := term.Lambda{Body: term.Lambda{Body: term.Variable{Index: 1}}}
	entry := term.Apply{Function: term.Apply{Function: constT, Argument: id}, Argument: id}
	roundTrip(t, entry, defs.Empty{})
}

func TestRoundTripErasedLambdaDoesNotAppearInNet(t *testing.T) {
	// \/x (\y y) — an erased outer binder whose body never mentions
	// the erased parameter; only the inner identity should reach the
	// net, as a single Delta agent standing in for the whole term.
	erased := term.Lambda{Erased: true, Body: term.Lambda{Body: term.Variable{Index: 0}}}
	d := defs.Empty{}
	proof := prove(t, erased, d)
	n, err := compile.BuildNet[uint32](proof)
	require.NoError(t, err)
	require.Equal(t, net.Root, n.Agents[n.RootPort().Address()].Type)
	require.Len(t, n.Agents, 2)
	require.Equal(t, net.Delta, n.Agents[1].Type)
}

func TestBuildNetRejectsTypedTerm(t *testing.T) {
	proof := prove(t, term.Universe{}, defs.Empty{})
	_, err := compile.BuildNet[uint32](proof)
	require.Error(t, err)

	var netErr *compile.NetError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, compile.KindTypedTerm, netErr.Kind)
}

func TestBuildNetInlinesReferences(t *testing.T) {
	d := defs.NewMapDefinitions()
	d.DefineUntyped("id", id)

	entry := term.Apply{Function: term.Reference{Name: "id"}, Argument: id}
	roundTrip(t, entry, d)
}
