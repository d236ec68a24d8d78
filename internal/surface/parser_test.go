package surface

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/eacore/pkg/term"
)

func TestParseTermIdentity(t *testing.T) {
	got, err := ParseTerm(`\x x`)
	require.NoError(t, err)
	require.Equal(t, term.Lambda{Body: term.Variable{Index: 0}}, got)
}

func TestParseTermErasedLambda(t *testing.T) {
	got, err := ParseTerm(`\/x y`)
	require.NoError(t, err)
	want := term.Lambda{Erased: true, Body: term.Reference{Name: "y"}}
	require.Equal(t, want, got)
}

func TestParseTermApplyAndErasedApply(t *testing.T) {
	got, err := ParseTerm(`(f a)`)
	require.NoError(t, err)
	require.Equal(t, term.Apply{Function: term.Reference{Name: "f"}, Argument: term.Reference{Name: "a"}}, got)

	got, err = ParseTerm(`[f a]`)
	require.NoError(t, err)
	require.Equal(t, term.Apply{Function: term.Reference{Name: "f"}, Argument: term.Reference{Name: "a"}, Erased: true}, got)
}

func TestParseTermNestedScopeResolvesOuterBinder(t *testing.T) {
	got, err := ParseTerm(`\x \y x`)
	require.NoError(t, err)
	want := term.Lambda{Body: term.Lambda{Body: term.Variable{Index: 1}}}
	require.Equal(t, want, got)
}

func TestParseTermPut(t *testing.T) {
	got, err := ParseTerm(`.x`)
	require.NoError(t, err)
	require.Equal(t, term.Put{Term: term.Reference{Name: "x"}}, got)
}

func TestParseTermDuplicate(t *testing.T) {
	got, err := ParseTerm(`:y=x y`)
	require.NoError(t, err)
	want := term.Duplicate{Expression: term.Reference{Name: "x"}, Body: term.Variable{Index: 0}}
	require.Equal(t, want, got)
}

func TestParseTermFunctionSelfAndArgBind(t *testing.T) {
	got, err := ParseTerm(`+s,x:* x`)
	require.NoError(t, err)
	want := term.Function{ArgumentType: term.Universe{}, ReturnType: term.Variable{Index: 0}}
	require.Equal(t, want, got)

	got, err = ParseTerm(`_s,x:* s`)
	require.NoError(t, err)
	want = term.Function{ArgumentType: term.Universe{}, ReturnType: term.Variable{Index: 1}, Erased: true}
	require.Equal(t, want, got)
}

func TestParseTermAnnotationAndWrap(t *testing.T) {
	got, err := ParseTerm(`{x:*}`)
	require.NoError(t, err)
	require.Equal(t, term.Annotation{Expression: term.Reference{Name: "x"}, Type: term.Universe{}}, got)

	got, err = ParseTerm(`!*`)
	require.NoError(t, err)
	require.Equal(t, term.Wrap{Term: term.Universe{}}, got)
}

func TestParseTermVariableLiteral(t *testing.T) {
	got, err := ParseTerm(`^2`)
	require.NoError(t, err)
	require.Equal(t, term.Variable{Index: 2}, got)
}

func TestParseTermRejectsTrailingInput(t *testing.T) {
	_, err := ParseTerm(`x y`)
	require.Error(t, err)
}

func TestParseDefinitionsSkipsCommentsAndBlankLines(t *testing.T) {
	src := "- this is a header comment\n\nid = \\x x\nconst : +s,x:* +s,y:* x = \\x \\y x\n"
	defsOut, err := ParseDefinitions(src)
	require.NoError(t, err)
	require.Len(t, defsOut, 2)

	idRec, ok := defsOut["id"]
	require.True(t, ok)
	require.False(t, idRec.HasType)
	require.Equal(t, term.Lambda{Body: term.Variable{Index: 0}}, idRec.Value)

	constRec, ok := defsOut["const"]
	require.True(t, ok)
	require.True(t, constRec.HasType)
}

func TestParseDefinitionsRejectsMissingEquals(t *testing.T) {
	_, err := ParseDefinitions("id \\x x\n")
	require.Error(t, err)
}
