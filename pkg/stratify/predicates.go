// Package stratify implements the affine-use and box-level discipline
// that guarantees strong normalization (component F): three predicates
// over a term — Uses, BoxedNTimes, Recursive — composed into
// IsStratified, plus the weaker IsSound check used for compiled-away
// type-level terms.
package stratify

import (
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/term"
)

// Uses counts the free occurrences of index i within t. An erased
// Apply's argument contributes zero, since it is dropped before the
// term ever runs.
func Uses(t term.Term, i term.Index) int {
	switch v := t.(type) {
	case term.Variable:
		if v.Index == i {
			return 1
		}
		return 0
	case term.Lambda:
		return Uses(v.Body, i.Child())
	case term.Apply:
		n := Uses(v.Function, i)
		if !v.Erased {
			n += Uses(v.Argument, i)
		}
		return n
	case term.Put:
		return Uses(v.Term, i)
	case term.Duplicate:
		return Uses(v.Expression, i) + Uses(v.Body, i.Child())
	case term.Wrap:
		return Uses(v.Term, i)
	case term.Annotation:
		return Uses(v.Expression, i) + Uses(v.Type, i)
	default:
		return 0
	}
}

// BoxedNTimes reports whether every free occurrence of i within t sits
// under exactly n Put nodes on its path to the root. Reference,
// Universe and Function short-circuit to true without being inspected,
// so occurrences inside a Function's argument or return type are not
// checked.
func BoxedNTimes(t term.Term, i term.Index, n int) bool {
	return boxedNTimes(t, i, n, 0)
}

func boxedNTimes(t term.Term, i term.Index, n, current int) bool {
	switch v := t.(type) {
	case term.Reference, term.Universe, term.Function:
		return true
	case term.Variable:
		return v.Index != i || n == current
	case term.Lambda:
		return boxedNTimes(v.Body, i.Child(), n, current)
	case term.Apply:
		if !boxedNTimes(v.Function, i, n, current) {
			return false
		}
		if v.Erased {
			return true
		}
		return boxedNTimes(v.Argument, i, n, current)
	case term.Put:
		return boxedNTimes(v.Term, i, n, current+1)
	case term.Duplicate:
		return boxedNTimes(v.Expression, i, n, current) && boxedNTimes(v.Body, i.Child(), n, current)
	case term.Wrap:
		return boxedNTimes(v.Term, i, n, current)
	case term.Annotation:
		return boxedNTimes(v.Expression, i, n, current)
	default:
		return true
	}
}

// Recursive performs a DFS from t through References, tracking the set
// of names visited along the current path, and reports whether a
// cycle exists. Erased Apply arguments and erased Function types are
// not traversed, since a cycle hidden only behind erasure can never
// actually loop at runtime.
func Recursive(t term.Term, d defs.Definitions) bool {
	return recursive(t, d, map[string]bool{})
}

func recursive(t term.Term, d defs.Definitions, visited map[string]bool) bool {
	switch v := t.(type) {
	case term.Reference:
		if visited[v.Name] {
			return true
		}
		value, ok := d.Get(v.Name)
		if !ok {
			return false
		}
		next := make(map[string]bool, len(visited)+1)
		for k := range visited {
			next[k] = true
		}
		next[v.Name] = true
		return recursive(value, d, next)
	case term.Lambda:
		return recursive(v.Body, d, visited)
	case term.Apply:
		if recursive(v.Function, d, visited) {
			return true
		}
		if v.Erased {
			return false
		}
		return recursive(v.Argument, d, visited)
	case term.Put:
		return recursive(v.Term, d, visited)
	case term.Duplicate:
		return recursive(v.Expression, d, visited) || recursive(v.Body, d, visited)
	case term.Function:
		if v.Erased {
			return false
		}
		return recursive(v.ArgumentType, d, visited) || recursive(v.ReturnType, d, visited)
	case term.Annotation:
		return recursive(v.Expression, d, visited)
	case term.Wrap:
		return recursive(v.Term, d, visited)
	default:
		return false
	}
}
