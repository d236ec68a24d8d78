// Package defs supplies the global definitions table consulted by the
// normalizer (Reference lookup), the stratification checker
// (recursion detection) and the type checker (typed Reference lookup).
// It is factored out of all three so none of them has to depend on a
// concrete map type: the normalizer only ever needs a value, the
// checker needs a value and a declared type, and a definitions set can
// be backed by anything — a map, a database, a lazily-parsed file.
package defs

import "github.com/vic/eacore/pkg/term"

// Definitions resolves a global name to its value term. Normalization
// and stratification's recursion check both only need this half of the
// capability.
type Definitions interface {
	Get(name string) (term.Term, bool)
}

// TypedDefinitions additionally carries each definition's declared
// type, as required by the checker's Reference rule.
type TypedDefinitions interface {
	Definitions
	GetTyped(name string) (value, ty term.Term, ok bool)
}

// entry pairs a definition's value with its declared type.
type entry struct {
	value term.Term
	ty    term.Term
}

// MapDefinitions is the map-backed TypedDefinitions implementation
// used by the CLI and by tests: a name table loaded once from a
// definition file (see internal/surface) or built up programmatically.
type MapDefinitions struct {
	entries map[string]entry
}

// NewMapDefinitions creates an empty table.
func NewMapDefinitions() *MapDefinitions {
	return &MapDefinitions{entries: make(map[string]entry)}
}

// Define adds or replaces a typed definition.
func (m *MapDefinitions) Define(name string, value, ty term.Term) {
	m.entries[name] = entry{value: value, ty: ty}
}

// DefineUntyped adds a definition with no declared type; GetTyped on
// such a name reports ok=false even though Get succeeds.
func (m *MapDefinitions) DefineUntyped(name string, value term.Term) {
	m.entries[name] = entry{value: value, ty: nil}
}

// Get implements Definitions.
func (m *MapDefinitions) Get(name string) (term.Term, bool) {
	e, ok := m.entries[name]
	return e.value, ok
}

// GetTyped implements TypedDefinitions. A present but untyped entry
// reports ok=false, matching the checker's UnboundReference treatment
// of names it cannot assign a type to.
func (m *MapDefinitions) GetTyped(name string) (term.Term, term.Term, bool) {
	e, ok := m.entries[name]
	if !ok || e.ty == nil {
		return nil, nil, false
	}
	return e.value, e.ty, true
}

// Names returns every defined name, for diagnostics and tests.
func (m *MapDefinitions) Names() []string {
	names := make([]string, 0, len(m.entries))
	for n := range m.entries {
		names = append(names, n)
	}
	return names
}

var (
	_ Definitions      = (*MapDefinitions)(nil)
	_ TypedDefinitions = (*MapDefinitions)(nil)
)

// Empty never resolves any name. It stands in for "without expanding
// definitions" steps of the equality algorithm (spec.md's §4.E step 1
// and the fast structural pre-check at step 2), which weak-normalize
// against a reference set that leaves every Reference stuck.
type Empty struct{}

// Get implements Definitions, always reporting not-found.
func (Empty) Get(string) (term.Term, bool) { return nil, false }

var _ Definitions = Empty{}
