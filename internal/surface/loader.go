package surface

import (
	"github.com/vic/eacore/pkg/defs"
)

// LoadDefinitions parses src as a definition file and returns a
// defs.MapDefinitions ready for pkg/check and pkg/reduce to consult.
// Typed records are stored via Define; untyped ones via DefineUntyped,
// matching pkg/defs's own distinction between a name the checker can
// assign a type to and one it can only reduce through.
func LoadDefinitions(src string) (*defs.MapDefinitions, error) {
	records, err := ParseDefinitions(src)
	if err != nil {
		return nil, err
	}

	out := defs.NewMapDefinitions()
	for name, r := range records {
		if r.HasType {
			out.Define(name, r.Value, r.Type)
		} else {
			out.DefineUntyped(name, r.Value)
		}
	}
	return out, nil
}
