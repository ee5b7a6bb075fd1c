// Package prelude defines the built-in function table seeded into every
// new environment.
//
// The default table is embedded YAML. A session may start from a
// different table by pointing TYCALC_PRELUDE at a file with the same
// layout:
//
//	functions:
//	  - name: add
//	    params: [Int]
//	    returns: Int
package prelude

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/funvibe/tycalc/internal/typesystem"
	"gopkg.in/yaml.v3"
)

//go:embed prelude.yaml
var defaultTable []byte

// Function is the raw YAML form of one built-in signature.
type Function struct {
	// Name is the function name as invoked by call.
	Name string `yaml:"name"`

	// Params are the parameter type names, in order. Every shipped
	// built-in takes exactly one parameter, but the list form is
	// honored by the call checker.
	Params []string `yaml:"params"`

	// Returns is the return type name.
	Returns string `yaml:"returns"`
}

type table struct {
	Functions []Function `yaml:"functions"`
}

// Decl is a validated built-in declaration.
type Decl struct {
	Name    string
	Params  []typesystem.Type
	Returns typesystem.Type
}

// Default returns the embedded built-in table.
func Default() []Decl {
	decls, err := parse(defaultTable)
	if err != nil {
		// The embedded table ships with the binary; failing to parse it
		// is a bug, not a user error.
		panic(fmt.Sprintf("prelude: embedded table: %v", err))
	}
	return decls
}

// LoadFile reads and validates a built-in table from path.
func LoadFile(path string) ([]Decl, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prelude: %w", err)
	}
	decls, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("prelude: %s: %w", path, err)
	}
	return decls, nil
}

func parse(data []byte) ([]Decl, error) {
	var tbl table
	if err := yaml.Unmarshal(data, &tbl); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	decls := make([]Decl, 0, len(tbl.Functions))
	for i, fn := range tbl.Functions {
		if fn.Name == "" {
			return nil, fmt.Errorf("functions[%d]: missing name", i)
		}
		if seen[fn.Name] {
			return nil, fmt.Errorf("functions[%d]: duplicate name %q", i, fn.Name)
		}
		seen[fn.Name] = true

		if len(fn.Params) == 0 {
			return nil, fmt.Errorf("functions[%d] (%s): missing params", i, fn.Name)
		}
		decl := Decl{Name: fn.Name}
		for _, p := range fn.Params {
			typ, ok := typesystem.Parse(p)
			if !ok {
				return nil, fmt.Errorf("functions[%d] (%s): unknown type %q", i, fn.Name, p)
			}
			decl.Params = append(decl.Params, typ)
		}
		ret, ok := typesystem.Parse(fn.Returns)
		if !ok {
			return nil, fmt.Errorf("functions[%d] (%s): unknown type %q", i, fn.Name, fn.Returns)
		}
		decl.Returns = ret
		decls = append(decls, decl)
	}
	return decls, nil
}
