package typesystem

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		tok   string
		want  Type
		valid bool
	}{
		{name: "Int", tok: "Int", want: IntType, valid: true},
		{name: "Float", tok: "Float", want: FloatType, valid: true},
		{name: "Bool", tok: "Bool", want: BoolType, valid: true},
		{name: "lowercase is rejected", tok: "int", valid: false},
		{name: "uppercase is rejected", tok: "INT", valid: false},
		{name: "no trimming", tok: " Int", valid: false},
		{name: "unknown type", tok: "String", valid: false},
		{name: "empty token", tok: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.tok)
			if ok != tt.valid {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.tok, ok, tt.valid)
			}
			if tt.valid && got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	for _, typ := range []Type{IntType, FloatType, BoolType} {
		// String must round-trip through Parse.
		got, ok := Parse(typ.String())
		if !ok || got != typ {
			t.Errorf("Parse(%s.String()) = %s, %v", typ, got, ok)
		}
	}
}

func TestErrorTexts(t *testing.T) {
	// The exact texts are rendered to the user after "Error: ".
	tests := []struct {
		err  error
		want string
	}{
		{err: ErrType, want: "Type Error"},
		{err: ErrUndeclaredFunction, want: "Undeclared Function"},
		{err: ErrUndeclaredVariable, want: "Undeclared Variable"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("error text = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}
