// Package typesystem defines the primitive types tracked by the checker
// and the errors its operations can report.
package typesystem

// Type is one of the primitive kinds the system understands. The set is
// closed: there is no subtyping and no coercion, so two types are
// compatible exactly when they are equal.
type Type string

const (
	IntType   Type = "Int"
	FloatType Type = "Float"
	BoolType  Type = "Bool"
)

func (t Type) String() string {
	return string(t)
}

// Parse maps a token to its Type. Matching is exact and case-sensitive;
// the second result reports whether the token named a known type.
func Parse(tok string) (Type, bool) {
	switch Type(tok) {
	case IntType:
		return IntType, true
	case FloatType:
		return FloatType, true
	case BoolType:
		return BoolType, true
	}
	return "", false
}
