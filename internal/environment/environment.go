// Package environment implements the registry of declared variable types
// and function signatures.
package environment

import (
	"github.com/funvibe/tycalc/internal/prelude"
	"github.com/funvibe/tycalc/internal/typesystem"
)

// Signature records a function's return type and its parameter types in
// declaration order.
type Signature struct {
	Return typesystem.Type
	Params []typesystem.Type
}

// Environment is the sole stateful entity of a session. A session owns
// exactly one Environment and mutates it in place from a single
// goroutine, so there is no locking.
type Environment struct {
	variables map[string]typesystem.Type
	functions map[string]Signature
}

// New returns an environment seeded with the default built-in table.
func New() *Environment {
	return NewWith(prelude.Default())
}

// NewWith returns an environment seeded from decls.
func NewWith(decls []prelude.Decl) *Environment {
	env := &Environment{
		variables: make(map[string]typesystem.Type),
		functions: make(map[string]Signature),
	}
	for _, decl := range decls {
		env.functions[decl.Name] = Signature{Return: decl.Returns, Params: decl.Params}
	}
	return env
}

// DeclareVariable records name as a variable of type t. Redeclaring a
// name overwrites its previous type.
func (e *Environment) DeclareVariable(name string, t typesystem.Type) {
	e.variables[name] = t
}

// DeclareFunction records name as a unary function from in to out,
// overwriting any prior signature, built-ins included.
func (e *Environment) DeclareFunction(name string, in, out typesystem.Type) {
	e.functions[name] = Signature{Return: out, Params: []typesystem.Type{in}}
}

// CallFunction type-checks an invocation of name with args and returns
// the declared return type. Arguments are matched positionally by
// structural equality. The registry is never modified.
func (e *Environment) CallFunction(name string, args []typesystem.Type) (typesystem.Type, error) {
	sig, ok := e.functions[name]
	if !ok {
		return "", typesystem.ErrUndeclaredFunction
	}
	if len(args) != len(sig.Params) {
		return "", typesystem.ErrType
	}
	for i, arg := range args {
		if arg != sig.Params[i] {
			return "", typesystem.ErrType
		}
	}
	return sig.Return, nil
}

// LookupVariable returns the declared type of a variable.
func (e *Environment) LookupVariable(name string) (typesystem.Type, bool) {
	t, ok := e.variables[name]
	return t, ok
}

// LookupFunction returns the declared signature of a function.
func (e *Environment) LookupFunction(name string) (Signature, bool) {
	sig, ok := e.functions[name]
	return sig, ok
}
