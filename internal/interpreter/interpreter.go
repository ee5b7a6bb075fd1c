// Package interpreter maps one line of session input onto environment
// operations and renders the canonical textual result.
//
// Each line is a self-contained transaction: tokens are split on
// whitespace, the first token selects a command, and the rest are its
// arguments. Only declare_var and declare_func mutate the environment;
// on any error path the environment is left unchanged.
package interpreter

import (
	"fmt"
	"strings"

	"github.com/funvibe/tycalc/internal/config"
	"github.com/funvibe/tycalc/internal/environment"
	"github.com/funvibe/tycalc/internal/typesystem"
)

type handler func(args []string, env *environment.Environment) (string, error)

var commands = map[string]handler{
	config.DeclareVarCommand:  declareVariable,
	config.DeclareFuncCommand: declareFunction,
	config.CallCommand:        callFunction,
	config.ShowCommand:        showDeclaration,
}

// Process runs one line against env. An all-whitespace line is a no-op
// with an empty result; an unknown command word is a type error.
func Process(env *environment.Environment, line string) (string, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", nil
	}
	h, ok := commands[tokens[0]]
	if !ok {
		return "", typesystem.ErrType
	}
	return h(tokens[1:], env)
}

func declareVariable(args []string, env *environment.Environment) (string, error) {
	if len(args) != 2 {
		return "", typesystem.ErrType
	}
	typ, ok := typesystem.Parse(args[1])
	if !ok {
		return "", typesystem.ErrType
	}
	env.DeclareVariable(args[0], typ)
	return fmt.Sprintf("%s :: %s", args[0], typ), nil
}

func declareFunction(args []string, env *environment.Environment) (string, error) {
	if len(args) != 3 {
		return "", typesystem.ErrType
	}
	in, ok := typesystem.Parse(args[1])
	if !ok {
		return "", typesystem.ErrType
	}
	out, ok := typesystem.Parse(args[2])
	if !ok {
		return "", typesystem.ErrType
	}
	env.DeclareFunction(args[0], in, out)
	return fmt.Sprintf("%s :: %s -> %s", args[0], in, out), nil
}

func callFunction(args []string, env *environment.Environment) (string, error) {
	if len(args) < 1 {
		return "", typesystem.ErrType
	}
	name := args[0]

	argTypes := make([]typesystem.Type, 0, len(args)-1)
	for _, tok := range args[1:] {
		// A bare type name models "a value of that type" and wins over a
		// variable that happens to share the name.
		if typ, ok := typesystem.Parse(tok); ok {
			argTypes = append(argTypes, typ)
			continue
		}
		typ, ok := env.LookupVariable(tok)
		if !ok {
			return "", typesystem.ErrUndeclaredVariable
		}
		argTypes = append(argTypes, typ)
	}

	ret, err := env.CallFunction(name, argTypes)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Called function %s with return type %s", name, ret), nil
}

func showDeclaration(args []string, env *environment.Environment) (string, error) {
	if len(args) != 1 {
		return "", typesystem.ErrType
	}
	name := args[0]

	// The variable entry wins when the name exists in both registries.
	if typ, ok := env.LookupVariable(name); ok {
		return fmt.Sprintf("%s :: %s", name, typ), nil
	}

	sig, ok := env.LookupFunction(name)
	if !ok {
		return "", typesystem.ErrUndeclaredVariable
	}
	params := make([]string, 0, len(sig.Params))
	for _, p := range sig.Params {
		params = append(params, p.String())
	}
	return fmt.Sprintf("%s :: %s -> %s", name, strings.Join(params, " -> "), sig.Return), nil
}
