package typesystem

import "errors"

// The checker reports exactly three error kinds. The texts are part of
// the session protocol: the driver prints them verbatim after "Error: ".
var (
	// ErrType covers malformed commands, unparseable type tokens and
	// call arity or argument type mismatches.
	ErrType = errors.New("Type Error")

	// ErrUndeclaredFunction reports a call to a name absent from the
	// function registry.
	ErrUndeclaredFunction = errors.New("Undeclared Function")

	// ErrUndeclaredVariable reports a name that is neither a declared
	// variable nor, for show, a declared function.
	ErrUndeclaredVariable = errors.New("Undeclared Variable")
)
