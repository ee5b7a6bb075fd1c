package main

import (
	"fmt"
	"os"

	"github.com/funvibe/tycalc/internal/config"
	"github.com/funvibe/tycalc/internal/environment"
	"github.com/funvibe/tycalc/internal/prelude"
	"github.com/funvibe/tycalc/pkg/cli"
)

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv(config.DebugEnvVar) == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	env, err := newEnvironment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if err := cli.Run(env); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// newEnvironment seeds the session environment, honoring a table
// override from TYCALC_PRELUDE. A broken override is fatal at startup,
// never mid-session.
func newEnvironment() (*environment.Environment, error) {
	path := os.Getenv(config.PreludeEnvVar)
	if path == "" {
		return environment.New(), nil
	}
	decls, err := prelude.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return environment.NewWith(decls), nil
}
