// Package cli implements the interactive session loop: it reads one line
// at a time, feeds it to the interpreter, and renders results or errors.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/tycalc/internal/config"
	"github.com/funvibe/tycalc/internal/environment"
	"github.com/funvibe/tycalc/internal/interpreter"
)

// Session drives one type-checking session over a pair of streams. It
// owns its Environment for its whole lifetime.
type Session struct {
	// ID tags the session in debug output.
	ID string

	Env *environment.Environment

	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	interactive bool
}

// NewSession wires a session to the given streams. The prompt is off by
// default; enable it with Interactive.
func NewSession(env *environment.Environment, in io.Reader, out, errOut io.Writer) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Env:    env,
		in:     in,
		out:    out,
		errOut: errOut,
	}
}

// Interactive controls whether the prompt is printed before each line.
func (s *Session) Interactive(on bool) {
	s.interactive = on
}

// Run reads lines until EOF or a quit sentinel. Command errors are
// rendered and the loop continues; only a read failure ends the session
// abnormally.
func (s *Session) Run() error {
	if debug() {
		fmt.Fprintf(s.errOut, "session %s started\n", s.ID)
	}

	scanner := bufio.NewScanner(s.in)
	for {
		if s.interactive {
			fmt.Fprint(s.out, config.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if isQuitWord(line) {
			break
		}

		result, err := interpreter.Process(s.Env, line)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %s\n", err)
			continue
		}
		if result != "" {
			fmt.Fprintln(s.out, result)
		}
	}

	if debug() {
		fmt.Fprintf(s.errOut, "session %s ended\n", s.ID)
	}
	return scanner.Err()
}

// Run starts a session on the standard streams, prompting only when
// stdin is a terminal.
func Run(env *environment.Environment) error {
	s := NewSession(env, os.Stdin, os.Stdout, os.Stderr)
	s.Interactive(isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
	return s.Run()
}

func isQuitWord(line string) bool {
	for _, word := range config.QuitWords {
		if line == word {
			return true
		}
	}
	return false
}

func debug() bool {
	return os.Getenv(config.DebugEnvVar) == "1"
}
