package config

// Command words understood by the interpreter.
const (
	DeclareVarCommand  = "declare_var"
	DeclareFuncCommand = "declare_func"
	CallCommand        = "call"
	ShowCommand        = "show"
)

// QuitWords end the session. They are handled by the driver before the
// line reaches the interpreter.
var QuitWords = []string{"quit", "exit"}

// Prompt is printed before each line when the session is interactive.
const Prompt = "> "

// PreludeEnvVar names an optional YAML file that replaces the default
// built-in function table at session start.
const PreludeEnvVar = "TYCALC_PRELUDE"

// DebugEnvVar enables the session banner and re-panics on internal
// errors so the stack trace is visible.
const DebugEnvVar = "DEBUG"
