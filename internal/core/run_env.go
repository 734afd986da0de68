package core

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// defaultColumns is the help width used when the terminal size is unknown.
const defaultColumns = 80

// RunEnv abstracts the runtime environment for testing. Production code uses
// OsEnv; tests use ExecuteEnv to capture the emitted script.
type RunEnv interface {
	Args() []string
	// Stdout is where the emitted shell script goes.
	Stdout() io.Writer
	// Stderr is where debug traces go, so the script stream stays clean.
	Stderr() io.Writer
	// TerminalColumns returns the width for help wrapping.
	TerminalColumns() int
	// InteractiveStdout reports whether stdout is a terminal, which selects
	// direct styled help rendering over the pager script form.
	InteractiveStdout() bool
}

// OsEnv is the production RunEnv backed by the real process environment.
type OsEnv struct{}

// NewOsEnv returns a RunEnv backed by os.Args, os.Stdout, and os.Stderr.
func NewOsEnv() *OsEnv {
	return &OsEnv{}
}

// Args returns the process arguments.
func (e *OsEnv) Args() []string {
	return os.Args
}

// Stdout returns the process stdout.
func (e *OsEnv) Stdout() io.Writer {
	return os.Stdout
}

// Stderr returns the process stderr.
func (e *OsEnv) Stderr() io.Writer {
	return os.Stderr
}

// TerminalColumns probes the stdout terminal width, falling back to 80.
func (e *OsEnv) TerminalColumns() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		return defaultColumns
	}

	return cols
}

// InteractiveStdout reports whether stdout is a terminal.
func (e *OsEnv) InteractiveStdout() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ExecuteEnv is a RunEnv implementation that captures output for testing.
type ExecuteEnv struct {
	args   []string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// NewExecuteEnv returns a RunEnv that captures output for testing. Args
// should include the program name as the first element.
func NewExecuteEnv(args []string) *ExecuteEnv {
	return &ExecuteEnv{args: args}
}

// Args returns the configured arguments.
func (e *ExecuteEnv) Args() []string {
	return e.args
}

// Stdout returns the captured stdout buffer.
func (e *ExecuteEnv) Stdout() io.Writer {
	return &e.stdout
}

// Stderr returns the captured stderr buffer.
func (e *ExecuteEnv) Stderr() io.Writer {
	return &e.stderr
}

// TerminalColumns returns a fixed width for deterministic wrapping.
func (e *ExecuteEnv) TerminalColumns() int {
	return defaultColumns
}

// InteractiveStdout is always false for test environments.
func (e *ExecuteEnv) InteractiveStdout() bool {
	return false
}

// Output returns the captured script output.
func (e *ExecuteEnv) Output() string {
	return e.stdout.String()
}

// ErrorOutput returns the captured debug/trace output.
func (e *ExecuteEnv) ErrorOutput() string {
	return e.stderr.String()
}

// ExitError carries the process exit code for a completed-with-failure run.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
