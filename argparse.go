// Package argparse resolves declarative command-line argument definitions
// against runtime tokens and emits shell variable assignments for the
// calling script to eval.
//
// A script declares its arguments as a flat token stream, terminated by
// "--", followed by whatever its user typed:
//
//	eval "$(argparse \
//	  --bool verbose v \
//	  --int count c --default 1 \
//	  --choice mode m --option fast --option slow --default slow \
//	  -- "$@")"
//
// Each runtime token is resolved through three prioritized passes (explicit
// flag match, ordinal position, catch-all), coerced to its declared kind,
// validated against required/multiplicity constraints, and printed as
// VERBOSE="true"-style assignments on stdout.
package argparse

import (
	"errors"
	"os"

	"github.com/Hounshell/argparse-sh/internal/core"
)

// ExitError is returned when a run fails; Code is the process exit code
// (1 help, 2 definition error, 3 user error).
type ExitError = core.ExitError

// Run processes os.Args and exits the process on help or failure.
func Run() {
	err := core.RunWithEnv(core.NewOsEnv())
	if err == nil {
		return
	}

	var exitErr ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	os.Exit(1)
}

// ExecuteResult contains the output of an Execute run.
type ExecuteResult struct {
	// Output is the emitted shell script.
	Output string
	// Trace is the debug output, populated when --debug was set.
	Trace string
}

// Execute runs with the given args and returns results instead of exiting.
// This is useful for testing. Args should include the program name as the
// first element.
func Execute(args []string) (ExecuteResult, error) {
	env := core.NewExecuteEnv(args)
	err := core.RunWithEnv(env)

	return ExecuteResult{Output: env.Output(), Trace: env.ErrorOutput()}, err
}
