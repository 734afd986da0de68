package core

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Hounshell/argparse-sh/internal/argdef"
	"github.com/Hounshell/argparse-sh/internal/emit"
	"github.com/Hounshell/argparse-sh/internal/help"
	"github.com/Hounshell/argparse-sh/internal/resolve"
)

// Exit codes per failure class, stable so calling scripts can distinguish
// "your definition is broken" from "the user typed something wrong".
const (
	HelpExitCode       = 1
	DefinitionExitCode = 2
	UserExitCode       = 3
)

// RunWithEnv executes one full definition-parse → resolve → validate → emit
// cycle against the given environment. Definitions are fully parsed before
// any runtime token is touched, so definition errors never interleave with
// user-input errors.
func RunWithEnv(env RunEnv) error {
	settings, err := ParseSettings(env.Args(), env.TerminalColumns())
	if err != nil {
		return fail(env, err)
	}

	logger := newLogger(env, settings.Debug)
	logSetup(logger, settings)

	if helpRequested(settings) {
		writeHelp(env, settings)

		return ExitError{Code: HelpExitCode}
	}

	values, err := resolve.Resolve(settings.Specs, settings.Rest, logger)
	if err != nil {
		return fail(env, err)
	}

	if err := resolve.Validate(settings.Specs, values); err != nil {
		return fail(env, err)
	}

	opts := emit.Options{Prefix: settings.Prefix, Export: settings.Export}
	if err := emit.Assignments(env.Stdout(), settings.Specs, values, opts); err != nil {
		return fail(env, err)
	}

	if settings.HelpFunction != "" {
		help.WriteFunction(env.Stdout(), settings.HelpFunction, program(settings))
	}

	logger.Debug("argparse completed successfully")

	return nil
}

// helpRequested reports whether auto-help is on and the runtime stream is
// exactly the help trigger token.
func helpRequested(s *Settings) bool {
	return s.AutoHelp && len(s.Rest) == 1 && s.Rest[0] == "--help"
}

// writeHelp renders help directly when stdout is a terminal, and as a
// pager script (plus the observable exit line) when the output will be
// eval'd.
func writeHelp(env RunEnv, s *Settings) {
	if env.InteractiveStdout() {
		help.Render(env.Stdout(), program(s))

		return
	}

	help.WriteScript(env.Stdout(), program(s))
	emit.ExitLine(env.Stdout(), HelpExitCode)
}

func program(s *Settings) help.Program {
	return help.Program{
		Name:        s.ProgramName,
		Summary:     s.ProgramSummary,
		Description: s.ProgramDescription,
		Columns:     s.Columns,
		Specs:       s.Specs,
	}
}

// fail reports a terminal error on the script stream and maps it to the
// process exit code for its class.
func fail(env RunEnv, err error) error {
	code := exitCode(err)
	emit.ErrorScript(env.Stdout(), err.Error(), code)

	return ExitError{Code: code}
}

func exitCode(err error) int {
	var userErr *argdef.UserError
	if errors.As(err, &userErr) {
		return UserExitCode
	}

	// Anything else is author-side: a broken definition or an internal
	// fault surfaced before runtime input was accepted.
	return DefinitionExitCode
}

// newLogger returns the debug tracer. Traces go to stderr so the emitted
// script on stdout stays clean; without --debug the logger is discarded.
func newLogger(env RunEnv, debug bool) *log.Logger {
	if !debug {
		return log.New(io.Discard)
	}

	logger := log.NewWithOptions(env.Stderr(), log.Options{Prefix: "argparse"})
	logger.SetLevel(log.DebugLevel)

	return logger
}

func logSetup(logger *log.Logger, s *Settings) {
	logger.Debug("debugging enabled with --debug flag")
	logger.Debug("output settings", "export", s.Export, "prefix", s.Prefix)

	if s.AutoHelp {
		logger.Debug("help text will be printed if '--help' is the only runtime argument")
	}

	logger.Debug("help text width", "columns", s.Columns)

	for _, spec := range s.Specs {
		logger.Debug("definition", "spec", spec.DebugString())
	}
}
