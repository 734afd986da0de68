// Package core orchestrates a run: it parses the definition token stream
// into specs and global settings, drives resolution and validation, and
// hands the results to the emitters.
package core

import (
	"strconv"

	"github.com/Hounshell/argparse-sh/internal/argdef"
)

// Settings is everything the definition stream declared: the ordered spec
// list, the global output/help knobs, and the runtime tokens left after the
// "--" terminator. Built once, then immutable for the run.
type Settings struct {
	Specs              []*argdef.Spec
	Prefix             string
	Export             bool
	Debug              bool
	AutoHelp           bool
	HelpFunction       string
	ProgramName        string
	ProgramSummary     string
	ProgramDescription string
	Columns            int
	Rest               []string
}

// ParseSettings reads the full definition token stream (args includes the
// program name at index 0) up to the "--" terminator or end of input.
// Kind markers dispatch to the argdef constructors; everything else must be
// a recognized global setting.
func ParseSettings(args []string, columns int) (*Settings, error) {
	q := argdef.NewQueue(args)
	q.Pop() // program name

	settings := &Settings{Columns: columns}

	for {
		tok, ok := q.Pop()
		if !ok || tok == "--" {
			break
		}

		var err error

		switch tok {
		case "--boolean", "--bool":
			err = settings.addSpec(argdef.NewBoolean(q))
		case "--integer", "--int":
			err = settings.addSpec(argdef.NewInteger(q))
		case "--float", "--number":
			err = settings.addSpec(argdef.NewFloat(q))
		case "--string", "--str":
			err = settings.addSpec(argdef.NewString(q))
		case "--choice", "--pick":
			err = settings.addSpec(argdef.NewChoice(q))
		case "--autohelp", "--auto-help":
			settings.AutoHelp = true
		case "--help-function":
			settings.HelpFunction, err = popValue(q, "help function name must be provided after --help-function")
		case "--columns", "--cols":
			err = settings.parseColumns(q)
		case "--program-name":
			settings.ProgramName, err = popValue(q, "program name must be provided after --program-name")
		case "--program-summary":
			settings.ProgramSummary, err = popValue(q, "program summary must be provided after --program-summary")
		case "--program-description":
			settings.ProgramDescription, err = popValue(q, "program description must be provided after --program-description")
		case "--export":
			settings.Export = true
		case "--prefix":
			settings.Prefix, err = popValue(q, "argument name prefix must be provided after --prefix")
		case "--debug":
			settings.Debug = true
		default:
			err = argdef.Definitionf("unrecognized option: %s", tok)
		}

		if err != nil {
			return nil, err
		}
	}

	settings.Rest = q.Rest()

	if err := checkSpecSet(settings.Specs); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *Settings) addSpec(spec *argdef.Spec, err error) error {
	if err != nil {
		return err
	}

	s.Specs = append(s.Specs, spec)

	return nil
}

func (s *Settings) parseColumns(q *argdef.Queue) error {
	value, err := popValue(q, "number of columns must be provided after --columns or --cols")
	if err != nil {
		return err
	}

	columns, convErr := strconv.Atoi(value)
	if convErr != nil || columns <= 0 {
		return argdef.Definitionf("non-numeric value '%s' provided for number of columns", value)
	}

	s.Columns = columns

	return nil
}

func popValue(q *argdef.Queue, missing string) (string, error) {
	value, ok := q.Pop()
	if !ok {
		return "", argdef.Definitionf("%s", missing)
	}

	return value, nil
}

// checkSpecSet closes the definition-time validation gaps: duplicate names
// would silently merge value lists, and a second catch-all could never
// legally receive a token.
func checkSpecSet(specs []*argdef.Spec) error {
	seen := make(map[string]bool, len(specs))
	catchAll := ""

	for _, spec := range specs {
		if seen[spec.Name] {
			return argdef.Definitionf("multiple arguments defined with name %s", spec.Name)
		}

		seen[spec.Name] = true

		if spec.CatchAll {
			if catchAll != "" {
				return argdef.Definitionf(
					"multiple catch-all arguments defined (%s and %s)", catchAll, spec.Name)
			}

			catchAll = spec.Name
		}
	}

	return nil
}
