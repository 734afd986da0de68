// Package emit renders resolved argument values as shell text on stdout:
// variable assignments for the calling script to eval, and error scripts
// that surface failures to both the terminal and the eval'ing shell.
package emit

import (
	"fmt"
	"io"
	"strconv"

	"mvdan.cc/sh/v3/syntax"

	"github.com/Hounshell/argparse-sh/internal/argdef"
)

// Options controls how assignments are written.
type Options struct {
	// Prefix is prepended to every variable name.
	Prefix string
	// Export emits `export NAME=...` so values reach child processes.
	Export bool
}

// Assignments writes one shell assignment per resolved spec, in declaration
// order. Repeated specs emit a count under the bare name plus one indexed
// assignment per value; unresolved specs fall back to their default or are
// omitted entirely.
func Assignments(w io.Writer, specs []*argdef.Spec, values map[string][]string, opts Options) error {
	for _, spec := range specs {
		got, ok := values[spec.Name]

		switch {
		case ok && spec.Repeated:
			if err := assignment(w, opts, spec.Name, strconv.Itoa(len(got))); err != nil {
				return err
			}

			for i, value := range got {
				name := fmt.Sprintf("%s_%d", spec.Name, i)
				if err := assignment(w, opts, name, value); err != nil {
					return err
				}
			}
		case ok:
			if err := assignment(w, opts, spec.Name, got[0]); err != nil {
				return err
			}
		case spec.Default != nil:
			if err := assignment(w, opts, spec.Name, *spec.Default); err != nil {
				return err
			}
		}
	}

	return nil
}

func assignment(w io.Writer, opts Options, name, value string) error {
	export := ""
	if opts.Export {
		export = "export "
	}

	_, err := fmt.Fprintf(w, "%s%s%s=%s\n", export, opts.Prefix, name, Quote(value))
	if err != nil {
		return fmt.Errorf("writing assignment for %s: %w", name, err)
	}

	return nil
}

// ErrorScript writes a failure as shell text: echo lines carrying the
// message plus a subshell exit so an eval'ing script observes the code.
func ErrorScript(w io.Writer, message string, code int) {
	fmt.Fprintf(w, "echo %s\n", Quote(""))
	fmt.Fprintf(w, "echo %s\n", Quote(fmt.Sprintf("!!! ArgParse-sh Error: %s !!!", message)))
	fmt.Fprintf(w, "echo %s\n", Quote(""))
	fmt.Fprintf(w, "( exit %d )\n", code)
}

// ExitLine writes the trailing subshell exit used after help output.
func ExitLine(w io.Writer, code int) {
	fmt.Fprintf(w, "( exit %d )\n", code)
}

// Quote shell-quotes a value so it survives eval unchanged. Values that
// cannot be represented (embedded NUL) degrade to a plain double-quoted
// form rather than aborting output.
func Quote(value string) string {
	quoted, err := syntax.Quote(value, syntax.LangBash)
	if err != nil {
		return "\"" + value + "\""
	}

	return quoted
}
