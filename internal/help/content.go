// Package help renders argument specifications as human-readable text, in
// two forms: a shell script that pages itself through $PAGER (for output
// that will be eval'd), and a directly styled rendering for when stdout is
// a terminal.
package help

import (
	"fmt"
	"strings"

	"github.com/Hounshell/argparse-sh/internal/argdef"
)

// Program bundles everything the formatter needs: the metadata declared in
// the definition stream and the full spec list.
type Program struct {
	Name        string
	Summary     string
	Description string
	Columns     int
	Specs       []*argdef.Spec
}

// Detail is one block of a spec's help body: a paragraph or a bulleted
// list item.
type Detail struct {
	Text     string
	ListItem bool
}

// FlagUsages returns the display form of each flag spelling for a spec.
// Booleans show the optional inline value; every other kind shows a value
// placeholder derived from the spec name.
func FlagUsages(spec *argdef.Spec) []string {
	var usages []string

	if spec.Kind == argdef.Boolean {
		for _, flag := range spec.Flags {
			usages = append(usages, flag+"[=<true|false>]")
		}

		for _, flag := range spec.NegativeFlags {
			usages = append(usages, flag+"[=<true|false>]")
		}

		return usages
	}

	placeholder := strings.ToLower(spec.Name)
	for _, flag := range spec.Flags {
		usages = append(usages, fmt.Sprintf("%s <%s>", flag, placeholder))
	}

	return usages
}

// Details returns the body blocks for a spec: its description, plus the
// option table for choice specs.
func Details(spec *argdef.Spec) []Detail {
	description := spec.Description
	if description == "" {
		description = "No details available."
	}

	details := []Detail{{Text: description}}

	if spec.Kind != argdef.Choice {
		return details
	}

	details = append(details, Detail{Text: "The possible options are:"})

	for _, opt := range spec.Options {
		body := opt.Description

		switch {
		case opt.Alias:
			body = fmt.Sprintf("Identical to '%s'", opt.MapsTo)
		case body == "":
			body = "No details available."
		}

		details = append(details, Detail{Text: fmt.Sprintf("%s - %s", opt.Value, body), ListItem: true})
	}

	return details
}

// DefaultSentence returns the trailing default-behavior sentence for a spec,
// or "" when there is nothing to say.
func DefaultSentence(spec *argdef.Spec) string {
	if spec.Kind == argdef.Boolean {
		return "When this option is not provided it will default to false. " +
			"If provided without a value it will be set to true."
	}

	if spec.Default == nil {
		return ""
	}

	return fmt.Sprintf("When this option is not provided it will default to '%s'.", *spec.Default)
}
