// Package argdef defines the argument specification model: the five argument
// kinds, the shared attribute grammar that builds them, and the consumption
// protocol that matches runtime tokens and coerces their values.
package argdef

import (
	"regexp"
	"slices"
	"strings"
)

// Kind identifies one of the five argument behaviors. The set is fixed and
// closed; consumption dispatches with a switch rather than an open interface
// hierarchy.
type Kind int

// The supported argument kinds.
const (
	Boolean Kind = iota
	Integer
	Float
	String
	Choice
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "Boolean"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case String:
		return "String"
	case Choice:
		return "Choice"
	default:
		return "Unknown"
	}
}

// ChoiceOption is one entry in a choice spec's ordered option table. An
// Alias entry resolves to the canonical MapsTo value instead of the literal.
type ChoiceOption struct {
	Value       string
	Alias       bool
	MapsTo      string
	Description string
}

// Spec is one declared argument's full definition. Specs are built once from
// the definition token stream and held immutably for the rest of the run.
type Spec struct {
	Name          string
	Kind          Kind
	Flags         []string
	NegativeFlags []string // boolean only; matching one resolves to "false"
	Default       *string
	Description   string
	Required      bool
	Secret        bool
	Repeated      bool
	CatchAll      bool
	Ordinals      []uint16
	Options       []ChoiceOption // choice only
}

// HasOrdinal reports whether the spec accepts a value at the given position
// in the stream of non-flag tokens.
func (s *Spec) HasOrdinal(n uint16) bool {
	return slices.Contains(s.Ordinals, n)
}

// DebugString returns a terse one-line representation for trace output.
func (s *Spec) DebugString() string {
	var b strings.Builder

	b.WriteString("type: ")
	b.WriteString(s.Kind.String())
	b.WriteString("; name: ")
	b.WriteString(s.Name)
	b.WriteString("; flags: ")
	b.WriteString(strings.Join(s.Flags, ", "))

	if len(s.NegativeFlags) > 0 {
		b.WriteString("; negative flags: ")
		b.WriteString(strings.Join(s.NegativeFlags, ", "))
	}

	if s.Required {
		b.WriteString("; required")
	}

	if s.Repeated {
		b.WriteString("; repeated")
	}

	if s.Secret {
		b.WriteString("; secret")
	}

	if s.CatchAll {
		b.WriteString("; catch-all")
	}

	if s.Default != nil {
		b.WriteString("; default: ")
		b.WriteString(*s.Default)
	}

	if s.Description != "" {
		b.WriteString("; description: ")
		b.WriteString(s.Description)
	}

	if len(s.Options) > 0 {
		b.WriteString("; options: ")

		for i, opt := range s.Options {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(opt.Value)

			if opt.Alias {
				b.WriteString(" -> ")
				b.WriteString(opt.MapsTo)
			}
		}
	}

	return b.String()
}

var namePartPattern = regexp.MustCompile(`[a-zA-Z0-9]+`)

// DeriveName converts a flag spelling into a variable name: alphanumeric
// runs joined with underscores, upper-cased. "--dry-run" becomes "DRY_RUN".
func DeriveName(flag string) string {
	parts := namePartPattern.FindAllString(flag, -1)

	return strings.ToUpper(strings.Join(parts, "_"))
}
