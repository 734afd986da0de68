package argdef

import (
	"slices"
	"strconv"
	"strings"
)

// matchKind classifies a flag-match attempt.
type matchKind int

const (
	noMatch matchKind = iota
	matchBare
	matchInline
)

// flagMatch is the outcome of offering a token to a spec's flag list.
type flagMatch struct {
	kind     matchKind
	value    string // inline value, matchInline only
	negative bool   // matched one of the spec's negative flags
}

// matchFlag checks the token against the spec's flag spellings. An optional
// "=value" suffix is stripped before the name comparison; the value, if
// present, rides along in the result.
func (s *Spec) matchFlag(tok string) flagMatch {
	name, value, inline := strings.Cut(tok, "=")

	negative := false

	if !slices.Contains(s.Flags, name) {
		if !slices.Contains(s.NegativeFlags, name) {
			return flagMatch{kind: noMatch}
		}

		negative = true
	}

	if inline {
		return flagMatch{kind: matchInline, value: value, negative: negative}
	}

	return flagMatch{kind: matchBare, negative: negative}
}

// Consume attempts to claim the token as an explicit flag match for this
// spec. On a match it returns the coerced value and true, pulling the value
// token off the queue when the flag was bare (booleans default to "true"
// instead). A non-matching token returns ("", false, nil).
func (s *Spec) Consume(tok string, rest *Queue) (string, bool, error) {
	m := s.matchFlag(tok)
	if m.kind == noMatch {
		return "", false, nil
	}

	if s.Kind == Boolean {
		value, err := s.consumeBoolean(m)

		return value, err == nil, err
	}

	raw := m.value
	if m.kind == matchBare {
		popped, ok := rest.Pop()
		if !ok {
			return "", false, Userf("no value provided for argument %s", s.Name)
		}

		raw = popped
	}

	value, err := s.coerce(raw)
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// consumeBoolean resolves a boolean flag match. Bare flags never consume a
// value token; negative flags invert the result.
func (s *Spec) consumeBoolean(m flagMatch) (string, error) {
	if m.kind == matchBare {
		if m.negative {
			return "false", nil
		}

		return "true", nil
	}

	parsed, err := parseBoolLiteral(m.value)
	if err != nil {
		return "", Userf("non-boolean value '%s' provided for argument %s", m.value, s.Name)
	}

	if m.negative {
		parsed = !parsed
	}

	return strconv.FormatBool(parsed), nil
}

// ConsumeValue coerces a raw value for this spec, bypassing flag matching.
// The ordinal and catch-all passes use it to hand a spec a token directly.
func (s *Spec) ConsumeValue(raw string) (string, error) {
	return s.coerce(raw)
}

// coerce converts a raw string into the kind's validated representation.
// The returned string is the normalized form (re-rendered numbers), not
// necessarily the input text.
func (s *Spec) coerce(raw string) (string, error) {
	switch s.Kind {
	case Boolean:
		parsed, err := parseBoolLiteral(raw)
		if err != nil {
			return "", Userf("non-boolean value '%s' provided for argument %s", raw, s.Name)
		}

		return strconv.FormatBool(parsed), nil
	case Integer:
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", Userf("non-integer value '%s' provided for argument %s", raw, s.Name)
		}

		return strconv.FormatInt(parsed, 10), nil
	case Float:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", Userf("non-numeric value '%s' provided for argument %s", raw, s.Name)
		}

		// Shortest decimal form, never scientific notation.
		return strconv.FormatFloat(parsed, 'f', -1, 64), nil
	case String:
		return raw, nil
	case Choice:
		return s.coerceChoice(raw)
	default:
		return "", Definitionf("argument %s has unknown kind", s.Name)
	}
}

// coerceChoice looks the value up in the option table in declaration order;
// the first literal match wins. Alias entries resolve to their canonical
// value.
func (s *Spec) coerceChoice(raw string) (string, error) {
	for _, opt := range s.Options {
		if opt.Value != raw {
			continue
		}

		if opt.Alias {
			return opt.MapsTo, nil
		}

		return raw, nil
	}

	return "", Userf("value \"%s\" not recognized for argument %s", raw, s.Name)
}

// parseBoolLiteral accepts exactly "true" and "false", case-sensitive.
func parseBoolLiteral(raw string) (bool, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, strconv.ErrSyntax
	}
}
