package argdef

import (
	"strconv"
	"strings"
)

// builder is the mutable draft of a spec's shared attributes. It is
// finalized into an immutable Spec once all attribute tokens are parsed.
type builder struct {
	name          string
	flags         []string
	negativeFlags []string
	defaultValue  *string
	description   string
	required      bool
	secret        bool
	repeated      bool
	catchAll      bool
	ordinals      []uint16
}

// parseAttributes pops tokens off the queue, consuming every shared
// attribute it recognizes (plus any required following value). The first
// token starting with "-" that it does not recognize is returned unconsumed
// so the caller can route it. A bare token is recorded as a flag, prefixed
// with "--" when it lacks a flag marker. Returns "" when the queue is
// exhausted.
func (b *builder) parseAttributes(q *Queue) (string, error) {
	for {
		tok, ok := q.Pop()
		if !ok {
			return "", nil
		}

		switch tok {
		case "--required":
			b.required = true
		case "--secret":
			b.secret = true
		case "--repeated", "--repeat":
			b.repeated = true
		case "--catch-all":
			b.catchAll = true
		case "--ordinal", "--order", "--ord":
			value, ok := q.Pop()
			if !ok {
				return "", Definitionf("ordinal position must be provided after --ordinal or --order or --ord")
			}

			n, err := strconv.ParseUint(value, 10, 16)
			if err != nil {
				return "", Definitionf("ordinal position must be an integer between 0 and 65,535")
			}

			b.ordinals = append(b.ordinals, uint16(n))
		case "--name":
			value, ok := q.Pop()
			if !ok {
				return "", Definitionf("name must be provided after --name")
			}

			b.name = value
		case "--default":
			value, ok := q.Pop()
			if !ok {
				return "", Definitionf("default value must be provided after --default")
			}

			b.defaultValue = &value
		case "--description", "--desc":
			value, ok := q.Pop()
			if !ok {
				return "", Definitionf("description must be provided after --desc or --description")
			}

			b.description = value
		case "--flag":
			value, ok := q.Pop()
			if !ok {
				return "", Definitionf("flag name must be provided after --flag")
			}

			b.flags = append(b.flags, value)
		default:
			if strings.HasPrefix(tok, "-") {
				return tok, nil
			}

			b.flags = append(b.flags, implicitFlag(tok))
		}
	}
}

// implicitFlag turns a bare definition token into a flag spelling:
// single-character names become short flags, everything else long flags.
func implicitFlag(tok string) string {
	if len(tok) == 1 {
		return "-" + tok
	}

	return "--" + tok
}

// build finalizes the draft into an immutable Spec, deriving the name from
// the first flag when none was given explicitly and checking that the spec
// can be set at all.
func (b *builder) build(kind Kind, options []ChoiceOption) (*Spec, error) {
	name := b.name
	if name == "" {
		switch {
		case len(b.flags) > 0:
			name = DeriveName(b.flags[0])
		case len(b.negativeFlags) > 0:
			name = DeriveName(b.negativeFlags[0])
		default:
			return nil, Definitionf("no name or flags provided for argument")
		}
	}

	settable := len(b.flags) > 0 || len(b.negativeFlags) > 0 || b.catchAll || len(b.ordinals) > 0
	if !settable {
		return nil, Definitionf("%s argument can not be set - no flags, no ordinal, and not a catch-all argument", name)
	}

	return &Spec{
		Name:          name,
		Kind:          kind,
		Flags:         b.flags,
		NegativeFlags: b.negativeFlags,
		Default:       b.defaultValue,
		Description:   b.description,
		Required:      b.required,
		Secret:        b.secret,
		Repeated:      b.repeated,
		CatchAll:      b.catchAll,
		Ordinals:      b.ordinals,
		Options:       options,
	}, nil
}

// NewBoolean parses a boolean spec's attributes off the queue. Besides the
// shared grammar it recognizes --negative-flag, registering flags that
// resolve to "false".
func NewBoolean(q *Queue) (*Spec, error) {
	b := &builder{}

	for {
		tok, err := b.parseAttributes(q)
		if err != nil {
			return nil, err
		}

		if tok == "" {
			break
		}

		if tok == "--negative-flag" {
			value, ok := q.Pop()
			if !ok {
				return nil, Definitionf("flag name must be provided after --negative-flag")
			}

			b.negativeFlags = append(b.negativeFlags, value)

			continue
		}

		q.PushFront(tok)

		break
	}

	spec, err := b.build(Boolean, nil)
	if err != nil {
		return nil, err
	}

	// Presence/absence semantics don't compose with multiplicity or
	// positional matching.
	switch {
	case spec.Repeated:
		return nil, Definitionf("boolean argument %s can not be repeated", spec.Name)
	case spec.CatchAll:
		return nil, Definitionf("boolean argument %s can not be a catch-all argument", spec.Name)
	case len(spec.Ordinals) > 0:
		return nil, Definitionf("boolean argument %s can not have ordinal positions", spec.Name)
	}

	return spec, nil
}

// NewInteger parses an integer spec's attributes off the queue.
func NewInteger(q *Queue) (*Spec, error) {
	return newPlain(Integer, q)
}

// NewFloat parses a float spec's attributes off the queue.
func NewFloat(q *Queue) (*Spec, error) {
	return newPlain(Float, q)
}

// NewString parses a string spec's attributes off the queue.
func NewString(q *Queue) (*Spec, error) {
	return newPlain(String, q)
}

func newPlain(kind Kind, q *Queue) (*Spec, error) {
	b := &builder{}

	tok, err := b.parseAttributes(q)
	if err != nil {
		return nil, err
	}

	if tok != "" {
		q.PushFront(tok)
	}

	return b.build(kind, nil)
}

// NewChoice parses a choice spec's attributes off the queue. Besides the
// shared grammar it recognizes --option (an accepted literal with an
// optional description) and --map (an alias literal and the canonical value
// it resolves to).
func NewChoice(q *Queue) (*Spec, error) {
	b := &builder{}

	var options []ChoiceOption

	for {
		tok, err := b.parseAttributes(q)
		if err != nil {
			return nil, err
		}

		if tok == "" {
			break
		}

		switch tok {
		case "--map":
			from, ok := q.Pop()
			if !ok {
				return nil, Definitionf("pair of values ({from} {to}) must be provided after --map")
			}

			to, ok := q.Pop()
			if !ok {
				return nil, Definitionf("pair of values ({from} {to}) must be provided after --map")
			}

			options = append(options, ChoiceOption{Value: from, Alias: true, MapsTo: to})
		case "--option":
			value, ok := q.Pop()
			if !ok {
				return nil, Definitionf("option must be provided after --option")
			}

			// An optional description follows unless the next token is
			// another marker.
			description, ok := q.Pop()
			if ok && strings.HasPrefix(description, "-") {
				q.PushFront(description)

				description = ""
			}

			options = append(options, ChoiceOption{Value: value, Description: description})
		default:
			q.PushFront(tok)

			spec, err := b.build(Choice, options)
			if err != nil {
				return nil, err
			}

			return spec, nil
		}
	}

	return b.build(Choice, options)
}
