// Package resolve matches runtime tokens against argument specs and
// validates the accumulated values. Resolution is a single sequential pass
// over the token queue; each token is offered to the specs through three
// prioritized passes (flag, ordinal, catch-all) and the first success wins.
package resolve

import (
	"github.com/charmbracelet/log"

	"github.com/Hounshell/argparse-sh/internal/argdef"
)

// Values maps spec names to the values they accumulated, in arrival order.
// Multiplicity is enforced by Validate, not during matching.
type Values map[string][]string

// Resolve consumes the runtime tokens against the spec list. The ordinal
// counter is local to the call so resolution stays re-entrant.
func Resolve(specs []*argdef.Spec, tokens []string, logger *log.Logger) (Values, error) {
	q := argdef.NewQueue(tokens)
	values := Values{}

	var ordinal uint16

	for {
		tok, ok := q.Pop()
		if !ok {
			break
		}

		name, value, next, err := resolveToken(specs, tok, q, ordinal, values, logger)
		if err != nil {
			return nil, err
		}

		values[name] = append(values[name], value)
		ordinal = next
	}

	return values, nil
}

// resolveToken runs the three passes for one token, returning the winning
// spec's name, the coerced value, and the updated ordinal counter.
func resolveToken(
	specs []*argdef.Spec,
	tok string,
	rest *argdef.Queue,
	ordinal uint16,
	values Values,
	logger *log.Logger,
) (string, string, uint16, error) {
	// First pass handles flag cases (`--arg value` and `--arg=value`). A
	// matching spec may pull the value token off the queue.
	for _, spec := range specs {
		value, ok, err := spec.Consume(tok, rest)
		if err != nil {
			return "", "", 0, err
		}

		if ok {
			logger.Debug("resolved argument", "name", spec.Name, "value", value, "flag", tok)

			return spec.Name, value, ordinal, nil
		}
	}

	// Second pass handles ordinals: the token is handed directly to the
	// first spec bound to the current position.
	for _, spec := range specs {
		if !spec.HasOrdinal(ordinal) {
			continue
		}

		value, err := spec.ConsumeValue(tok)
		if err != nil {
			return "", "", 0, err
		}

		logger.Debug("resolved argument", "name", spec.Name, "value", value, "ordinal", ordinal)

		return spec.Name, value, ordinal + 1, nil
	}

	// Third pass hands the token to the catch-all spec, if one exists and is
	// still willing (repeated, or hasn't received a value yet). A catch-all
	// match also advances the ordinal counter: the token occupied a
	// positional slot even though no ordinal spec claimed it.
	for _, spec := range specs {
		if !spec.CatchAll {
			continue
		}

		if !spec.Repeated && len(values[spec.Name]) > 0 {
			continue
		}

		value, err := spec.ConsumeValue(tok)
		if err != nil {
			return "", "", 0, err
		}

		logger.Debug("resolved argument", "name", spec.Name, "value", value, "pass", "catch-all")

		return spec.Name, value, ordinal + 1, nil
	}

	return "", "", 0, argdef.Userf("extra argument \"%s\" passed and no catch-all argument found", tok)
}
