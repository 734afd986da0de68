package resolve

import "github.com/Hounshell/argparse-sh/internal/argdef"

// Validate enforces the per-spec multiplicity and required constraints after
// resolution has completed. Defaults are not materialized here; a spec with
// zero values and a default is handled at emission time.
func Validate(specs []*argdef.Spec, values Values) error {
	for _, spec := range specs {
		got, ok := values[spec.Name]
		if ok {
			if !spec.Repeated && len(got) > 1 {
				return argdef.Userf("multiple values found for argument %s", spec.Name)
			}

			continue
		}

		if spec.Required {
			return argdef.Userf("value for argument %s is missing", spec.Name)
		}
	}

	return nil
}
