package argdef

import "fmt"

// DefinitionError reports an invalid argument definition. The script author
// wrote a broken definition token stream; this is never caused by runtime
// input and is always fatal.
type DefinitionError struct {
	msg string
}

func (e *DefinitionError) Error() string {
	return e.msg
}

// Definitionf formats a new DefinitionError.
func Definitionf(format string, args ...any) error {
	return &DefinitionError{msg: fmt.Sprintf(format, args...)}
}

// UserError reports bad runtime input: an unparseable typed value, an
// unrecognized choice literal, an extra token with no catch-all, a missing
// required value, or multiple values without --repeated.
type UserError struct {
	msg string
}

func (e *UserError) Error() string {
	return e.msg
}

// Userf formats a new UserError.
func Userf(format string, args ...any) error {
	return &UserError{msg: fmt.Sprintf(format, args...)}
}
