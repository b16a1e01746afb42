package runtime

import "fmt"

// TypeError reports a value used against the wrong tag, such as calling
// a non-function or using a boolean as an arithmetic operand. It is not
// recoverable from within the language.
type TypeError struct {
	Expected string
	Got      Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: expected %s, got %s", e.Expected, e.Got)
}

// UndefinedVariable reports a lookup that reached the root environment
// without a match.
type UndefinedVariable struct {
	Name string
}

func (e *UndefinedVariable) Error() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}

// InternalError reports a state reachable only through a
// grammar/evaluator mismatch. It halts evaluation like any other error
// but marks a programming error, not a user-facing condition.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Msg)
}
