package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition reports a caller ordering bug: serializing an entity
	// before registration, or building an action against an unregistered object.
	ErrPrecondition = errors.New("precondition violated")

	// ErrOutputExists is returned by Persist when the target path exists
	// and overwrite was not requested.
	ErrOutputExists = errors.New("output already exists")
)

// Error wraps scene failures with the offending detail.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func preconditionf(format string, args ...any) error {
	return &Error{Kind: ErrPrecondition, Msg: fmt.Sprintf(format, args...)}
}
