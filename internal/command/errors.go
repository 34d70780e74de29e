package command

import (
	"errors"
	"fmt"
)

// Error classes. Every parse error wraps exactly one of them.
var (
	// ErrFormat marks a malformed command structure.
	ErrFormat = errors.New("format error")
	// ErrValidation marks an out-of-range or unparseable field.
	ErrValidation = errors.New("validation error")
)

// Parse errors.
var (
	ErrEmptyCommand      = fmt.Errorf("%w: empty command", ErrFormat)
	ErrCommandFormat     = fmt.Errorf("%w: invalid command format", ErrFormat)
	ErrUnknownVerb       = fmt.Errorf("%w: unknown command", ErrFormat)
	ErrMissingItemData   = fmt.Errorf("%w: missing item data", ErrFormat)
	ErrMalformedItemData = fmt.Errorf("%w: malformed item data", ErrFormat)
	ErrInvalidWall       = fmt.Errorf("%w: invalid wall", ErrValidation)
	ErrInvalidChest      = fmt.Errorf("%w: invalid chest number", ErrValidation)
	ErrInvalidSlot       = fmt.Errorf("%w: invalid slot number", ErrValidation)
	ErrInvalidQuantity   = fmt.Errorf("%w: invalid quantity", ErrValidation)
)

// IsFormatError reports whether err is a structural command error.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsValidationError reports whether err is a field validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// parseError carries the user-facing message alongside the sentinel.
type parseError struct {
	kind error
	msg  string
}

func (e *parseError) Error() string { return e.msg }

func (e *parseError) Unwrap() error { return e.kind }

func fail(kind error, format string, args ...any) error {
	return &parseError{kind: kind, msg: fmt.Sprintf(format, args...)}
}
