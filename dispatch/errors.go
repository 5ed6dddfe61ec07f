package dispatch

import (
	"errors"
	"fmt"
)

// ErrorType represents error categories for dispatch operations. Categories
// drive help-context selection and exit-code mapping.
type ErrorType string

const (
	ErrorTypeSchema         ErrorType = "schema"
	ErrorTypeConversion     ErrorType = "conversion"
	ErrorTypeUnknownFlag    ErrorType = "unknown_flag"
	ErrorTypeMissingValue   ErrorType = "missing_value"
	ErrorTypeUnknownCommand ErrorType = "unknown_command"
	ErrorTypeHandler        ErrorType = "handler"
)

// ErrHelpShown is returned after help has been rendered voluntarily; it maps
// to exit code 0.
var ErrHelpShown = errors.New("help shown")

// SchemaError reports malformed command or flag registration. It is fatal at
// construction time; no dispatcher is returned alongside one.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return "schema: " + e.Message
}

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Message: fmt.Sprintf(format, args...)}
}

// ConversionError reports a raw token that could not be coerced to a flag's
// inferred type. It always carries the offending token.
type ConversionError struct {
	Raw  string
	Type FlagType
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s", e.Raw, e.Type)
}

// UsageError is a user-facing failure: the dispatcher prints its message and
// the help view for its scope (command-level when Command is set, overview
// otherwise), then exits 1. Handlers signal user errors by returning one,
// typically via Usagef.
type UsageError struct {
	Type       ErrorType
	Message    string
	Command    *Command
	Suggestion string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Usagef builds a handler-scoped UsageError from a format string. The
// dispatcher fills in the command scope when the error propagates.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Type: ErrorTypeHandler, Message: fmt.Sprintf(format, args...)}
}

// ExitError requests a specific process exit code from inside a handler.
// Err, when set, is printed before exiting.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}
