// Package sferr provides standardized error handling for sqlforge.
// All errors have stable, machine-readable codes, structured context, and proper wrapping.
package sferr

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// Code represents a stable, machine-readable error code.
// Format: E{category}{number} where category is 1-9 and number is 001-999.
type Code string

// Error codes organized by category.
const (
	// Malformed request errors (E1xxx) - the caller handed a builder an
	// incomplete or inconsistent statement description.
	ErrMissingField  Code = "E1001" // Structurally required field missing at render time
	ErrArityMismatch Code = "E1002" // Row value count does not match column count
	ErrEmptyList     Code = "E1003" // Column/row/assignment list must not be empty

	// Dialect support errors (E2xxx) - the request is valid but has no
	// representation on the selected dialect.
	ErrConflictPolicy   Code = "E2001" // Conflict policy not representable on dialect
	ErrAnnotation       Code = "E2002" // Column annotation not representable on dialect
	ErrStatementFeature Code = "E2003" // Statement feature not representable on dialect
	ErrUnknownDialect   Code = "E2004" // Dialect name not recognized
	ErrUnknownType      Code = "E2005" // Column type name not recognized

	// Schema file errors (E3xxx) - problems with YAML schema input.
	ErrSchemaInvalid  Code = "E3001" // Schema file is malformed or invalid
	ErrSchemaNotFound Code = "E3002" // Schema file not found

	// SQL errors (E4xxx) - problems executing statements against a scratch database.
	ErrSQLExecution  Code = "E4001" // SQL statement failed to execute
	ErrSQLConnection Code = "E4002" // Database connection failed

	// Internal errors (E9xxx) - unexpected internal errors.
	EInternalError Code = "E9001" // Internal invariant violated
)

// Error is the standard error type for sqlforge.
// It provides structured error information with codes, context, and wrapping support.
type Error struct {
	code    Code           // Machine-readable error code
	message string         // Human-readable error message
	context map[string]any // Structured context data
	cause   error          // Wrapped underlying error
	stack   string         // Stack trace for debugging
}

// Error returns the formatted error string.
// Format:
//
//	[E2001] conflict policy has no representation on this dialect
//	  dialect: postgres
//	  policy: ROLLBACK
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.code, e.message))

	// Write context in sorted order for deterministic output
	if len(e.context) > 0 {
		keys := make([]string, 0, len(e.context))
		for k := range e.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteString(fmt.Sprintf("\n  %s: %v", k, e.context[k]))
		}
	}

	if e.cause != nil {
		b.WriteString(fmt.Sprintf("\n  cause: %v", e.cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error for errors.Unwrap compatibility.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the target error matches this error.
// It matches if target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.code == targetErr.code
	}

	return false
}

// GetCode returns the error code.
func (e *Error) GetCode() Code {
	return e.code
}

// GetMessage returns the error message.
func (e *Error) GetMessage() string {
	return e.message
}

// GetContext returns the error context map.
func (e *Error) GetContext() map[string]any {
	return e.context
}

// GetCause returns the underlying cause error.
func (e *Error) GetCause() error {
	return e.cause
}

// GetStack returns the stack trace.
func (e *Error) GetStack() string {
	return e.stack
}

// With adds a key-value pair to the error context.
// Returns the error for method chaining.
func (e *Error) With(key string, value any) *Error {
	if e.context == nil {
		e.context = make(map[string]any)
	}
	e.context[key] = value
	return e
}

// WithTable adds table context to the error.
func (e *Error) WithTable(table string) *Error {
	return e.With("table", table)
}

// WithColumn adds column context to the error.
func (e *Error) WithColumn(name string) *Error {
	return e.With("column", name)
}

// WithDialect adds dialect context to the error.
func (e *Error) WithDialect(name string) *Error {
	return e.With("dialect", name)
}

// WithSQL adds SQL statement context to the error.
func (e *Error) WithSQL(sql string) *Error {
	return e.With("sql", sql)
}

// captureStack captures a stack trace for debugging.
func captureStack(skip int) string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		// Skip runtime internals
		if strings.Contains(frame.File, "runtime/") {
			if !more {
				break
			}
			continue
		}
		b.WriteString(fmt.Sprintf("%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return b.String()
}

// New creates a new Error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{
		code:    code,
		message: msg,
		context: make(map[string]any),
		stack:   captureStack(3),
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
		context: make(map[string]any),
		stack:   captureStack(3),
	}
}

// Wrap creates a new Error that wraps an existing error.
func Wrap(code Code, err error, msg string) *Error {
	if err == nil {
		return New(code, msg)
	}
	return &Error{
		code:    code,
		message: msg,
		context: make(map[string]any),
		cause:   err,
		stack:   captureStack(3),
	}
}

// IsCode reports whether err is (or wraps) an *Error with the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.code == code
	}
	return false
}

// IsMalformed reports whether err is a malformed-request error (E1xxx).
func IsMalformed(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return strings.HasPrefix(string(e.code), "E1")
	}
	return false
}

// IsUnsupported reports whether err is a dialect-support error (E2xxx).
func IsUnsupported(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return strings.HasPrefix(string(e.code), "E2")
	}
	return false
}
