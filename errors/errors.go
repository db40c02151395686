// Package errors provides error handling for javagen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for recovered compiler failures
//   - Error wrapping and context
//   - User hints surfaced by the CLI
//
// Usage:
//
//	// Wrap with context
//	if err := sink.CompilationUnitEnd(); err != nil {
//	    return errors.Wrap(err, "failed to write compilation unit")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'javagen config init' first")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// GetStack returns the stack trace captured when the error was created.
var GetStack = crdb.GetReportableStackTrace

// Sentinel errors for javagen.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidDocument indicates a template document could not be turned into instructions
	ErrInvalidDocument = New("invalid document")

	// ErrUnknownType indicates a type reference that is neither a primitive nor a class name
	ErrUnknownType = New("unknown type")

	// ErrOutputExists indicates the file sink refused to replace an existing file
	ErrOutputExists = New("output file exists")
)

// Recovered converts a value obtained from recover() into an error carrying a stack trace.
func Recovered(v any) error {
	switch x := v.(type) {
	case nil:
		return nil
	case error:
		return crdb.WithStackDepth(x, 1)
	default:
		return crdb.NewWithDepthf(1, "%v", x)
	}
}

// IsInvalidDocument checks if an error is or wraps ErrInvalidDocument
func IsInvalidDocument(err error) bool {
	return err != nil && Is(err, ErrInvalidDocument)
}

// IsOutputExists checks if an error is or wraps ErrOutputExists
func IsOutputExists(err error) bool {
	return err != nil && Is(err, ErrOutputExists)
}

// NewInvalidDocumentError creates an invalid-document error with a formatted message
func NewInvalidDocumentError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidDocument, Newf(format, args...).Error())
}
