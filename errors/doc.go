// Package errors provides structured error types for the hhbc-attrs library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the attribute token and context involved
// plus a cause chain. The attribute codec itself is total and never returns
// errors; this package serves the surrounding surfaces: context-name parsing,
// the registry audit, and the CLI.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.UnknownContext("clas")
//	err := errors.MissingEntry("AttrLateInit", 1<<24)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
