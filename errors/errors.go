package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // mask and context-name parsing
	PhaseAudit  Phase = "audit"  // registry completeness checks
	PhaseFormat Phase = "format" // text emission surfaces
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidInput   Kind = "invalid_input"
	KindUnknownContext Kind = "unknown_context"
	KindMissingEntry   Kind = "missing_entry"
	KindDuplicateEntry Kind = "duplicate_entry"
	KindBadToken       Kind = "bad_token"
	KindOverflow       Kind = "overflow"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Token   string
	Context string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Token != "" || e.Context != "" {
		b.WriteString(": ")
		if e.Token != "" && e.Context != "" {
			b.WriteString("token ")
			b.WriteString(e.Token)
			b.WriteString(", context ")
			b.WriteString(e.Context)
		} else if e.Token != "" {
			b.WriteString("token ")
			b.WriteString(e.Token)
		} else {
			b.WriteString("context ")
			b.WriteString(e.Context)
		}
	}

	if e.Detail != "" {
		if e.Token != "" || e.Context != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// UnknownContext creates an error for an unrecognized context name
func UnknownContext(name string) *Error {
	return &Error{
		Phase:   PhaseParse,
		Kind:    KindUnknownContext,
		Context: name,
		Detail:  fmt.Sprintf("unknown declaration context %q", name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// MissingEntry reports an attribute bit with no registry entry in any context
func MissingEntry(attrName string, bit uint32) *Error {
	return &Error{
		Phase:  PhaseAudit,
		Kind:   KindMissingEntry,
		Token:  attrName,
		Detail: fmt.Sprintf("bit 0x%x has no registry entry in any context", bit),
		Value:  bit,
	}
}

// MissingContext reports a registry entry with an empty context mask
func MissingContext(token string) *Error {
	return &Error{
		Phase:  PhaseAudit,
		Kind:   KindMissingEntry,
		Token:  token,
		Detail: "registry entry has an empty context mask",
	}
}

// DuplicateEntry reports two registry rows that collide within one context
func DuplicateEntry(context string, bit uint32, a, b string) *Error {
	return &Error{
		Phase:   PhaseAudit,
		Kind:    KindDuplicateEntry,
		Context: context,
		Detail:  fmt.Sprintf("bit 0x%x maps to both %q and %q", bit, a, b),
		Value:   bit,
	}
}

// BadToken reports a registry token that cannot survive space-joined emission
func BadToken(token string) *Error {
	return &Error{
		Phase:  PhaseAudit,
		Kind:   KindBadToken,
		Token:  token,
		Detail: "token is empty or contains whitespace",
	}
}

// Overflow creates an overflow error for a mask that exceeds its domain
func Overflow(value uint64, targetType string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("value 0x%x overflows %s", value, targetType),
		Value:  value,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
