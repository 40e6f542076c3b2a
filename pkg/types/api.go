package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind names the grammar element a parser was looking for when it gave up.
type ErrKind int

const (
	KindChar  ErrKind = iota // expected a specific character (sign, digit or '.')
	KindDigit                // expected a decimal digit (exponent after a cut)
	KindIsA                  // expected at least one byte of a character class
	KindFloat                // input is not a float literal or special token
	KindTag                  // literal tag mismatch
	KindEOF                  // input ended before a fixed-width value (complete mode)
)

func (k ErrKind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindDigit:
		return "Digit"
	case KindIsA:
		return "IsA"
	case KindFloat:
		return "Float"
	case KindTag:
		return "Tag"
	case KindEOF:
		return "Eof"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Severity is the three-way outcome of a parse that did not produce a value.
type Severity int

const (
	// SeverityError rejects the input; a sibling alternative may still match.
	SeverityError Severity = iota
	// SeverityFailure rejects the input after a committed prefix (cut).
	// Callers must not backtrack past it.
	SeverityFailure
	// SeverityIncomplete means the input is a valid prefix and more bytes
	// are required. Retry from the original offset once Needed bytes arrive.
	SeverityIncomplete
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityFailure:
		return "failure"
	case SeverityIncomplete:
		return "incomplete"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Needed is the minimum number of additional bytes required before a parser
// can make progress. It is always positive.
type Needed int

// Error is the error returned by every parser in this module.
type Error struct {
	Severity Severity
	Kind     ErrKind
	Input    []byte // remaining input at the point of failure; nil for Incomplete
	Needed   Needed // only set when Severity == SeverityIncomplete
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Severity == SeverityIncomplete {
		return fmt.Sprintf("parse incomplete: need %d more byte(s)", e.Needed)
	}
	return fmt.Sprintf("parse %s: %s at %s", e.Severity, e.Kind, preview(e.Input))
}

// Is matches the severity sentinels so callers can use errors.Is.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrRecoverable:
		return e.Severity == SeverityError
	case ErrFailure:
		return e.Severity == SeverityFailure
	case ErrIncomplete:
		return e.Severity == SeverityIncomplete
	}
	return false
}

// Cut promotes a recoverable Error to a Failure. Other severities pass through.
func (e *Error) Cut() *Error {
	if e == nil || e.Severity != SeverityError {
		return e
	}
	c := *e
	c.Severity = SeverityFailure
	return &c
}

// Sentinels for errors.Is. They only compare severity.
var (
	ErrRecoverable error = &Error{Severity: SeverityError}
	ErrFailure     error = &Error{Severity: SeverityFailure}
	ErrIncomplete  error = &Error{Severity: SeverityIncomplete}
)

// NewError returns a recoverable error of kind at input.
func NewError(input []byte, kind ErrKind) *Error {
	return &Error{Severity: SeverityError, Kind: kind, Input: input}
}

// NewFailure returns a non-backtracking failure of kind at input.
func NewFailure(input []byte, kind ErrKind) *Error {
	return &Error{Severity: SeverityFailure, Kind: kind, Input: input}
}

// Incomplete returns an error requesting n more bytes. n must be positive.
func Incomplete(n int) *Error {
	if n <= 0 {
		panic(fmt.Sprintf("types: Incomplete with non-positive need %d", n))
	}
	return &Error{Severity: SeverityIncomplete, Needed: Needed(n)}
}

// IsIncomplete reports whether err asks for more input, and how much.
func IsIncomplete(err error) (Needed, bool) {
	var pe *Error
	if errors.As(err, &pe) && pe.Severity == SeverityIncomplete {
		return pe.Needed, true
	}
	return 0, false
}

// IsFailure reports whether err is a non-backtracking failure.
func IsFailure(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Severity == SeverityFailure
}

// IsRecoverable reports whether err is a plain Error that an alternative
// parser could recover from.
func IsRecoverable(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Severity == SeverityError
}

// KindOf returns the ErrKind carried by err, or false if err is not a parse error.
func KindOf(err error) (ErrKind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

func preview(b []byte) string {
	const maxPreview = 16
	if len(b) > maxPreview {
		return fmt.Sprintf("%q...", b[:maxPreview])
	}
	return fmt.Sprintf("%q", b)
}
