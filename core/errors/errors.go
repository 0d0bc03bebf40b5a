// Package errors provides standardized error types for Bible reference
// parsing and construction.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the reference error taxonomy.
var (
	// ErrUnknownBook indicates a book token did not resolve to a catalog entry.
	ErrUnknownBook = errors.New("unknown book")
	// ErrMalformedReference indicates invalid reference or range syntax.
	ErrMalformedReference = errors.New("malformed reference")
	// ErrInvalidRange indicates a passage whose end precedes its start.
	ErrInvalidRange = errors.New("invalid range")
)

// UnknownBookError represents a book token that does not resolve to
// exactly one book of the Bible.
type UnknownBookError struct {
	Token string // Book token as supplied by the caller
	Err   error  // Underlying error, if any
}

func (e *UnknownBookError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("unknown book of the Bible: %q", e.Token)
	}
	return "unknown book of the Bible"
}

func (e *UnknownBookError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnknownBook
}

// MalformedReferenceError represents reference text whose syntax could not
// be parsed (missing colon, non-numeric chapter or verse, bad range form).
type MalformedReferenceError struct {
	Input   string // Text that failed to parse
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *MalformedReferenceError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("malformed reference %q: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("malformed reference: %s", e.Message)
}

func (e *MalformedReferenceError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMalformedReference
}

// InvalidRangeError represents a passage whose end verse precedes its
// start verse under canonical ordering.
type InvalidRangeError struct {
	Start string // Canonical form of the start verse
	End   string // Canonical form of the end verse
	Err   error  // Underlying error, if any
}

func (e *InvalidRangeError) Error() string {
	if e.Start != "" && e.End != "" {
		return fmt.Sprintf("invalid range: end %s precedes start %s", e.End, e.Start)
	}
	return "invalid range: end precedes start"
}

func (e *InvalidRangeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidRange
}

// Helper functions for creating common errors

// NewUnknownBook creates an UnknownBookError for a book token.
func NewUnknownBook(token string) *UnknownBookError {
	return &UnknownBookError{Token: token}
}

// NewMalformed creates a MalformedReferenceError.
func NewMalformed(input, message string) *MalformedReferenceError {
	return &MalformedReferenceError{
		Input:   input,
		Message: message,
	}
}

// NewMalformedWrap creates a MalformedReferenceError around an underlying
// parse error.
func NewMalformedWrap(input, message string, err error) *MalformedReferenceError {
	return &MalformedReferenceError{
		Input:   input,
		Message: message,
		Err:     fmt.Errorf("%w: %v", ErrMalformedReference, err),
	}
}

// NewInvalidRange creates an InvalidRangeError from the canonical forms of
// the two endpoints.
func NewInvalidRange(start, end string) *InvalidRangeError {
	return &InvalidRangeError{
		Start: start,
		End:   end,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
