// Package errors provides the typed error taxonomy shared by the citation
// grammar, the value model and the book catalog.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates empty or whitespace-only input
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidReference indicates a malformed citation segment
	ErrInvalidReference = errors.New("invalid reference")
	// ErrInvalidRange indicates a range whose end precedes its start, or a bound outside 1..n
	ErrInvalidRange = errors.New("invalid range")
	// ErrParse indicates a malformed numeric or verse token
	ErrParse = errors.New("parse error")
	// ErrNotFound indicates a name the catalog could not resolve
	ErrNotFound = errors.New("not found")
)

// InvalidInputError is returned when the top-level input carries no citation.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid input: %s", e.Message)
	}
	return "invalid input"
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// InvalidReferenceError represents a segment whose shape does not match the
// citation grammar.
type InvalidReferenceError struct {
	Input   string // Offending segment or substring
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *InvalidReferenceError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid reference %q: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("invalid reference: %s", e.Message)
}

func (e *InvalidReferenceError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidReference
}

// Is lets errors.Is match ErrInvalidReference even when a cause is attached.
func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// InvalidRangeError represents a chapter or verse range that violates
// start <= end, or a position below 1.
type InvalidRangeError struct {
	Input   string
	Message string
}

func (e *InvalidRangeError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid range %q: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("invalid range: %s", e.Message)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

// ParseError represents a malformed numeric or verse token
type ParseError struct {
	Input   string // Token that failed to parse
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("failed to parse %q: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("failed to parse: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrParse
}

// Is lets errors.Is match ErrParse even when a cause is attached.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "book", "catalog")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// Is lets errors.Is match ErrNotFound even when a cause is attached.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Helper functions for creating common errors

// NewInvalidInput creates an InvalidInputError
func NewInvalidInput(message string) *InvalidInputError {
	return &InvalidInputError{Message: message}
}

// NewInvalidReference creates an InvalidReferenceError
func NewInvalidReference(input, message string) *InvalidReferenceError {
	return &InvalidReferenceError{
		Input:   input,
		Message: message,
	}
}

// NewInvalidRange creates an InvalidRangeError
func NewInvalidRange(input, message string) *InvalidRangeError {
	return &InvalidRangeError{
		Input:   input,
		Message: message,
	}
}

// NewParse creates a ParseError
func NewParse(input, message string) *ParseError {
	return &ParseError{
		Input:   input,
		Message: message,
	}
}

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
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
