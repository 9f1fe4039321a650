// Package pagelist encodes a mapping of file extension to page numbers into a
// compact binary stream and decodes it back.
package pagelist

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
// These can be checked using errors.Is().
var (
	// ErrUnexpectedEOF indicates the data was truncated unexpectedly.
	ErrUnexpectedEOF = errors.New("pagelist: unexpected end of data")

	// ErrUnterminatedString indicates a name was not followed by a separator.
	ErrUnterminatedString = errors.New("pagelist: unterminated string")

	// ErrInvalidEncoding indicates an encoding flag other than narrow or wide.
	ErrInvalidEncoding = errors.New("pagelist: invalid encoding flag")

	// ErrUnknownFunction indicates a function id that is not defined.
	ErrUnknownFunction = errors.New("pagelist: unknown function id")

	// ErrInvalidRun indicates a zero delta, step or run length.
	ErrInvalidRun = errors.New("pagelist: invalid run")

	// ErrPageOutOfRange indicates a page outside [1, page amount].
	ErrPageOutOfRange = errors.New("pagelist: page out of range")

	// ErrDuplicatePage indicates a page claimed by more than one extension.
	ErrDuplicatePage = errors.New("pagelist: duplicate page")

	// ErrNoGroups indicates there is nothing to encode.
	ErrNoGroups = errors.New("pagelist: no extensions")

	// ErrEmptyGroup indicates an extension with no pages.
	ErrEmptyGroup = errors.New("pagelist: extension has no pages")

	// ErrPageAmount indicates a page amount outside [1, MaxPageAmount].
	ErrPageAmount = errors.New("pagelist: page amount out of range")

	// ErrNotAscending indicates a page list that is not strictly ascending.
	ErrNotAscending = errors.New("pagelist: pages not strictly ascending")

	// ErrInvalidName indicates an extension name containing NUL or invalid UTF-8.
	ErrInvalidName = errors.New("pagelist: invalid extension name")

	// ErrDuplicateExt indicates an extension listed more than once.
	ErrDuplicateExt = errors.New("pagelist: duplicate extension")

	// ErrCoverage indicates a page in [1, page amount] claimed by no extension.
	ErrCoverage = errors.New("pagelist: page not covered")

	// ErrMaxSizeExceeded indicates the input exceeds the configured size limit.
	ErrMaxSizeExceeded = errors.New("pagelist: maximum input size exceeded")

	// ErrMaxExtensions indicates too many extensions in the input.
	ErrMaxExtensions = errors.New("pagelist: maximum extension count exceeded")

	// ErrMaxNameLength indicates an extension name longer than allowed.
	ErrMaxNameLength = errors.New("pagelist: maximum name length exceeded")

	// ErrFrozen indicates a write after Bytes was called.
	ErrFrozen = errors.New("pagelist: writer is frozen")
)

// DecodeError provides detailed context for decoding failures.
// It implements the error interface and supports error unwrapping.
type DecodeError struct {
	// Ext is the extension being decoded (if known).
	Ext string

	// Offset is the byte offset in the input where the error occurred.
	Offset int

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a formatted error message.
func (e *DecodeError) Error() string {
	if e.Ext != "" {
		if e.Offset >= 0 {
			return fmt.Sprintf("pagelist: decode %q at offset %d: %s", e.Ext, e.Offset, e.Message)
		}
		return fmt.Sprintf("pagelist: decode %q: %s", e.Ext, e.Message)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("pagelist: decode at offset %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("pagelist: decode: %s", e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches the target.
// This supports errors.Is() for checking the cause.
func (e *DecodeError) Is(target error) bool {
	if e.Cause != nil && errors.Is(e.Cause, target) {
		return true
	}
	return false
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(message string, cause error) *DecodeError {
	return &DecodeError{
		Offset:  -1,
		Message: message,
		Cause:   cause,
	}
}

// NewDecodeErrorAt creates a new DecodeError with offset information.
func NewDecodeErrorAt(offset int, message string, cause error) *DecodeError {
	return &DecodeError{
		Offset:  offset,
		Message: message,
		Cause:   cause,
	}
}

// EncodeError provides detailed context for encoding failures.
type EncodeError struct {
	// Ext is the extension being encoded (if applicable).
	Ext string

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a formatted error message.
func (e *EncodeError) Error() string {
	if e.Ext != "" {
		return fmt.Sprintf("pagelist: encode %q: %s", e.Ext, e.Message)
	}
	return fmt.Sprintf("pagelist: encode: %s", e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches the target.
func (e *EncodeError) Is(target error) bool {
	if e.Cause != nil && errors.Is(e.Cause, target) {
		return true
	}
	return false
}

// NewEncodeError creates a new EncodeError.
func NewEncodeError(message string, cause error) *EncodeError {
	return &EncodeError{
		Message: message,
		Cause:   cause,
	}
}

// NewExtEncodeError creates an EncodeError for a specific extension.
func NewExtEncodeError(ext, message string, cause error) *EncodeError {
	return &EncodeError{
		Ext:     ext,
		Message: message,
		Cause:   cause,
	}
}

// IsFormatError returns true if the error indicates a malformed byte stream.
func IsFormatError(err error) bool {
	switch {
	case errors.Is(err, ErrUnexpectedEOF),
		errors.Is(err, ErrUnterminatedString),
		errors.Is(err, ErrInvalidEncoding),
		errors.Is(err, ErrUnknownFunction),
		errors.Is(err, ErrInvalidRun):
		return true
	}
	var de *DecodeError
	return errors.As(err, &de) && !IsLimitExceeded(err)
}

// IsLimitExceeded returns true if the error indicates a configured limit was exceeded.
func IsLimitExceeded(err error) bool {
	switch {
	case errors.Is(err, ErrMaxSizeExceeded),
		errors.Is(err, ErrMaxExtensions),
		errors.Is(err, ErrMaxNameLength):
		return true
	default:
		return false
	}
}

// IsValidationError returns true if the error is an encode-side precondition failure.
func IsValidationError(err error) bool {
	var ee *EncodeError
	return errors.As(err, &ee)
}
