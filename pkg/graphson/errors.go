package graphson

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error codes for translation operations.
type ErrorCode string

// Translation error codes
const (
	// Decode errors
	ErrCodeInvalidDocument   ErrorCode = "INVALID_DOCUMENT"
	ErrCodeUnrecognizedShape ErrorCode = "UNRECOGNIZED_SHAPE"
	ErrCodeMissingField      ErrorCode = "MISSING_FIELD"
	ErrCodeTypeMismatch      ErrorCode = "TYPE_MISMATCH"

	// Encode errors
	ErrCodeUnsupportedWidthPolicy ErrorCode = "UNSUPPORTED_WIDTH_POLICY"
	ErrCodeInternalInvariant      ErrorCode = "INTERNAL_INVARIANT_VIOLATION"
)

// Stage identifies the phase of a translation call in which a failure
// occurred.
type Stage string

const (
	StageDecode Stage = "decode"
	StageEncode Stage = "encode"
)

// String returns the string representation of Stage.
func (s Stage) String() string {
	return string(s)
}

// DecodeError reports that the untyped input did not match any known graph
// shape, or that a matched shape was structurally invalid. It always carries
// the path from the document root to the offending node, since the untyped
// encoding has no discriminator tags to point at.
type DecodeError struct {
	Code    ErrorCode // Error code for programmatic handling
	Message string    // Human-readable error message
	Path    Path      // Location of the offending node
	Cause   error     // Underlying error (if any)
}

// Error implements the error interface.
// Format: "[CODE] message at $path" with ": cause" appended if a cause exists.
func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("[%s] %s at %s", e.Code, e.Message, e.Path)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause error for error unwrapping chains.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
func (e *DecodeError) Is(target error) bool {
	var derr *DecodeError
	if errors.As(target, &derr) {
		return e.Code == derr.Code
	}
	return false
}

// NewDecodeError creates a DecodeError with the given code, path, and
// formatted message.
func NewDecodeError(code ErrorCode, path Path, format string, args ...any) *DecodeError {
	return &DecodeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
	}
}

// WrapDecodeError creates a DecodeError that wraps an existing error.
func WrapDecodeError(code ErrorCode, path Path, message string, cause error) *DecodeError {
	return &DecodeError{
		Code:    code,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// EncodeError reports that a value tree could not be serialized to the typed
// encoding. An ErrCodeInternalInvariant code indicates a malformed tree
// reached the encoder, which points at a decoder or fixup bug rather than bad
// input; it is returned, never panicked on.
type EncodeError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
func (e *EncodeError) Is(target error) bool {
	var eerr *EncodeError
	if errors.As(target, &eerr) {
		return e.Code == eerr.Code
	}
	return false
}

// NewEncodeError creates an EncodeError with the given code and formatted
// message.
func NewEncodeError(code ErrorCode, format string, args ...any) *EncodeError {
	return &EncodeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// TranslationError is the public-facing wrapper returned by Translator. It
// combines a decode or encode failure with call-level context.
type TranslationError struct {
	Stage   Stage          // Phase that failed
	Cause   error          // The underlying DecodeError or EncodeError
	Context map[string]any // Additional context for debugging
}

// Error implements the error interface.
func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed during %s: %v", e.Stage, e.Cause)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with the wrapped
// DecodeError or EncodeError.
func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// WithContext adds additional context to the error for debugging.
// Returns the error for method chaining.
func (e *TranslationError) WithContext(key string, value any) *TranslationError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewTranslationError creates a TranslationError wrapping a stage failure.
func NewTranslationError(stage Stage, cause error) *TranslationError {
	return &TranslationError{
		Stage:   stage,
		Cause:   cause,
		Context: make(map[string]any),
	}
}
