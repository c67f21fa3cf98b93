package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeInvalidType indicates the declared entry type is neither
	// ingredient nor recipe.
	ErrCodeInvalidType ErrorCode = "INVALID_TYPE"
	// ErrCodeMissingField indicates a field required for the declared entry
	// type is absent (requiredItems for recipes, cookTime for ingredients).
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidCookTime indicates a negative cook time.
	ErrCodeInvalidCookTime ErrorCode = "INVALID_COOK_TIME"
	// ErrCodeDuplicateName indicates an entry with that name already exists.
	ErrCodeDuplicateName ErrorCode = "DUPLICATE_NAME"
	// ErrCodeDuplicateRequiredItem indicates a recipe lists the same
	// required item name more than once.
	ErrCodeDuplicateRequiredItem ErrorCode = "DUPLICATE_REQUIRED_ITEM"
	// ErrCodeNotFound indicates a requested entry was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeWrongType indicates the queried name resolves to an ingredient
	// where a recipe was required.
	ErrCodeWrongType ErrorCode = "WRONG_TYPE"
	// ErrCodeMissingDependency indicates resolution reached a required item
	// name with no corresponding cookbook entry.
	ErrCodeMissingDependency ErrorCode = "MISSING_DEPENDENCY"
	// ErrCodeCyclicDependency indicates the requirement graph revisits a
	// name already on the current expansion path.
	ErrCodeCyclicDependency ErrorCode = "CYCLIC_DEPENDENCY"
	// ErrCodeExpansionLimit indicates expansion exceeded the depth, total
	// operation, or quantity width ceilings.
	ErrCodeExpansionLimit ErrorCode = "EXPANSION_LIMIT_EXCEEDED"

	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeRateLimitExceeded indicates the client exceeded an enforced request limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not allowed for the resource.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new StructuredError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the error code carried by err, unwrapping as needed.
// Errors without a structured code are classified as internal.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err carries the given code, unwrapping as needed.
func HasCode(err error, code ErrorCode) bool {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code == code
	}
	return false
}
