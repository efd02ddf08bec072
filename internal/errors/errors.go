// Package errors provides a structured error type (DocNavError) carrying a
// category and severity, used to classify failures for the CLI and HTTP layers.
//
// The navigation core itself never returns errors; these are raised by the
// supporting layers (configuration, content loading, index storage, server).
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies a DocNavError.
type ErrorCategory string

const (
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	CategoryContent    ErrorCategory = "content"
	CategoryIndex      ErrorCategory = "index"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryGit        ErrorCategory = "git"
	CategoryNetwork    ErrorCategory = "network"

	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Operation failed
	SeverityWarning ErrorSeverity = "warning" // Continues degraded
	SeverityInfo    ErrorSeverity = "info"
)

// ContextFields carries structured context for a DocNavError.
type ContextFields map[string]any

// DocNavError is a categorized error with optional cause and context.
type DocNavError struct {
	Category  ErrorCategory `json:"category"`
	Severity  ErrorSeverity `json:"severity"`
	Message   string        `json:"message"`
	Cause     error         `json:"-"`
	Retryable bool          `json:"retryable"`
	Context   ContextFields `json:"context,omitempty"`
}

func (e *DocNavError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

func (e *DocNavError) Unwrap() error {
	return e.Cause
}

// WithContext adds a context field and returns the error for chaining.
func (e *DocNavError) WithContext(key string, value any) *DocNavError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a DocNavError.
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocNavError {
	return &DocNavError{Category: category, Severity: severity, Message: message}
}

// Wrap creates a DocNavError around cause.
func Wrap(cause error, category ErrorCategory, severity ErrorSeverity, message string) *DocNavError {
	return &DocNavError{Category: category, Severity: severity, Message: message, Cause: cause}
}

// WrapRetryable creates a retryable DocNavError around cause.
func WrapRetryable(cause error, category ErrorCategory, severity ErrorSeverity, message string) *DocNavError {
	e := Wrap(cause, category, severity, message)
	e.Retryable = true
	return e
}

// As finds the first DocNavError in err's chain.
func As(err error) (*DocNavError, bool) {
	var dne *DocNavError
	if stderrors.As(err, &dne) {
		return dne, true
	}
	return nil, false
}

// IsCategory reports whether err carries a DocNavError of category.
func IsCategory(err error, category ErrorCategory) bool {
	dne, ok := As(err)
	return ok && dne.Category == category
}

// IsRetryable reports whether err carries a retryable DocNavError.
func IsRetryable(err error) bool {
	dne, ok := As(err)
	return ok && dne.Retryable
}

// GetCategory returns err's category, or CategoryInternal for foreign errors.
func GetCategory(err error) ErrorCategory {
	if dne, ok := As(err); ok {
		return dne.Category
	}
	return CategoryInternal
}
