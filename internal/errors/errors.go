// Package errors provides structured error types for the colony analytics
// ingest pipeline. Errors carry a category, code, message, and retryable flag
// so the driver can distinguish fatal run-aborting failures from transient
// transport hiccups.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by pipeline stage.
type ErrorCategory string

const (
	ErrCategoryTransport ErrorCategory = "TRANSPORT"
	ErrCategoryDecode    ErrorCategory = "DECODE"
	ErrCategoryIdentity  ErrorCategory = "IDENTITY"
	ErrCategoryStorage   ErrorCategory = "STORAGE"
	ErrCategoryCatalog   ErrorCategory = "CATALOG"
	ErrCategoryInternal  ErrorCategory = "INTERNAL"
)

// Error codes for each category.
const (
	// Transport codes
	CodeListFailed  = "LIST_FAILED"
	CodeFetchFailed = "FETCH_FAILED"

	// Decode codes
	CodeMalformedJSON = "MALFORMED_JSON"

	// Identity codes
	CodeColonyIDMismatch = "COLONY_ID_MISMATCH"

	// Storage codes
	CodeWriteFailed  = "WRITE_FAILED"
	CodeUploadFailed = "UPLOAD_FAILED"

	// Catalog codes
	CodeRecordFailed = "RECORD_FAILED"

	// Internal codes
	CodeUnexpected = "UNEXPECTED"
)

// IngestError is the structured error type used throughout the pipeline.
type IngestError struct {
	Category  ErrorCategory
	Code      string
	Message   string
	Cause     error
	Retryable bool
}

// Error returns a formatted error string.
func (e *IngestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *IngestError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's category and code.
func (e *IngestError) Is(target error) bool {
	var t *IngestError
	if errors.As(target, &t) {
		return e.Category == t.Category && e.Code == t.Code
	}
	return false
}

// New creates a new IngestError.
func New(category ErrorCategory, code, message string) *IngestError {
	return &IngestError{
		Category:  category,
		Code:      code,
		Message:   message,
		Retryable: isRetryable(category),
	}
}

// Wrap creates a new IngestError wrapping an existing error.
func Wrap(category ErrorCategory, code, message string, cause error) *IngestError {
	return &IngestError{
		Category:  category,
		Code:      code,
		Message:   message,
		Cause:     cause,
		Retryable: isRetryable(category),
	}
}

// IsRetryable checks whether an error (or its chain) is retryable.
func IsRetryable(err error) bool {
	var ie *IngestError
	if errors.As(err, &ie) {
		return ie.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error chain.
// Returns empty string if the error is not an IngestError.
func GetCategory(err error) ErrorCategory {
	var ie *IngestError
	if errors.As(err, &ie) {
		return ie.Category
	}
	return ""
}

// GetCode extracts the error code from an error chain.
// Returns empty string if the error is not an IngestError.
func GetCode(err error) string {
	var ie *IngestError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ""
}

// isRetryable reports whether errors in a category are worth retrying.
// Only transport and storage failures can be transient; decode and identity
// failures indicate bad data and always abort the run.
func isRetryable(category ErrorCategory) bool {
	return category == ErrCategoryTransport || category == ErrCategoryStorage
}

// Convenience constructors for common errors.

func NewTransportError(code, message string, cause error) *IngestError {
	return Wrap(ErrCategoryTransport, code, message, cause)
}

func NewDecodeError(message string, cause error) *IngestError {
	return Wrap(ErrCategoryDecode, CodeMalformedJSON, message, cause)
}

func NewIdentityError(message string) *IngestError {
	return New(ErrCategoryIdentity, CodeColonyIDMismatch, message)
}

func NewStorageError(code, message string, cause error) *IngestError {
	return Wrap(ErrCategoryStorage, code, message, cause)
}

func NewCatalogError(message string, cause error) *IngestError {
	return Wrap(ErrCategoryCatalog, CodeRecordFailed, message, cause)
}

func NewInternalError(message string, cause error) *IngestError {
	return Wrap(ErrCategoryInternal, CodeUnexpected, message, cause)
}
