package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error codes for categorization
const (
	// Client errors (4xx)
	ErrCodeMissingURL  = "MISSING_URL"
	ErrCodeInvalidURL  = "INVALID_URL"
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeRateLimited = "RATE_LIMITED"

	// Server errors (5xx)
	ErrCodeInternal = "INTERNAL_ERROR"

	// Pipeline errors
	ErrCodeFetchFailed      = "FETCH_FAILED"
	ErrCodeEvaluationFailed = "EVALUATION_FAILED"
	ErrCodeAnalysisFailed   = "ANALYSIS_FAILED"
)

// Fetch failure subkinds, stored in AppError metadata under "fetch_error".
const (
	FetchErrConnectionRefused = "connection_refused"
	FetchErrHostNotFound      = "host_not_found"
	FetchErrForbidden         = "forbidden"
	FetchErrNotFound          = "not_found"
	FetchErrTimeout           = "timeout"
	FetchErrHTTPStatus        = "http_status"
	FetchErrNetwork           = "network"
)

// AppError is the base error type for all application errors
type AppError struct {
	// Error code for programmatic handling
	Code string `json:"code"`

	// Human-readable message
	Message string `json:"message"`

	// HTTP status code
	HTTPStatus int `json:"-"`

	// Original error (for error wrapping)
	Cause error `json:"-"`

	// Metadata for additional context
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// Timestamp when error occurred
	Timestamp time.Time `json:"timestamp"`

	// Retry information
	Retryable  bool          `json:"retryable"`
	RetryAfter time.Duration `json:"retry_after,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for error comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause adds the underlying cause
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithRetry marks the error as retryable
func (e *AppError) WithRetry(after time.Duration) *AppError {
	e.Retryable = true
	e.RetryAfter = after
	return e
}

// NewError creates a new AppError
func NewError(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now().UTC(),
	}
}

// Input validation errors

func ErrMissingURL() *AppError {
	return NewError(ErrCodeMissingURL, "URL is required", http.StatusBadRequest)
}

func ErrInvalidURL(url string) *AppError {
	return NewError(ErrCodeInvalidURL, "URL must be absolute with an http or https scheme", http.StatusBadRequest).
		WithMetadata("url", url)
}

func ErrValidation(message string) *AppError {
	return NewError(ErrCodeValidation, message, http.StatusBadRequest)
}

func ErrValidationField(field, message string) *AppError {
	return NewError(ErrCodeValidation, message, http.StatusBadRequest).
		WithMetadata("field", field)
}

// Fetch errors. Each subkind keeps a message a non-technical caller can act on.

func newFetchError(subkind, message string) *AppError {
	return NewError(ErrCodeFetchFailed, message, http.StatusUnprocessableEntity).
		WithMetadata("fetch_error", subkind)
}

func ErrFetchConnectionRefused(url string) *AppError {
	return newFetchError(FetchErrConnectionRefused, "The site refused the connection. It may be down or blocking automated requests.").
		WithMetadata("url", url)
}

func ErrFetchHostNotFound(url string) *AppError {
	return newFetchError(FetchErrHostNotFound, "The site's address could not be found. Check the URL for typos.").
		WithMetadata("url", url)
}

func ErrFetchForbidden(url string) *AppError {
	return newFetchError(FetchErrForbidden, "The site blocked our request (403 Forbidden). It may not allow automated access.").
		WithMetadata("url", url).
		WithMetadata("status_code", http.StatusForbidden)
}

func ErrFetchNotFound(url string) *AppError {
	return newFetchError(FetchErrNotFound, "The page was not found (404). Check that the URL points to an existing page.").
		WithMetadata("url", url).
		WithMetadata("status_code", http.StatusNotFound)
}

func ErrFetchTimeout(url string) *AppError {
	return newFetchError(FetchErrTimeout, "The site took too long to respond. Try again later.").
		WithMetadata("url", url).
		WithRetry(30 * time.Second)
}

func ErrFetchNetwork(url string) *AppError {
	return newFetchError(FetchErrNetwork, "The site could not be reached. Check the URL and try again.").
		WithMetadata("url", url)
}

func ErrFetchStatus(url string, status int) *AppError {
	return newFetchError(FetchErrHTTPStatus, fmt.Sprintf("The site returned an unexpected status (%d).", status)).
		WithMetadata("url", url).
		WithMetadata("status_code", status)
}

// Pipeline errors

func ErrEvaluationFailed(category string, err error) *AppError {
	return NewError(ErrCodeEvaluationFailed, fmt.Sprintf("Evaluation failed for category: %s", category), http.StatusUnprocessableEntity).
		WithCause(err).
		WithMetadata("category", category)
}

// ErrAnalysisFailed is the generic fatal error. The message stays generic
// so internal detail never reaches the client; the cause goes to logs only.
func ErrAnalysisFailed(err error) *AppError {
	return NewError(ErrCodeAnalysisFailed, "Analysis failed due to an internal error. Please try again.", http.StatusInternalServerError).
		WithCause(err)
}

// Rate limiting

func ErrRateLimited(retryAfter time.Duration) *AppError {
	return NewError(ErrCodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests).
		WithRetry(retryAfter)
}

// Server errors

func ErrInternal(message string) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewError(ErrCodeInternal, message, http.StatusInternalServerError)
}

// Helper functions

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns the HTTP status code for an error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// GetErrorCode returns the error code for an error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// FetchSubkind returns the fetch failure subkind for an error, if any.
func FetchSubkind(err error) (string, bool) {
	appErr, ok := AsAppError(err)
	if !ok || appErr.Code != ErrCodeFetchFailed {
		return "", false
	}
	sub, ok := appErr.Metadata["fetch_error"].(string)
	return sub, ok
}
