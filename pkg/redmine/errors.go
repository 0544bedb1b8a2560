package redmine

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ValidationError reports malformed or insufficient arguments detected before
// any network call is made.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// APIError represents a non-success HTTP response from the Redmine API. It
// carries the upstream status code and body text for diagnostics.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("redmine API error %d: %s", e.StatusCode, e.Detail)
}

// TimeoutError is raised when the configured request timeout elapses before
// the Redmine API responds. It is a specialization of the transport error
// kind: IsTransport reports true for it.
type TimeoutError struct {
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.Timeout)
}

// Static errors for client construction.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrAPIKeyRequired  = errors.New("API key is required")
)

// IsValidation checks if the error is a pre-network argument failure.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// IsTimeout checks if the error is a request timeout.
func IsTimeout(err error) bool {
	timeoutErr := &TimeoutError{}

	return errors.As(err, &timeoutErr)
}

// IsTransport checks if the error came from the transport layer, i.e. a
// non-success HTTP status or an elapsed timeout.
func IsTransport(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return true
	}

	return IsTimeout(err)
}

// IsNotFound checks if the error is an upstream 404.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an upstream 401.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}
