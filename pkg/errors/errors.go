// Package errors provides typed errors for the integration runner
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrInvalidURL indicates a base URL that does not parse
	ErrInvalidURL
	// ErrSSRFBlocked indicates a target address rejected by SSRF protection
	ErrSSRFBlocked
	// ErrTransport indicates a network-level failure (DNS, connect, TLS, timeout)
	ErrTransport
	// ErrHTTP indicates a well-formed HTTP response with an error status
	ErrHTTP
	// ErrValidation indicates an input validation error
	ErrValidation
	// ErrTimeout indicates a timeout occurred
	ErrTimeout
)

// GatewayError is the base error type for all integration-runner errors
type GatewayError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// New creates a new GatewayError
func New(errType ErrorType, message string, cause error) *GatewayError {
	return &GatewayError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *GatewayError) WithContext(key string, value interface{}) *GatewayError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var gwErr *GatewayError
	if err == nil {
		return false
	}
	if errors.As(err, &gwErr) {
		return gwErr.Type == errType
	}
	return false
}

// IsRetryable returns true if the error is transient and a caller may retry.
// The gateway itself never retries; retry policy belongs to connectors.
func IsRetryable(err error) bool {
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		return false
	}

	switch gwErr.Type {
	case ErrTransport, ErrTimeout:
		return true
	default:
		// Validation and SSRF failures are fatal to the call by design.
		return false
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrInvalidURL:
		return "INVALID_URL"
	case ErrSSRFBlocked:
		return "SSRF_BLOCKED"
	case ErrTransport:
		return "TRANSPORT"
	case ErrHTTP:
		return "HTTP"
	case ErrValidation:
		return "VALIDATION"
	case ErrTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *GatewayError {
	return New(ErrConfig, message, cause)
}

// InvalidURLError creates an invalid base URL error
func InvalidURLError(message string, cause error) *GatewayError {
	return New(ErrInvalidURL, message, cause)
}

// SSRFBlockedError creates an SSRF protection error
func SSRFBlockedError(message string) *GatewayError {
	return New(ErrSSRFBlocked, message, nil)
}

// TransportError creates a network-level error
func TransportError(message string, cause error) *GatewayError {
	return New(ErrTransport, message, cause)
}

// HTTPError creates an HTTP error-status error
func HTTPError(status int, reason string) *GatewayError {
	return New(ErrHTTP, fmt.Sprintf("HTTP %d: %s", status, reason), nil).
		WithContext("status", status)
}

// ValidationError creates an input validation error
func ValidationError(message string, cause error) *GatewayError {
	return New(ErrValidation, message, cause)
}

// TimeoutError creates a timeout error
func TimeoutError(message string, cause error) *GatewayError {
	return New(ErrTimeout, message, cause)
}
