package messari

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes an APIError for programmatic handling.
type ErrorKind int

const (
	// KindHTTP indicates a non-2xx HTTP response that is not an auth or
	// rate-limit failure.
	KindHTTP ErrorKind = iota
	// KindNetwork indicates a transport-level failure (connection refused,
	// timeout, DNS resolution).
	KindNetwork
	// KindMalformedResponse indicates a 2xx response whose body could not
	// be decoded as JSON.
	KindMalformedResponse
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	return [...]string{
		"HTTP_ERROR",
		"NETWORK_ERROR",
		"MALFORMED_RESPONSE",
	}[k]
}

// ConfigError reports missing or invalid client configuration. It is
// returned from New, never from Call.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "messari: config: " + e.Message
}

// UnknownEndpointError reports a Call against a key that is not present in
// the endpoint registry.
type UnknownEndpointError struct {
	Key string
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("messari: unknown endpoint %q", e.Key)
}

// MissingPathParamError reports a Call that did not supply a value for a
// placeholder in the endpoint's path template. Param is the first missing
// placeholder in order of appearance.
type MissingPathParamError struct {
	Endpoint string
	Param    string
}

func (e *MissingPathParamError) Error() string {
	return fmt.Sprintf("messari: endpoint %q: missing path param %q", e.Endpoint, e.Param)
}

// APIError represents a failed HTTP exchange with the Messari API. It
// covers transport failures, decode failures, and non-2xx responses that
// are not authentication or rate-limit errors.
type APIError struct {
	// Kind categorizes the failure.
	Kind ErrorKind
	// StatusCode is the HTTP status code, zero for transport failures.
	StatusCode int
	// Message is the human-readable error description.
	Message string
	// Body holds the decoded error response body when one was present
	// and parseable, nil otherwise.
	Body any
	// URL is the request URL that produced the failure.
	URL string

	cause error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("messari: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("messari: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying transport or decode error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// AuthError reports an HTTP 401 or 403 response.
type AuthError struct {
	APIError
}

// Unwrap exposes the embedded APIError so errors.As matches both types.
func (e *AuthError) Unwrap() error {
	return &e.APIError
}

// RateLimitError reports an HTTP 429 response. The rate-limit metadata
// fields hold the raw header values when the server sent them, empty
// strings otherwise.
type RateLimitError struct {
	APIError

	// RetryAfter is the Retry-After response header.
	RetryAfter string
	// Limit is the X-RateLimit-Limit response header.
	Limit string
	// Remaining is the X-RateLimit-Remaining response header.
	Remaining string
	// Reset is the X-RateLimit-Reset response header.
	Reset string
}

// Unwrap exposes the embedded APIError so errors.As matches both types.
func (e *RateLimitError) Unwrap() error {
	return &e.APIError
}

// IsConfigError returns true if the error is a client configuration error.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsUnknownEndpoint returns true if the error names an unregistered endpoint key.
func IsUnknownEndpoint(err error) bool {
	var e *UnknownEndpointError
	return errors.As(err, &e)
}

// IsMissingPathParam returns true if the error reports an unsupplied path placeholder.
func IsMissingPathParam(err error) bool {
	var e *MissingPathParamError
	return errors.As(err, &e)
}

// IsAuthError returns true if the error is an HTTP 401/403 failure.
func IsAuthError(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// IsRateLimitError returns true if the error is an HTTP 429 failure.
func IsRateLimitError(err error) bool {
	var e *RateLimitError
	return errors.As(err, &e)
}

// IsNetworkError returns true if the error is a transport-level failure.
func IsNetworkError(err error) bool {
	var e *APIError
	if errors.As(err, &e) {
		return e.Kind == KindNetwork
	}
	return false
}
