// Package errors provides the error taxonomy shared by the WordPress client
// and its tool wrappers.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Kind classifies a failure independently of its message text.
type Kind string

const (
	KindConfiguration  Kind = "configuration"
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindUpstream       Kind = "upstream_server"
	KindHTTPStatus     Kind = "http_status"
	KindConnect        Kind = "connect"
	KindTimeout        Kind = "timeout"
	KindTransport      Kind = "transport"
	KindFetch          Kind = "fetch"
	KindUnknown        Kind = "unknown"
)

// Classified is implemented by every error type in this package.
type Classified interface {
	error
	Kind() Kind
}

// ConfigurationError indicates missing or invalid connection settings.
// It is fatal: the server cannot talk to WordPress without them.
type ConfigurationError struct {
	Missing []string // names of the missing settings
	Message string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("configuration error: missing %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Kind() Kind { return KindConfiguration }

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Kind() Kind { return KindValidation }

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NotFoundError indicates a local resource (such as an upload file) does not exist.
// Remote 404s are reported as HTTPStatusError with KindNotFound.
type NotFoundError struct {
	Resource   string // "file", "post", ...
	Identifier string
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Identifier)
	}
	return fmt.Sprintf("not found: %s", e.Identifier)
}

func (e *NotFoundError) Kind() Kind { return KindNotFound }

// HTTPStatusError is returned for any 4xx/5xx response from the REST API.
type HTTPStatusError struct {
	Status int
	Detail string // remote message, code, or a truncated body
	Method string
	Path   string
}

func (e *HTTPStatusError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "HTTP %d", e.Status)
	if hint := StatusHint(e.Status); hint != "" {
		b.WriteString(": ")
		b.WriteString(hint)
	}
	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Kind maps the status code onto the taxonomy.
func (e *HTTPStatusError) Kind() Kind {
	switch {
	case e.Status == http.StatusUnauthorized:
		return KindAuthentication
	case e.Status == http.StatusForbidden:
		return KindAuthorization
	case e.Status == http.StatusNotFound, e.Status == http.StatusGone:
		return KindNotFound
	case e.Status >= 500:
		return KindUpstream
	default:
		return KindHTTPStatus
	}
}

// StatusHint returns the human-actionable hint for a status code, if any.
func StatusHint(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "authentication failed, check the username and application password"
	case status == http.StatusForbidden:
		return "permission denied, the user lacks the capability for this action"
	case status == http.StatusNotFound:
		return "resource not found"
	case status == http.StatusGone:
		return "resource was permanently deleted"
	case status >= 500:
		return "WordPress server error"
	}
	return ""
}

// ConnectError indicates the site could not be reached (DNS, refused connection).
type ConnectError struct {
	Target string
	Err    error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("could not connect to %s, check WORDPRESS_URL: %v", e.Target, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

func (e *ConnectError) Kind() Kind { return KindConnect }

// TimeoutError indicates the site did not answer within the configured window.
// Any side effect of the request on the remote side is not rolled back.
type TimeoutError struct {
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out (exceeded %s)", e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

func (e *TimeoutError) Kind() Kind { return KindTimeout }

// TransportError wraps any other I/O level failure.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Kind() Kind { return KindTransport }

// FetchError indicates the source URL of a media upload could not be downloaded.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("failed to fetch %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Kind() Kind { return KindFetch }

// KindOf returns the classification of the first Classified error in the chain.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var c Classified
	if stderrors.As(err, &c) {
		return c.Kind()
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindUnknown
}

// IsNotFound returns true if the error is classified as not found.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return stderrors.As(err, &v)
}

// StatusOf returns the HTTP status of an HTTPStatusError in the chain, or 0.
func StatusOf(err error) int {
	var h *HTTPStatusError
	if stderrors.As(err, &h) {
		return h.Status
	}
	return 0
}
