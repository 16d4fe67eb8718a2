// Package errors provides the single error shape surfaced by the client SDK.
// Transport, decode and server-reported failures all produce a *RequestError
// so callers handle one type regardless of where the call broke.
package errors

import (
	"errors"
	"fmt"
)

// Kind tells callers where a failed request broke.
type Kind int

const (
	// KindTransport covers network failures and request construction errors.
	KindTransport Kind = iota

	// KindParse covers bodies that are not JSON or do not match the
	// expected response contract.
	KindParse

	// KindServer covers non-success status codes reported by the backend.
	KindServer
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	case KindServer:
		return "server"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// RequestError is returned for every failed API call.
type RequestError struct {
	Kind       Kind
	Method     string
	Path       string
	StatusCode int    // 0 when no response was received
	Message    string // user-facing text, shown by the notification sink
	Body       []byte // raw response body, when one was read
	Err        error  // underlying cause, nil for server-reported failures
}

// Error returns the user-facing message.
func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain compatibility.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Detail renders the error with request metadata for diagnostics.
func (e *RequestError) Detail() string {
	target := e.Path
	if e.Method != "" {
		target = e.Method + " " + e.Path
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s: HTTP %d: %s", e.Kind, target, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Kind, target, e.Message)
}

// As extracts a *RequestError from err's chain.
func As(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsKind reports whether err carries a *RequestError of kind k.
func IsKind(err error, k Kind) bool {
	re, ok := As(err)
	return ok && re.Kind == k
}
