package errors

import (
	"encoding/json"
	"strings"
)

// DefaultMessage is used when a failed response carries no readable message.
const DefaultMessage = "An error occurred"

// NewServerError builds the error for a non-success status. The message is
// taken from the body when the backend provided one.
func NewServerError(method, path string, statusCode int, body []byte) *RequestError {
	return &RequestError{
		Kind:       KindServer,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Message:    MessageFromBody(body),
		Body:       body,
	}
}

// NewTransportError wraps a network-level failure.
func NewTransportError(method, path string, err error) *RequestError {
	return &RequestError{
		Kind:    KindTransport,
		Method:  method,
		Path:    path,
		Message: err.Error(),
		Err:     err,
	}
}

// NewParseError wraps a body that could not be decoded. statusCode may be 0
// when the failure happened after the transport layer returned.
func NewParseError(method, path string, statusCode int, body []byte, err error) *RequestError {
	return &RequestError{
		Kind:       KindParse,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Message:    err.Error(),
		Body:       body,
		Err:        err,
	}
}

// MessageFromBody extracts the backend's message from an error body.
//
// Lookup order: "detail" (token and permission errors), "error" (custom
// actions), then the first "non_field_errors" entry (serializer validation).
func MessageFromBody(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return DefaultMessage
	}
	for _, key := range []string{"detail", "error"} {
		if msg := stringField(fields[key]); msg != "" {
			return msg
		}
	}
	var list []string
	if err := json.Unmarshal(fields["non_field_errors"], &list); err == nil {
		for _, msg := range list {
			if strings.TrimSpace(msg) != "" {
				return msg
			}
		}
	}
	return DefaultMessage
}

func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
