package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/session"
)

// Option configures a Client during construction in New.
//
// Options run in order before the REST transport is built, so transport
// options compose with a client supplied through WithHTTPClient only when
// they come after it.
type Option func(*Client) error

// WithHTTPClient replaces the underlying *http.Client. The client is used as
// given; later options such as WithHTTPTimeout mutate it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// There is no default timeout. Prefer per-request context deadlines where
// possible; this is a coarse bound on a whole request including reading the
// response. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true. Authorization headers are redacted.
//
// Do not enable this option in production environments; dumps include
// request and response bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, wrapped := c.http.Transport.(*debugTransport); wrapped {
			return nil
		}
		c.http.Transport = &debugTransport{base: c.http.Transport}
		return nil
	}
}

// WithSession injects the session holding the bearer token. Without it the
// client starts with an empty in-memory session.
func WithSession(s *session.Session) Option {
	return func(c *Client) error {
		if s == nil {
			return errors.New("session cannot be nil")
		}
		c.session = s
		return nil
	}
}

// WithNotifier sets the sink that receives one message per failed request.
func WithNotifier(n Notifier) Option {
	return func(c *Client) error {
		if n == nil {
			return errors.New("notifier cannot be nil")
		}
		c.notifier = n
		return nil
	}
}
