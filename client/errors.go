package client

import (
	clienterrors "github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/errors"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/session"
)

// RequestError is returned for every failed API call. Its Error method yields
// the server-supplied message, or DefaultErrorMessage.
type RequestError = clienterrors.RequestError

// ErrorKind tells callers where a failed request broke.
type ErrorKind = clienterrors.Kind

const (
	KindTransport = clienterrors.KindTransport
	KindParse     = clienterrors.KindParse
	KindServer    = clienterrors.KindServer
)

// DefaultErrorMessage is used when a failure body carries no message.
const DefaultErrorMessage = clienterrors.DefaultMessage

// ErrNotAuthenticated is returned when an operation needs a token the
// session does not hold.
var ErrNotAuthenticated = session.ErrNoToken

// AsRequestError extracts a *RequestError from err's chain.
func AsRequestError(err error) (*RequestError, bool) { return clienterrors.As(err) }

// IsServerError reports whether the backend answered with a failure status.
func IsServerError(err error) bool { return clienterrors.IsKind(err, KindServer) }

// IsTransportError reports whether the request never produced a response.
func IsTransportError(err error) bool { return clienterrors.IsKind(err, KindTransport) }

// IsParseError reports whether a response body could not be decoded.
func IsParseError(err error) bool { return clienterrors.IsKind(err, KindParse) }
