package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"regexp"

	"github.com/rs/zerolog/log"
)

// debugTransport logs full request/response dumps through zerolog.
//
// Enable with SCHOOL_DEBUG=true or DEBUG=true, or WithDebugLogging(true).
// Bearer tokens are redacted; bodies are not, so keep it out of production.
type debugTransport struct{ base http.RoundTripper }

var bearerPattern = regexp.MustCompile(`(?mi)^(Authorization:\s*Bearer\s+)\S+`)

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redact(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

func redact(dump []byte) string {
	return bearerPattern.ReplaceAllString(string(dump), "${1}[REDACTED]")
}

// debugLoggingRequested reports whether SCHOOL_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("SCHOOL_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
