package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/internal/fakeapi"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/session"
)

type notification struct {
	Severity Severity
	Message  string
}

// recorder is a Notifier that keeps everything it receives.
type recorder struct {
	mu   sync.Mutex
	seen []notification
}

func (r *recorder) Notify(_ context.Context, sev Severity, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, notification{sev, msg})
}

func (r *recorder) all() []notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification(nil), r.seen...)
}

// brokenStore fails every write.
type brokenStore struct{ *session.MemoryStore }

var errStoreDown = errors.New("store down")

func (brokenStore) Set(context.Context, string, string) error { return errStoreDown }
func (brokenStore) Delete(context.Context, string) error      { return errStoreDown }

// newStubClient serves h under /api and returns a client rooted there.
func newStubClient(t *testing.T, h http.HandlerFunc, opts ...Option) (*Client, *recorder) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	rec := &recorder{}
	c, err := New(srv.URL+"/api", append([]Option{WithNotifier(rec)}, opts...)...)
	require.NoError(t, err)
	return c, rec
}

// newFakeClient returns a client talking to a fresh fake backend.
func newFakeClient(t *testing.T, opts ...Option) (*Client, *recorder) {
	t.Helper()
	srv := httptest.NewServer(fakeapi.New("test-secret"))
	t.Cleanup(srv.Close)
	rec := &recorder{}
	c, err := New(srv.URL+fakeapi.Prefix, append([]Option{WithNotifier(rec)}, opts...)...)
	require.NoError(t, err)
	return c, rec
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
