package api

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/types"
)

type call struct {
	method string
	path   string
	body   any
}

// fakeRequester records calls and answers every request with body.
type fakeRequester struct {
	mu    sync.Mutex
	calls []call
	body  string
	err   error
}

func (f *fakeRequester) record(method, path string, body any) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: method, path: path, body: body})
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(f.body), nil
}

func (f *fakeRequester) Get(_ context.Context, path string) (json.RawMessage, error) {
	return f.record("GET", path, nil)
}

func (f *fakeRequester) Post(_ context.Context, path string, body any) (json.RawMessage, error) {
	return f.record("POST", path, body)
}

func (f *fakeRequester) Put(_ context.Context, path string, body any) (json.RawMessage, error) {
	return f.record("PUT", path, body)
}

func (f *fakeRequester) Decode(_ context.Context, path string, raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return types.ValidateResponse(v)
}

func (f *fakeRequester) last() call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}
