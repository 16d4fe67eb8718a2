// Package session holds the bearer credential shared by API calls and
// persists it through a pluggable key/value Store.
//
// A Session has two states: absent (no access token) and present. Begin moves
// it to present, End back to absent. Reads never touch the store; the store
// is read once by Open and written on every transition.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Storage keys, shared with any other program using the same store.
const (
	TokenKey   = "authToken"
	RefreshKey = "refreshToken"
)

// ErrNoToken is returned when an operation needs a token the session lacks.
var ErrNoToken = errors.New("session: not authenticated")

// Session is safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	access  string
	refresh string
	store   Store
}

// New returns an unauthenticated session persisting to store. A nil store
// selects a fresh MemoryStore.
func New(store Store) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Session{store: store}
}

// Open returns a session initialised from whatever store already holds.
func Open(ctx context.Context, store Store) (*Session, error) {
	s := New(store)
	access, _, err := s.store.Get(ctx, TokenKey)
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}
	refresh, _, err := s.store.Get(ctx, RefreshKey)
	if err != nil {
		return nil, fmt.Errorf("load refresh token: %w", err)
	}
	if access != "" {
		s.access, s.refresh = access, refresh
	}
	return s, nil
}

// Token returns the access token, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// RefreshToken returns the refresh token, or "" when none is held.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// Authenticated reports whether an access token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Store returns the backing store.
func (s *Session) Store() Store { return s.store }

// Begin records a fresh login. The pair is persisted first and published in
// memory only once the store accepted it, so a failed write leaves the
// previous state untouched. An empty refresh removes any stored one.
func (s *Session) Begin(ctx context.Context, access, refresh string) error {
	if access == "" {
		return errors.New("session: empty access token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(ctx, TokenKey, access); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	if refresh == "" {
		if err := s.store.Delete(ctx, RefreshKey); err != nil {
			return fmt.Errorf("remove refresh token: %w", err)
		}
	} else if err := s.store.Set(ctx, RefreshKey, refresh); err != nil {
		return fmt.Errorf("persist refresh token: %w", err)
	}
	s.access, s.refresh = access, refresh
	return nil
}

// Renew swaps in a refreshed access token. refresh replaces the stored one
// only when non-empty (rotation).
func (s *Session) Renew(ctx context.Context, access, refresh string) error {
	if access == "" {
		return errors.New("session: empty access token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(ctx, TokenKey, access); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	if refresh != "" {
		if err := s.store.Set(ctx, RefreshKey, refresh); err != nil {
			return fmt.Errorf("persist refresh token: %w", err)
		}
		s.refresh = refresh
	}
	s.access = access
	return nil
}

// End clears the session. Memory is cleared unconditionally before the store
// is touched; the returned error only reports store failures.
func (s *Session) End(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = "", ""
	return errors.Join(
		s.store.Delete(ctx, TokenKey),
		s.store.Delete(ctx, RefreshKey),
	)
}
