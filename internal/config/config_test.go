package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/internal/fakeapi"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/session"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("SCHOOL_SESSION_STORE", "memory")
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.BaseURL)
	assert.Equal(t, StoreMemory, cfg.SessionStore)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.False(t, cfg.Debug)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.Equal(t, session.DefaultRedisPrefix, cfg.RedisPrefix)
	assert.Empty(t, cfg.ClientOptions())
}

func TestNew_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCHOOL_BASE_URL", "https://school.example/api")
	t.Setenv("SCHOOL_SESSION_STORE", "SQLite")
	t.Setenv("SCHOOL_SESSION_PATH", filepath.Join(dir, "s.db"))
	t.Setenv("SCHOOL_HTTP_TIMEOUT", "15s")
	t.Setenv("SCHOOL_DEBUG", "true")
	t.Setenv("SCHOOL_LOG_LEVEL", "DEBUG")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "https://school.example/api", cfg.BaseURL)
	assert.Equal(t, StoreSQLite, cfg.SessionStore)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Len(t, cfg.ClientOptions(), 2)
}

func TestResolveDefaults_Rejects(t *testing.T) {
	base := Config{BaseURL: "http://x", SessionStore: StoreMemory, LogLevel: "info"}

	bad := base
	bad.SessionStore = "etcd"
	assert.ErrorContains(t, bad.ResolveDefaults(), "SESSION_STORE")

	bad = base
	bad.LogLevel = "loud"
	assert.ErrorContains(t, bad.ResolveDefaults(), "LOG_LEVEL")

	bad = base
	bad.BaseURL = " "
	assert.Error(t, bad.ResolveDefaults())

	bad = base
	bad.HTTPTimeout = -time.Second
	assert.Error(t, bad.ResolveDefaults())
}

func TestResolveDefaults_DerivesSessionPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg := Config{BaseURL: "http://x", SessionStore: StoreFile, LogLevel: "info"}
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, "session.yaml", filepath.Base(cfg.SessionPath))
	assert.Equal(t, "schoolctl", filepath.Base(filepath.Dir(cfg.SessionPath)))

	cfg = Config{BaseURL: "http://x", SessionStore: StoreSQLite, LogLevel: "info"}
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, "session.db", filepath.Base(cfg.SessionPath))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	mr := miniredis.RunT(t)

	cases := []Config{
		{SessionStore: StoreMemory},
		{SessionStore: StoreFile, SessionPath: filepath.Join(dir, "a", "session.yaml")},
		{SessionStore: StoreSQLite, SessionPath: filepath.Join(dir, "b", "session.db")},
		{SessionStore: StoreRedis, RedisAddr: mr.Addr(), RedisPrefix: "test:"},
	}
	for _, cfg := range cases {
		t.Run(cfg.SessionStore, func(t *testing.T) {
			st, closeStore, err := cfg.OpenStore(ctx)
			require.NoError(t, err)
			defer func() { assert.NoError(t, closeStore()) }()

			require.NoError(t, st.Set(ctx, session.TokenKey, "tok"))
			v, ok, err := st.Get(ctx, session.TokenKey)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "tok", v)
		})
	}

	v, err := mr.Get("test:" + session.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
}

func TestNewClient_RestoresSession(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(fakeapi.New(""))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "session.yaml")
	cfg := &Config{BaseURL: srv.URL + fakeapi.Prefix, SessionStore: StoreFile, SessionPath: path, LogLevel: "info"}
	require.NoError(t, cfg.ResolveDefaults())

	c, closeFn, err := cfg.NewClient(ctx)
	require.NoError(t, err)
	_, err = c.Login(ctx, fakeapi.StudentUsername, fakeapi.StudentPassword)
	require.NoError(t, err)
	require.NoError(t, closeFn())

	// A second process sees the persisted login.
	c2, closeFn2, err := cfg.NewClient(ctx)
	require.NoError(t, err)
	defer func() { _ = closeFn2() }()
	assert.True(t, c2.Session().Authenticated())

	u, err := c2.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, fakeapi.StudentUsername, u.Username)
}

func TestNewClient_BadStore(t *testing.T) {
	cfg := &Config{BaseURL: "http://x", SessionStore: StoreRedis, RedisAddr: unusedAddr(t)}
	_, closeFn, err := cfg.NewClient(context.Background())
	assert.Error(t, err)
	assert.NoError(t, closeFn())
}

func unusedAddr(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.Listener.Addr().String()
	srv.Close()
	return addr
}
