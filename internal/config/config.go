// Package config loads the settings shared by the command-line tools.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/session"
)

// Session store kinds accepted by SESSION_STORE.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds tool configuration.
// Environment variables are parsed from the SCHOOL_ prefix, for example
// SCHOOL_BASE_URL or SCHOOL_SESSION_STORE.
type Config struct {
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8000/api"`

	// Session persistence
	SessionStore  string `envconfig:"SESSION_STORE" default:"file"`
	SessionPath   string `envconfig:"SESSION_PATH" default:""`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisPrefix   string `envconfig:"REDIS_PREFIX" default:"school:session:"`

	// HTTP
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	level zerolog.Level
}

// New creates a Config from SCHOOL_* environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SCHOOL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Str("session_store", cfg.SessionStore).
		Str("session_path", cfg.SessionPath).
		Dur("http_timeout", cfg.HTTPTimeout).
		Str("log_level", cfg.level.String()).
		Msg("Configuration loaded")
	return &cfg, nil
}

// ResolveDefaults validates the store kind and log level and derives the
// session file location when none was given.
func (c *Config) ResolveDefaults() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("BASE_URL cannot be empty")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative: %s", c.HTTPTimeout)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return fmt.Errorf("unsupported LOG_LEVEL: %s", c.LogLevel)
	}
	c.level = lvl

	c.SessionStore = strings.ToLower(c.SessionStore)
	switch c.SessionStore {
	case StoreMemory, StoreRedis:
	case StoreFile, StoreSQLite:
		if c.SessionPath == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return fmt.Errorf("locate config dir: %w", err)
			}
			name := "session.yaml"
			if c.SessionStore == StoreSQLite {
				name = "session.db"
			}
			c.SessionPath = filepath.Join(dir, "schoolctl", name)
		}
	default:
		return fmt.Errorf("unsupported SESSION_STORE: %s", c.SessionStore)
	}
	if c.RedisPrefix == "" {
		c.RedisPrefix = session.DefaultRedisPrefix
	}
	return nil
}

// Level returns the parsed log level; valid after ResolveDefaults.
func (c *Config) Level() zerolog.Level { return c.level }

// OpenStore builds the configured session store. The returned close function
// is never nil.
func (c *Config) OpenStore(ctx context.Context) (session.Store, func() error, error) {
	noop := func() error { return nil }
	switch c.SessionStore {
	case StoreMemory:
		return session.NewMemoryStore(), noop, nil
	case StoreFile:
		return session.NewFileStore(c.SessionPath), noop, nil
	case StoreSQLite:
		if err := os.MkdirAll(filepath.Dir(c.SessionPath), 0o700); err != nil {
			return nil, noop, fmt.Errorf("create session dir: %w", err)
		}
		st, err := session.OpenSQLite(ctx, c.SessionPath)
		if err != nil {
			return nil, noop, err
		}
		return st, st.Close, nil
	case StoreRedis:
		st, err := session.DialRedis(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB, c.RedisPrefix)
		if err != nil {
			return nil, noop, err
		}
		return st, st.Close, nil
	}
	return nil, noop, fmt.Errorf("unsupported SESSION_STORE: %s", c.SessionStore)
}

// ClientOptions translates the HTTP settings into client options.
func (c *Config) ClientOptions() []client.Option {
	var opts []client.Option
	if c.HTTPTimeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(c.HTTPTimeout))
	}
	if c.Debug {
		opts = append(opts, client.WithDebugLogging(true))
	}
	return opts
}

// NewClient opens the session store, restores the session and returns a
// client using it. Callers must invoke the returned close function.
func (c *Config) NewClient(ctx context.Context, extra ...client.Option) (*client.Client, func() error, error) {
	store, closeStore, err := c.OpenStore(ctx)
	if err != nil {
		return nil, closeStore, err
	}
	sess, err := session.Open(ctx, store)
	if err != nil {
		_ = closeStore()
		return nil, func() error { return nil }, err
	}
	opts := append(c.ClientOptions(), client.WithSession(sess))
	cl, err := client.New(c.BaseURL, append(opts, extra...)...)
	if err != nil {
		_ = closeStore()
		return nil, func() error { return nil }, err
	}
	return cl, closeStore, nil
}
