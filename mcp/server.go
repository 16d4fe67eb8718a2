// Package mcp serves read-only school API lookups as MCP tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/internal/config"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/mcp/internal/handlers"
)

const (
	ServerName    = "school-mcp-server"
	ServerVersion = "0.1.0"

	shutdownTimeout = 10 * time.Second
)

// Options selects the transport. An empty HTTPAddr serves stdio.
type Options struct {
	HTTPAddr string
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server with every tool registered against c.
func NewServer(c *client.Client) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)

	registerers := []struct {
		name string
		h    toolRegisterer
	}{
		{"catalog", handlers.NewCatalogHandler(c)},
		{"certificate", handlers.NewCertificateHandler(c)},
	}
	for _, r := range registerers {
		if err := r.h.RegisterTools(s); err != nil {
			return nil, fmt.Errorf("register %s tools: %w", r.name, err)
		}
	}
	return s, nil
}

// Run loads SCHOOL_* configuration, restores the stored session and serves
// until ctx is cancelled or the transport fails.
func Run(ctx context.Context, opts Options) error {
	// stdout belongs to the stdio protocol.
	config.InitLoggerTo(os.Stderr)

	cfg, err := config.New()
	if err != nil {
		return err
	}
	config.SetLogLevel(cfg.Level())

	sdk, closeStore, err := cfg.NewClient(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create client")
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("close session store")
		}
	}()
	log.Info().
		Str("base_url", sdk.BaseURL()).
		Bool("authenticated", sdk.Session().Authenticated()).
		Msg("Client created")

	s, err := NewServer(sdk)
	if err != nil {
		return err
	}

	if opts.HTTPAddr == "" {
		log.Info().Msg("Starting school MCP server (stdio transport)")
		stdio := server.NewStdioServer(s)
		return stdio.Listen(ctx, os.Stdin, os.Stdout)
	}
	return serveHTTP(ctx, s, opts.HTTPAddr)
}

func serveHTTP(ctx context.Context, s *server.MCPServer, addr string) error {
	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)
	srv := &http.Server{
		Addr:              addr,
		Handler:           streamSrv,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Starting school MCP server (Streamable HTTP)")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
		log.Info().Msg("MCP server shutdown complete")
		return nil
	case err := <-errCh:
		return err
	}
}
