package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/internal/fakeapi"
)

func newMockServerCmd() *cobra.Command {
	var addr, secret string

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Serve an in-memory fake of the API for local development",
		Long: "Serves the API routes from fixtures under " + fakeapi.Prefix + ".\n" +
			"Log in as " + fakeapi.StudentUsername + "/" + fakeapi.StudentPassword + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info().
				Str("base_url", "http://"+displayAddr(addr)+fakeapi.Prefix).
				Msg("point SCHOOL_BASE_URL here")
			return fakeapi.New(secret).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8000", "Listen address")
	cmd.Flags().StringVar(&secret, "secret", "", "HS256 signing secret (development default when empty)")
	return cmd
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
