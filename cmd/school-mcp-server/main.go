// Command school-mcp-server exposes school API lookups to MCP hosts.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/mcp"
)

func main() {
	var opts mcp.Options
	flag.StringVar(&opts.HTTPAddr, "http-addr", os.Getenv("SCHOOL_MCP_HTTP_ADDR"), "Serve Streamable HTTP on this address instead of stdio")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcp.Run(ctx, opts); err != nil {
		log.Error().Err(err).Msg("MCP server exited with error")
		os.Exit(1)
	}
}
