// Command schoolctl drives the school administration API from the shell.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/internal/config"
)

const requestTimeout = 30 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries the state shared by subcommands of one root command.
type app struct {
	baseURL string
	debug   bool
	cfg     *config.Config
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "schoolctl",
		Short:         "Command-line client for the school administration API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitLogger()
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = a.baseURL
			}
			if a.debug {
				cfg.Debug = true
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(cfg.Level())
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "API root URL (overrides SCHOOL_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output and HTTP dumps")

	// Account
	rootCmd.AddCommand(a.newLoginCmd())
	rootCmd.AddCommand(a.newLogoutCmd())
	rootCmd.AddCommand(a.newStatusCmd())
	rootCmd.AddCommand(a.newWhoamiCmd())
	rootCmd.AddCommand(a.newRegisterCmd())
	rootCmd.AddCommand(a.newUpdateProfileCmd())
	rootCmd.AddCommand(a.newRefreshCmd())

	// Catalogue and records
	rootCmd.AddCommand(a.newCoursesCmd())
	rootCmd.AddCommand(a.newStudentsCmd())
	rootCmd.AddCommand(a.newEnrollmentsCmd())
	rootCmd.AddCommand(a.newJobsCmd())
	rootCmd.AddCommand(a.newCertificatesCmd())

	// Local development
	rootCmd.AddCommand(newMockServerCmd())

	return rootCmd
}

// run opens a client on the configured session store, calls fn with a
// bounded context and releases the store afterwards.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	c, closeStore, err := a.cfg.NewClient(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("close session store")
		}
	}()

	start := time.Now()
	err = fn(ctx, c)
	log.Debug().Str("command", cmd.CommandPath()).Dur("elapsed", time.Since(start)).Err(err).Msg("command finished")
	return err
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
