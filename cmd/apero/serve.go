package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GustavoCaso/apero/internal/log"
	"github.com/GustavoCaso/apero/internal/server"
	"github.com/GustavoCaso/apero/internal/store"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the API endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if err := cfg.Server.Validate(); err != nil {
				return fmt.Errorf("invalid server config: %w", err)
			}

			logger := log.WithComponent("server")

			st, err := store.Open(cfg.Server.StorePath)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer func() {
				if err := st.Close(); err != nil {
					logger.Warn().Err(err).Msg("failed to close store")
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg.Server, st, logger).Run(ctx)
		},
	}
}
