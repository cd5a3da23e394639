package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ukaji3/escala-go/internal/config"
	"github.com/ukaji3/escala-go/internal/server"
)

func newServeCmd() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extraction HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, cfg.Logger()).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
