package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/homepage"
	"github.com/dmitrymomot/homepage/pkg/config"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `Starts the HTTP server. It stops gracefully on SIGINT or SIGTERM, waiting
up to server.shutdown_timeout for in-flight requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

// serve runs the site until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, runOpts ...homepage.RunOption) error {
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	s, err := newSite(cfg, log)
	if err != nil {
		return err
	}

	opts := append([]homepage.RunOption{
		homepage.WithContext(ctx),
		homepage.ShutdownTimeout(cfg.Server.ShutdownTimeout),
		homepage.StartupHook(s.library.Check),
		homepage.ShutdownHook(s.shutdown(cfg.Server.ShutdownTimeout)),
		homepage.OnListen(func(a net.Addr) {
			log.Info("listening", "addr", a.String(), "version", Version)
		}),
	}, runOpts...)

	return s.app.Run(cfg.Server.Addr, opts...)
}
