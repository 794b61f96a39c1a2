package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/stringjsx/internal/errors"
	"github.com/vango-dev/stringjsx/pkg/middleware"
	"github.com/vango-dev/stringjsx/pkg/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		addr      string
		noPublish bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendering over HTTP and WebSocket",
		Long: `Start the render server.

Routes:
  POST /render          render the request body, respond with HTML
  POST /render/{key}    render and publish under key
  GET  /ws              render every text frame
  GET  /healthz         liveness
  GET  /metrics         Prometheus metrics

Examples:
  stringjsx serve
  stringjsx serve --addr :9000
  STRINGJSX_ADDR=0.0.0.0:8080 stringjsx serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := a.newServer(ctx, addr, !noPublish, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
			if err != nil {
				return err
			}
			return runServer(ctx, srv)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides config)")
	cmd.Flags().BoolVar(&noPublish, "no-publish", false, "Disable POST /render/{key}")

	return cmd
}

// newServer wires the server from config.
func (a *app) newServer(ctx context.Context, addr string, withPublish bool, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*server.Server, error) {
	cfg := server.DefaultConfig()
	cfg.Addr = a.cfg.Server.Addr
	if addr != "" {
		cfg.Addr = addr
	}
	cfg.MaxBodyBytes = a.cfg.Server.MaxBodyBytes
	cfg.ReadTimeout = a.cfg.ReadTimeout()
	cfg.WriteTimeout = a.cfg.WriteTimeout()
	cfg.TracerName = a.cfg.Server.TracerName

	metrics := middleware.NewMetrics(
		middleware.WithNamespace(a.cfg.Server.MetricsNamespace),
		middleware.WithRegistry(reg),
	)

	opts := []server.Option{
		server.WithRenderer(a.renderer()),
		server.WithRegistry(builtinComponents()),
		server.WithMetrics(metrics, gatherer),
		server.WithLogger(a.logger),
	}

	if withPublish {
		store, backend, err := a.openStore(ctx)
		if err != nil {
			return nil, err
		}
		opts = append(opts, server.WithStore(store, backend))
	}

	return server.New(cfg, opts...), nil
}

func runServer(ctx context.Context, srv *server.Server) error {
	if err := srv.Run(ctx); err != nil {
		return errors.Newf(errors.CategoryCLI, "server stopped").Wrap(err)
	}
	return nil
}
