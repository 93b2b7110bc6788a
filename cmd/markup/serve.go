package main

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/pkg/preview"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the HTTP preview server.

The server renders attribute, tag and select documents posted to /v1
and exposes Prometheus metrics on /metrics.

Examples:
  markup serve
  markup serve --port=9000
  markup serve --config=deploy/markup.yaml --tracing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if tracing {
				cfg.Tracing.Enabled = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd, cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from markup.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from markup.yaml)")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Trace requests with OpenTelemetry")

	return cmd
}

func runServe(cmd *cobra.Command, cfg *config.Config) error {
	w := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	printBanner(w)
	info(w, "serve")
	if path := cfg.Path(); path != "" {
		info(w, "config: %s", path)
	}
	success(w, "Listening on http://%s", cfg.ServerAddress())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return preview.New(cfg, preview.WithLogger(logger)).Run(ctx)
}

// newLogger builds the slog logger markup.yaml asks for.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

