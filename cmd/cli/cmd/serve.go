// Package cmd - serve command
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storage-cost/api"
	"storage-cost/core/engine"
	"storage-cost/internal/config"
	"storage-cost/internal/logging"
)

var (
	serveAddr    string
	serveCatalog string
)

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the estimation API over HTTP",
	Long: `Serve the estimation API.

Endpoints:
  POST /estimate   rank providers for a usage profile
  GET  /providers  list the loaded catalog
  GET  /health     liveness
  GET  /version    build information`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		cat, err := loadCatalog(serveCatalog)
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.Server.Addr
		}

		logger := logging.With(zap.String("component", "api"))
		server := api.NewServer(
			engine.New(cat, engine.WithLogger(logging.With(zap.String("component", "engine")))),
			api.Options{
				Version:   Version,
				MaxMonths: cfg.Server.MaxMonths,
				Logger:    logger,
			},
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("listening", zap.String("addr", addr), zap.Int("providers", cat.Len()))
		return server.ListenAndServe(ctx, addr, cfg.Server.ReadTimeoutDuration())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().StringVarP(&serveCatalog, "catalog", "c", "", "provider catalog file (HCL, YAML or JSON)")
}
