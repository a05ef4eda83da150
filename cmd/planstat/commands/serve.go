package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/ougirez/planstat/internal/api"
	"github.com/ougirez/planstat/internal/pkg/logger"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the statistics HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := openStore(ctx, cfg)
		if err != nil {
			return fmt.Errorf("openStore: %w", err)
		}
		defer st.Close()

		svc, err := api.NewAPIService(st, cfg)
		if err != nil {
			return fmt.Errorf("api.NewAPIService: %w", err)
		}

		go svc.Serve(cfg.HTTPAddr)
		logger.Infof(ctx, "listening on %s", cfg.HTTPAddr)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Infof(shutdownCtx, "shutting down")
		return svc.Shutdown(shutdownCtx)
	},
}
