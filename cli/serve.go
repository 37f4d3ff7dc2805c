package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pagamentos/config"
	"pagamentos/database"
	"pagamentos/middleware"
	"pagamentos/router"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()
			if port != "" {
				if !strings.HasPrefix(port, ":") {
					port = ":" + port
				}
				cfg.Server.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, e.g. 8080 or :8080")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	middleware.InitJWT(cfg)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           router.SetupRouter(cfg, database.GetDB()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started",
			"addr", cfg.Server.Port,
			"api", "http://localhost"+cfg.Server.Port+"/api/v1/",
			"swagger", "http://localhost"+cfg.Server.Port+"/swagger/index.html",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
