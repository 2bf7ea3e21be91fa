package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/information-sharing-networks/cicd-demo/internal/server"
	"github.com/information-sharing-networks/cicd-demo/internal/version"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the HTTP server on HOST:PORT and serve requests until interrupted`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func runServer(ctx context.Context) error {
	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.String("PUBLIC_DIR", cfg.PublicDir),
		slog.Any("ALLOWED_ORIGINS", cfg.AllowedOrigins),
		slog.Int64("MAX_REQUEST_BODY_SIZE", cfg.MaxRequestBodySize),
		slog.Int("RATE_LIMIT_RPS", int(cfg.RateLimitRPS)),
	)

	appLogger.Info("Starting server", slog.String("version", version.Get().Version))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.NewServer(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create server", slog.String("error", err.Error()))
		return err
	}

	if err := srv.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}
