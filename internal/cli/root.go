package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/information-sharing-networks/cicd-demo/internal/config"
	"github.com/information-sharing-networks/cicd-demo/internal/logger"
	"github.com/information-sharing-networks/cicd-demo/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.ServerEnvironment
	appLogger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:               "cicd-demo",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "CI/CD demo HTTP service",
	Long: `cicd-demo serves a service information endpoint and health checks over HTTP.

Running the command without a subcommand starts the server (same as "cicd-demo serve").
The server is configured with environment variables (PORT, ENVIRONMENT, PUBLIC_DIR, LOG_LEVEL ...)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.NewServerConfig()
		if err != nil {
			log.Printf("failed to load configuration: %v", err.Error())
			return err
		}

		appLogger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func Execute() {
	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}
