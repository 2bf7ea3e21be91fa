package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/information-sharing-networks/cicd-demo/internal/health"
	"github.com/spf13/cobra"
)

const statusTimeout = 5 * time.Second

var statusURL string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the health of a running server",
	Long:  `Query the health endpoint of a running server and print the result. Exits non-zero when the server is unreachable or unhealthy.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL := statusURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
		}

		appLogger.Debug("Status command", slog.String("url", baseURL))

		client := &http.Client{Timeout: statusTimeout}
		return checkStatus(cmd.Context(), client, baseURL, cmd.OutOrStdout())
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusURL, "url", "", "base URL of the server (default http://localhost:$PORT)")
}

// checkStatus calls GET <baseURL>/health and writes a summary to out
func checkStatus(ctx context.Context, client *http.Client, baseURL string, out io.Writer) error {
	healthURL := strings.TrimRight(baseURL, "/") + "/health"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server at %s is unhealthy: HTTP %d", baseURL, resp.StatusCode)
	}

	var status health.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("failed to decode health response: %w", err)
	}

	fmt.Fprintf(out, "status:   %s\n", status.Status)
	fmt.Fprintf(out, "instance: %s\n", status.InstanceID)
	fmt.Fprintf(out, "uptime:   %s\n", time.Duration(status.UptimeSeconds)*time.Second)
	return nil
}
