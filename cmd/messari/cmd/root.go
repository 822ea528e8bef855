package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/prometa-ai/messari-go/pkg/messari"
)

var (
	flagAPIKey  string
	flagBaseURL string
	flagTimeout time.Duration
	flagVerbose bool
)

// rootCmd represents the base command. Without a subcommand it drops into
// the interactive menu loop.
var rootCmd = &cobra.Command{
	Use:   "messari",
	Short: "Messari API playground",
	Long: `Explore the Messari cryptocurrency data API from the terminal.

Use the list, describe and call subcommands for one-shot operations, or run
with no subcommand to enter an interactive menu. The API key is read from
the --api-key flag, the MESSARI_API_KEY environment variable, or a .env
file in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()
		return runInteractive(cmd.Context(), client)
	},
}

// Execute runs the CLI. Errors are written to stderr with their kind and
// the process exits non-zero.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %s: %s\n", errorKind(err), err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Messari API key (default: MESSARI_API_KEY env var)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", messari.DefaultBaseURL, "Messari API base URL")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", messari.DefaultTimeout, "per-request timeout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log HTTP requests and responses")
}

// loadDotEnv loads a .env file when one exists; a missing file is fine.
func loadDotEnv() {
	_ = godotenv.Load()
}

// newClient builds a client from the persistent flags.
func newClient() (*messari.Client, error) {
	cfg := messari.DefaultConfig().
		WithAPIKey(flagAPIKey).
		WithBaseURL(flagBaseURL).
		WithTimeout(flagTimeout)

	return messari.New(cfg, messari.WithLogger(newLogger()))
}

func newLogger() zerolog.Logger {
	if !flagVerbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// errorKind labels an error for stderr output so shell callers can grep on
// a stable token.
func errorKind(err error) string {
	switch {
	case messari.IsConfigError(err):
		return "CONFIG_ERROR"
	case messari.IsUnknownEndpoint(err):
		return "UNKNOWN_ENDPOINT"
	case messari.IsMissingPathParam(err):
		return "MISSING_PATH_PARAM"
	case messari.IsAuthError(err):
		return "AUTH_ERROR"
	case messari.IsRateLimitError(err):
		return "RATE_LIMIT"
	}
	var apiErr *messari.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind.String()
	}
	return "ERROR"
}
