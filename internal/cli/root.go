// Package cli implements adminctl, a terminal client for the admin console.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"curiona-admin/internal/config"
	"curiona-admin/internal/version"

	"github.com/spf13/cobra"
)

const (
	EnvConsoleURL = "ADMINCTL_CONSOLE"
	EnvEmail      = "ADMINCTL_EMAIL"
	EnvPassword   = "ADMINCTL_PASSWORD"
	EnvOAuthToken = "ADMINCTL_OAUTH_TOKEN"

	defaultConsoleURL = "http://localhost:8080"
)

type options struct {
	consoleURL string
	email      string
	password   string
	oauthToken string
	timeout    time.Duration
	output     string
	verbose    bool

	refreshThreshold time.Duration
	checkInterval    time.Duration
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewRootCmd builds the adminctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "adminctl",
		Short: "Administer the Curiona platform from the command line",
		Long: `adminctl signs in to a running Curiona admin console and drives its
admin API: platform statistics, user moderation and roadmap management.

Every command signs in, runs, and signs out again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.refreshThreshold <= 0 {
				return fmt.Errorf("--refresh-threshold must be positive")
			}
			if opts.checkInterval <= 0 {
				return fmt.Errorf("--check-interval must be positive")
			}

			switch opts.output {
			case formatTable, formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("unsupported output format %q (table, json, yaml)", opts.output)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.consoleURL, "console", envOr(EnvConsoleURL, defaultConsoleURL), "admin console URL (env "+EnvConsoleURL+")")
	flags.StringVar(&opts.email, "email", os.Getenv(EnvEmail), "administrator email (env "+EnvEmail+")")
	flags.StringVar(&opts.password, "password", os.Getenv(EnvPassword), "administrator password (env "+EnvPassword+", prompted when omitted)")
	flags.StringVar(&opts.oauthToken, "oauth-token", os.Getenv(EnvOAuthToken), "sign in with a Google access token instead of a password (env "+EnvOAuthToken+")")
	flags.DurationVar(&opts.timeout, "timeout", 15*time.Second, "per-request timeout")
	flags.StringVarP(&opts.output, "output", "o", formatTable, "output format (table, json, yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests and token refreshes")
	flags.DurationVar(&opts.refreshThreshold, "refresh-threshold", config.DefaultSessionConfig.RefreshThreshold, "refresh window around access token expiry")
	flags.DurationVar(&opts.checkInterval, "check-interval", config.DefaultSessionConfig.CheckInterval, "how often the session expiry is checked")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
		},
	})
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newUsersCmd(opts))
	rootCmd.AddCommand(newRoadmapsCmd(opts))

	return rootCmd
}

// Execute runs adminctl and reports the error on stderr.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
