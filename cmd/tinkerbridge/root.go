package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tinkerbridge/tinkerbridge/cmd/tinkerbridge/internal"
	"github.com/tinkerbridge/tinkerbridge/internal/config"
)

// Global flags
var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string
)

// cfg holds the configuration loaded by the persistent pre-run hook.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tinkerbridge",
	Short: "tinkerbridge - GraphSON translation bridge",
	Long: `tinkerbridge translates graph-exchange documents from the untyped
GraphSON encoding, as emitted by older graph database servers, into the
typed GraphSON 3.0 encoding expected by modern client libraries.

Documents are read from a file or stdin and written to a file or stdout;
no connection to a database is opened.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig is called before any command runs to load configuration and set
// up logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	internal.SetVerbose(verbose)

	// init, version, and help must work without a config file.
	if cmd.Name() == "init" || cmd.Name() == "version" || cmd.Name() == "help" {
		cfg = config.DefaultConfig()
		return nil
	}

	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath(config.DefaultHomeDir())
	}

	loaded, err := config.NewConfigLoader(config.NewValidator()).LoadWithDefaults(path)
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to load configuration", err)
	}
	cfg = loaded

	// Flags override the file.
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	setupLogging(cfg.Logging)
	return nil
}

// setupLogging installs the default slog logger according to configuration.
// Logs go to stderr so stdout stays reserved for translated documents.
func setupLogging(lc config.LoggingConfig) {
	level := slog.LevelInfo
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if lc.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default ~/.tinkerbridge/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
