package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/discdb/internal/config"
	"github.com/vmunix/discdb/pkg/discdb"
)

var version = "dev"

var (
	configPath string
	originFlag string
	logLevel   string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "discdb",
	Short: "Identify disc backups with TheDiscDB",
	Long: `discdb - command line client for TheDiscDB

Hashes Blu-ray and DVD backups and looks them up in the catalog
by content hash, release slug or external id.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&originFlag, "origin", "", "Catalog origin (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("discdb {{.Version}}\n")
}

// env is what a command needs to talk to the catalog.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	client *discdb.Client
}

// setup loads the configuration, applies flag overrides and builds the client.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, path, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if originFlag != "" {
		cfg.Client.Origin = originFlag
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if path != "" {
		log.Debug("loaded config", "path", path)
	}

	return &env{
		cfg:    cfg,
		log:    log,
		client: newClient(cfg, log),
	}, nil
}

func newClient(cfg *config.Config, log *slog.Logger) *discdb.Client {
	return discdb.New(
		discdb.WithOrigin(cfg.Client.Origin),
		discdb.WithHTTPClient(&http.Client{Timeout: cfg.Client.Timeout}),
		discdb.WithLogger(log),
	)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
