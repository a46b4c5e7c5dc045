// Package main implements the foliod daemon: an HTTP server that browses a
// directory tree of data-analysis projects.
//
// Usage:
//
//	# Start with defaults (catalog root ./projects, port 8080)
//	foliod serve
//
//	# Point at a catalog and configure via environment
//	CATALOG_ROOT=/srv/portfolio SERVER_PORT=9000 foliod serve
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fernworks/foliod/internal/catalog"
	"github.com/fernworks/foliod/internal/config"
	"github.com/fernworks/foliod/internal/logging"
	"github.com/fernworks/foliod/internal/session"
	"github.com/fernworks/foliod/internal/upload"
	"github.com/fernworks/foliod/internal/web"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "foliod",
	Short: "Portfolio browsing server for data-analysis project directories",
	Long: `foliod serves a browsable web UI over a directory of analysis projects.
Each project folder may hold a preview image, CSV datasets, exported
notebook HTML, and a video pointer file; foliod scans the tree on every
request and renders it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the foliod HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("foliod %s (%s)\n", version, gitCommit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/foliod/config.yaml)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// runServe wires the daemon together and blocks until shutdown:
//  1. Loads and validates configuration
//  2. Initializes the logger
//  3. Builds the catalog scanner, session store, and upload handler
//  4. Starts the HTTP server
//  5. Performs graceful shutdown on SIGINT/SIGTERM
func runServe() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.NewLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync() // Best-effort sync on shutdown
	}()

	logger.Info("starting foliod",
		zap.String("version", version),
		zap.Int("port", cfg.Server.Port),
		zap.String("catalog_root", cfg.Catalog.Root),
		zap.Int("categories", len(cfg.Catalog.Categories)),
	)

	categories := make([]catalog.Category, 0, len(cfg.Catalog.Categories))
	for _, c := range cfg.Catalog.Categories {
		categories = append(categories, catalog.Category{Label: c.Label, Folder: c.Folder})
	}
	scanner := catalog.NewScanner(cfg.Catalog.Root, categories, logger.Named("catalog"))
	sessions := session.NewStore(session.DefaultMaxSessions)
	uploads := upload.NewHandler(cfg.Catalog.Root, logger.Named("upload"))
	metrics := web.NewMetrics(nil)

	srv, err := web.NewServer(scanner, sessions, uploads, metrics, logger.Named("web"), &web.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		MaxUploadBytes: cfg.Upload.MaxSizeBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx, cfg.Server.ShutdownTimeout.Duration()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
