package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"admin-dashboard/internal/app"
	"admin-dashboard/internal/config"
	"admin-dashboard/internal/logging"
	"admin-dashboard/internal/types"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	route      string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "admin-dashboard",
	Short: "Responsive admin dashboard in the terminal",
	Long:  "A terminal admin dashboard with a collapsible sidebar, a profile menu and overview, analytics and settings pages",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// This is the default behavior - start the TUI
		return startTUI(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/admin-dashboard/config.yaml)")
	rootCmd.Flags().StringVar(&route, "route", "", "page to open first (/dashboard, /analytics or /settings)")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func loadConfig() error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func startTUI(cmd *cobra.Command) error {
	if route != "" {
		cfg.InitialRoute = types.Route(route)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// Log to a file to avoid interfering with the TUI
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dashboard, err := app.CreateApp(cmd.Context(), app.Options{Config: cfg, Logger: logger})
	if err != nil {
		logger.Error("create dashboard", zap.Error(err))
		return err
	}
	return dashboard.Run()
}
