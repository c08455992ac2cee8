package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talent-ai/internal/app"
	"talent-ai/internal/config"
	"talent-ai/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const name = "talent-ai"

// Actual version can be specified in build command.
var version = app.Version

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           name,
		Short:         "AI microservice for job matching and candidate evaluation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE:  serve,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("%s version: %s\n", name, version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file, e.g. a .env file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("port", "p", "", "HTTP port (overrides HTTP_PORT)")

	rootCmd.AddCommand(serveCmd, versionCmd)
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v, err := config.New(cfgFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"log_debug": "debug",
		"log_json":  "json",
		"http_port": "port",
	} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return config.Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	return config.Load(v)
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to bootstrap app: %w", err)
	}
	defer func() {
		// stdout sync errors are expected on some platforms
		_ = cleanup()
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	log.Info("starting server",
		zap.String("app", cfg.App.AppName),
		zap.String("env", cfg.App.Environment),
		zap.String("version", version),
		zap.String("addr", addr),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("shutdown error", zap.Error(err))
		}
	}

	return nil
}
