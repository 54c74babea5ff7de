package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/calcunits/internal/config"
	"github.com/GriffinCanCode/calcunits/internal/logging"
	"github.com/GriffinCanCode/calcunits/internal/server"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred Sync runs before exit
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration, using defaults: %v\n", err)
		cfg = config.Default()
	}

	// Flags override environment
	port := flag.String("port", cfg.Server.Port, "Server port")
	host := flag.String("host", cfg.Server.Host, "Bind address")
	dev := flag.Bool("dev", cfg.Logging.Development, "Development mode (console logs, debug level)")
	level := flag.String("log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg.Server.Port = *port
	cfg.Server.Host = *host
	cfg.Logging.Development = *dev
	cfg.Logging.Level = *level
	if *dev && !isFlagSet("log-level") {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		logger = logging.NewDefault()
		logger.Warn("invalid log settings, using defaults",
			zap.String("level", cfg.Logging.Level),
			zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("calcunits server",
		zap.String("addr", cfg.Addr()),
		zap.Bool("metrics", cfg.Metrics.Enabled),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Bool("gzip", cfg.Compression.Enabled))

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", zap.Error(err))
		return 1
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case sig := <-sigChan:
		logger.Info("shutting down gracefully", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("error during shutdown", zap.Error(err))
			return 1
		}
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return 1
		}
	}
	return 0
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
