package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/ministry-cms/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		return fmt.Errorf("server init failed: %w", err)
	}

	if err := srv.Start(); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	srv.infra.Logger.Info("service stopped gracefully")
	return nil
}
