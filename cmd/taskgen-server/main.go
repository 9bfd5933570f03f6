// cmd/taskgen-server/main.go
//
// Generation service daemon. Binds the configured address, serves the
// generate/history/health endpoints and drains cleanly on SIGINT/SIGTERM.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ghanshambordekar3/Task-Generator/internal/config"
	"github.com/ghanshambordekar3/Task-Generator/internal/logbook"
	"github.com/ghanshambordekar3/Task-Generator/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskgen-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	if err := config.InitTaskgenDir(projectDir); err != nil {
		return fmt.Errorf("init %s: %w", config.TaskgenDir, err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return err
	}
	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "server.log"))
	if err != nil {
		return fmt.Errorf("open logbook: %w", err)
	}

	srv := server.NewServer(server.SettingsFromConfig(cfg), server.WithLogger(lb))
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return err
	}
	fmt.Printf("taskgen-server listening on %s\n", srv.BaseURL())

	<-ctx.Done()
	lb.Info("Shutdown signal received")

	drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	lb.Info("Server stopped")
	return nil
}
