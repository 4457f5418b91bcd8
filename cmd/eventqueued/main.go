// Command eventqueued hosts the configured event queues, drains them, and
// serves introspection and state control over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-eventqueue/pkg/logger"
	"github.com/huynhanx03/go-eventqueue/pkg/settings"
)

func main() {
	configPath := flag.String("config", envOr("EVENTQUEUE_CONFIG", "configs/config.yaml"),
		"Path to the YAML configuration file (env: EVENTQUEUE_CONFIG)")
	validateOnly := flag.Bool("validate", false, "Validate the configuration and exit")
	flag.Parse()

	cfg, err := settings.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "eventqueued: %v\n", err)
		os.Exit(1)
	}
	if *validateOnly {
		fmt.Println("configuration is valid")
		return
	}

	log := logger.New(cfg.Logger)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("eventqueued failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
