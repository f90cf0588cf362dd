// Command quotectl drafts quotes from the terminal using the same catalog,
// pricing and drafting pipeline as the API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tapquote_backend/platform/config"
	"tapquote_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	// stdout carries command output; logs go to stderr.
	log := logger.NewWithWriter(cfg.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := newEnv(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	if err := newRootCmd(deps).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
