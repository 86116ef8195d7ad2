package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/conduit/logger"
)

// runTask runs a finite task whose context is canceled on SIGINT or SIGTERM.
func runTask(ctx context.Context, log *logger.Logger, task func(ctx context.Context) error) error {
	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			log.Info("received signal, canceling run", logger.Fields("signal", sig.String()))
			cancel()
		case <-taskCtx.Done():
		}
	}()

	return task(taskCtx)
}
