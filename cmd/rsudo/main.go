package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/codex-k8s/rsudo/internal/commands"
	"github.com/codex-k8s/rsudo/internal/config"
	httpapi "github.com/codex-k8s/rsudo/internal/http"
	"github.com/codex-k8s/rsudo/internal/i18n"
	"github.com/codex-k8s/rsudo/internal/log"
	"github.com/codex-k8s/rsudo/internal/telegram"
	"github.com/codex-k8s/rsudo/internal/telegram/updates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, sink, err := log.New(cfg.ServiceName, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log error: %v\n", err)
		os.Exit(1)
	}
	fail := func(msg string, err error) {
		logger.Error(msg, "error", err)
		_ = sink.Close()
		os.Exit(1)
	}

	logger.Info("RSudo is starting")

	bundle, err := i18n.Load(cfg.Lang)
	if err != nil {
		fail("failed to load i18n", err)
	}

	var server *httpapi.Server
	var observer updates.PollObserver
	if cfg.HTTPEnabled() {
		staleAfter := 2 * (cfg.PollInterval + cfg.RequestTimeout)
		server = httpapi.New(cfg.HTTPAddr(), staleAfter, logger)
		observer = server
	}

	service, err := telegram.New(cfg, bundle, commands.HostUptime, observer, logger)
	if err != nil {
		fail("failed to init telegram service", err)
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	if server != nil {
		server.SetReady(true)
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	loopDone := make(chan error, 1)
	go func() { loopDone <- service.Run(baseCtx) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown requested, releasing log handlers", "signal", sig.String())
	case err := <-errCh:
		logger.Error("http server stopped", "error", err)
	case err := <-loopDone:
		logger.Error("poll loop exited", "error", err)
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if server != nil {
		server.SetReady(false)
		_ = server.Shutdown(shutdownCtx)
	}
	select {
	case <-loopDone:
	case <-shutdownCtx.Done():
		logger.Warn("poll loop did not stop in time")
	}

	logger.Info("shutdown complete, good luck")
	if err := sink.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log: %v\n", err)
	}
}
