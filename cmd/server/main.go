// Package main is the entry point for the insertkit HTTP server: the JSON
// API under /v1 and the web UI under /ui.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"insertkit/internal/app"
	"insertkit/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("insertkit-server", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	listen := flags.String("listen", "", "listen address (overrides LISTEN_ADDR)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := config.LoadDotEnv(*envFile); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *listen != "" {
		cfg.ListenAddr = *listen
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	for _, w := range cfg.Warnings {
		logger.Warn("config warning", "warning", w)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           app.NewRouter(ctx, app.Deps{Cfg: cfg, Logger: logger, Version: version}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("shutting down server", "timeout", cfg.ShutdownTimeout.String())
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	scheme := "http"
	if cfg.HasTLS() {
		scheme = "https"
	}
	logger.Info("server listening",
		"addr", cfg.ListenAddr,
		"env", cfg.Env,
		"tls", cfg.HasTLS(),
		"version", version,
	)
	logger.Info("try it",
		"ui", scheme+"://"+curlHostForListenAddr(cfg.ListenAddr)+"/ui",
		"curl", fmt.Sprintf(`curl -s -X POST %s://%s/v1/insert/parse -d '{"sql":"INSERT INTO t (a) VALUES (1)"}'`,
			scheme, curlHostForListenAddr(cfg.ListenAddr)),
	)

	if cfg.HasTLS() {
		err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
	} else {
		err = srv.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	<-shutdownDone
	return nil
}

// curlHostForListenAddr turns a listen address into a host:port a local
// client can dial. Wildcard and empty hosts become localhost.
func curlHostForListenAddr(listenAddr string) string {
	addr := strings.TrimSpace(listenAddr)
	if addr == "" {
		return "localhost:8080"
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
