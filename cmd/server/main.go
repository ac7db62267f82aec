// Package main is the entry point for the dashboard server.
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
	"golang.org/x/sync/errgroup"

	"titanic-dash/internal/app"
	"titanic-dash/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	listen := pflag.String("listen", "", "HTTP listen address (overrides LISTEN_ADDR)")
	datasetPath := pflag.String("dataset", "", "dataset path or URL (overrides DATASET_PATH)")
	envFile := pflag.String("env-file", ".env", "dotenv file to load before reading the environment")
	pflag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load %s: %v\n", *envFile, err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *listen != "" {
		cfg.ListenAddr = *listen
	}
	if *datasetPath != "" {
		cfg.Dataset.Path = *datasetPath
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	application, err := app.New(ctx, app.Deps{Cfg: cfg, Logger: logger})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           application.Router(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scheme := "http"
		if cfg.TLSCertFile != "" {
			scheme = "https"
		}
		logger.Info("dashboard listening",
			"addr", cfg.ListenAddr,
			"url", fmt.Sprintf("%s://%s/ui", scheme, curlHostForListenAddr(cfg.ListenAddr)),
		)
		var err error
		if cfg.TLSCertFile != "" {
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// curlHostForListenAddr turns a listen address into something a browser or
// curl can reach: wildcard and empty hosts become localhost.
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
