package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/solopong/bollywood"
	"github.com/lguibr/solopong/game"
	"github.com/lguibr/solopong/internal/log"
	"github.com/lguibr/solopong/server"
	"github.com/lguibr/solopong/utils"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	addr := flag.String("addr", "", "listen address (overrides the config)")
	logLevel := flag.String("log-level", "", "log level (overrides the config)")
	flag.Parse()

	if err := run(*configPath, *addr, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "solopong: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, addr, logLevel string) error {
	cfg := utils.DefaultConfig()
	if configPath != "" {
		loaded, err := utils.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if addr != "" {
		cfg.ListenAddr = addr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger := log.New(os.Stderr, log.LevelFromString(cfg.LogLevel))
	engine := bollywood.NewEngineWithLogger(logger)

	props, err := game.NewSessionProps(game.SessionArgs{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}
	sessionPID := engine.Spawn(props)
	if sessionPID == nil {
		return errors.New("failed to spawn session actor")
	}

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(engine, sessionPID, logger).Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Session started, listening on %s", cfg.ListenAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		engine.Shutdown(2 * time.Second)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case sig := <-sigCh:
		logger.Infof("Received %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Warnf("HTTP shutdown: %v", err)
	}
	engine.Shutdown(2 * time.Second)
	return nil
}
