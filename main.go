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

	"github.com/domainlens/domainlens/internal/config"
	"github.com/domainlens/domainlens/internal/logging"
	"github.com/domainlens/domainlens/internal/rank"
	"github.com/domainlens/domainlens/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	logger := logging.NewStdoutLogger("domainlens")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}

	ranks, cleanup, err := buildRankSource(cfg)
	if err != nil {
		logger.Error("building rank source", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
	defer cleanup()

	srv, err := server.NewServer(server.Config{
		ListenAddr:    cfg.Server.ListenAddr,
		Ranks:         ranks,
		Weights:       cfg.Score,
		RatePerSecond: cfg.Server.RatePerSecond,
		RateBurst:     cfg.Server.RateBurst,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("creating server", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}

	httpServer := srv.HTTPServer()

	go func() {
		logger.Info("server ready", logging.Field{Key: "addr", Value: cfg.Server.ListenAddr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", logging.Field{Key: "error", Value: err.Error()})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Warn("shutdown", logging.Field{Key: "error", Value: err.Error()})
	}
	logger.Info("server stopped")
}

// buildRankSource assembles the configured dataset backend, wrapped with a
// TTL cache when enabled.
func buildRankSource(cfg config.Config) (rank.Source, func(), error) {
	var (
		src     rank.Source
		cleanup = func() {}
	)

	switch cfg.Rank.Backend {
	case "", "shards":
		src = rank.NewFileSource(cfg.Rank.ShardDir)
	case "sqlite":
		db, err := rank.OpenSQLiteSource(cfg.Rank.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		src = db
		cleanup = func() { _ = db.Close() }
	default:
		return nil, nil, fmt.Errorf("unknown rank backend %q", cfg.Rank.Backend)
	}

	if cfg.Rank.CacheTTL > 0 {
		src = rank.NewCachedSource(src, cfg.Rank.CacheTTL)
	}
	return src, cleanup, nil
}
