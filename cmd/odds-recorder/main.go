package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/utakatalp/odds-recorder/internal/api"
	"github.com/utakatalp/odds-recorder/internal/config"
	"github.com/utakatalp/odds-recorder/internal/store"
)

func main() {
	configFlag := flag.String("config", "", "Path to the YAML config (default $ODDS_CONFIG_PATH or ./fixtures/config.yml)")
	migrateOnly := flag.Bool("migrate", false, "Apply the database schema and exit")
	flag.Parse()

	configPath := "./fixtures/config.yml"
	if p := os.Getenv("ODDS_CONFIG_PATH"); p != "" {
		configPath = p
	}
	if *configFlag != "" {
		configPath = *configFlag
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "path", configPath, "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	})).With("service", "odds-recorder")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		cancel()
		slog.Error("failed to open database", "host", cfg.DB.Host, "dbname", cfg.DB.DBName, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	err = st.Migrate(ctx)
	cancel()
	if err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database initialized", "dbname", cfg.DB.DBName)
	if *migrateOnly {
		return
	}

	server := api.NewServer(cfg.Server.Addr, st)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("received signal, shutting down", "signal", sig)
		server.Stop()
	case err := <-errCh:
		if err != nil {
			slog.Error("http server error", "error", err)
			st.Close()
			os.Exit(1)
		}
	}

	slog.Info("odds-recorder stopped")
}
