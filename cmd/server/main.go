// Package main - Entry point for the greenwatt dashboard API server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"greenwatt/api"
	"greenwatt/core/market"
	"greenwatt/core/preset"
	"greenwatt/internal/collector"
	"greenwatt/internal/config"
	"greenwatt/internal/logging"
	"greenwatt/internal/recorder"
	"greenwatt/internal/scheduler"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "config file path (default "+config.DefaultPath+" when present)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	registry, err := preset.Load(cfg.Calc.PresetFile)
	if err != nil {
		logging.Fatal("load presets", zap.Error(err))
	}

	snapshot, err := market.LoadSnapshot(cfg.Market.FixturePath)
	if err != nil {
		logging.Fatal("load market fixture", zap.Error(err))
	}
	scores, err := market.LoadScores(cfg.Market.ScoresPath)
	if err != nil {
		logging.Fatal("load score fixture", zap.Error(err))
	}
	store := market.NewStore(snapshot, scores)

	var rec recorder.Recorder = recorder.NewNoop()
	if cfg.Database.SQLitePath != "" {
		sqliteRec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			logging.Fatal("open price history db", zap.Error(err))
		}
		rec = sqliteRec
	}
	defer rec.Close()

	portal := collector.New(cfg.Portal)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, store, rec, portal, cfg.Market.FixturePath)
	if err := sched.Register(cfg.Market.RefreshCron); err != nil {
		logging.Fatal("register refresh schedule", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	server := api.NewServer(version, registry, store, rec, portal)
	logging.Info("greenwatt server listening", zap.String("addr", listenAddr))

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe(listenAddr) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logging.Fatal("server stopped", zap.Error(err))
	case sig := <-sigCh:
		logging.Info("shutting down", zap.String("signal", sig.String()))
	}
}
