package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"lemonade-stand/internal/config"
	"lemonade-stand/internal/engine"
	"lemonade-stand/internal/input"
	"lemonade-stand/internal/recorder"
	"lemonade-stand/internal/report"
	"lemonade-stand/internal/scheduler"
	"lemonade-stand/internal/session"
	"lemonade-stand/internal/weather"

	"github.com/charmbracelet/log"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(true)

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("config validation", "err", err)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal("parse log level", "err", err)
	}
	log.SetLevel(level)
	log.Info("lemonade stand starting", "config", cfgPath)

	rec := openRecorder(cfg)
	defer rec.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("weather seeded", "seed", seed)
	gen := weather.NewSeededGenerator(seed)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	out := report.NewConsoleNotifier(os.Stdout)
	if cfg.Autoplay.Enabled {
		runAutoplay(ctx, cfg, gen, out, rec, sigCh)
	} else {
		runConsole(ctx, cfg, gen, out, rec, sigCh)
	}

	cancel()
	log.Info("lemonade stand stopped")
}

func openRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.Driver == config.DriverNone {
		return recorder.NewNoopRecorder()
	}
	if cfg.Database.Driver == config.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.DSN), 0o755); err != nil {
			log.Warn("create database directory failed, using noop", "err", err)
			return recorder.NewNoopRecorder()
		}
	}
	sr, err := recorder.NewSQLRecorder(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Warn("init recorder failed, using noop", "driver", cfg.Database.Driver, "err", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}

func runConsole(ctx context.Context, cfg *config.Config, gen *weather.Generator, out report.Notifier,
	rec recorder.Recorder, sigCh <-chan os.Signal) {
	console := input.NewConsole(os.Stdin, os.Stdout)

	errCh := make(chan error, 1)
	go func() {
		errCh <- session.Interactive(ctx, console, out, rec, gen, cfg.Players)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("game ended with error", "err", err)
		}
	case <-sigCh:
		log.Info("shutdown signal received, stopping...")
	}
}

func runAutoplay(ctx context.Context, cfg *config.Config, gen *weather.Generator, out report.Notifier,
	rec recorder.Recorder, sigCh <-chan os.Signal) {
	a := cfg.Autoplay
	sess := session.New(engine.NewGame(max(cfg.Players, 1)), gen,
		&input.Autopilot{Glasses: a.Glasses, Signs: a.Signs, PriceCents: a.Price}, out, rec, 1)

	sched, err := scheduler.NewScheduler(ctx, sess, out, a.Cron, a.MaxDays)
	if err != nil {
		log.Fatal("register autoplay", "err", err)
	}
	sched.Start()
	defer sched.Stop()

	select {
	case <-sched.Done():
	case <-sigCh:
		log.Info("shutdown signal received, stopping...")
	}
}
