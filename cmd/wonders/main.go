// Package main runs the City of Wonders idle game in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wonders/internal/config"
	"github.com/cory-johannsen/wonders/internal/console"
	"github.com/cory-johannsen/wonders/internal/game/dice"
	"github.com/cory-johannsen/wonders/internal/game/gametime"
	"github.com/cory-johannsen/wonders/internal/gameserver"
	"github.com/cory-johannsen/wonders/internal/observability"
	"github.com/cory-johannsen/wonders/internal/server"
	"github.com/cory-johannsen/wonders/internal/storage"
	"github.com/cory-johannsen/wonders/internal/storage/memory"
	"github.com/cory-johannsen/wonders/internal/storage/postgres"
	"github.com/cory-johannsen/wonders/internal/storage/sqlite"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty = defaults and environment only")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting City of Wonders",
		zap.String("backend", cfg.Storage.Backend),
		zap.Duration("tick_interval", cfg.Game.TickInterval),
	)

	storeStart := time.Now()
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("opening store", zap.Error(err))
	}
	defer store.Close()
	logger.Info("store opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.Duration("elapsed", time.Since(storeStart)),
	)

	game := gameserver.NewGame(gameOptions(cfg, store, logger))
	restored, err := game.Init(ctx)
	if err != nil {
		logger.Fatal("loading saved game", zap.Error(err))
	}

	term := console.New(game, os.Stdin, os.Stdout, console.Options{
		Color:  !*noColor,
		Logger: logger.Named("console"),
	})

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("game", &server.FuncService{
		StartFn: func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
		StopFn: func() {
			game.Close(context.Background())
		},
	})
	lifecycle.Add("console", &server.FuncService{
		StartFn: term.Run,
	})

	logger.Info("game initialized",
		zap.Bool("restored", restored),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Error("game stopped", zap.Error(err))
		os.Exit(1)
	}
}

// openStore opens the storage backend cfg selects.
//
// Precondition: cfg must have passed Validate.
// Postcondition: Returns an open Store or a non-nil error.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return postgres.NewSaveRepository(pool), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// gameOptions maps configuration onto gameserver.Options. A non-zero seed
// makes every roll reproducible.
func gameOptions(cfg config.Config, store storage.Store, logger *zap.Logger) gameserver.Options {
	src := dice.NewCryptoSource()
	if cfg.Game.Seed != 0 {
		src = dice.NewSeededSource(cfg.Game.Seed)
	}
	return gameserver.Options{
		Store:           store,
		Key:             cfg.Storage.Key,
		Roller:          dice.NewLoggedRoller(src, logger.Named("dice")),
		Logger:          logger.Named("game"),
		TickInterval:    cfg.Game.TickInterval,
		Start:           gametime.GameTime{Day: gametime.StartDay, Hour: cfg.Game.StartHour},
		DisableAutosave: !cfg.Game.Autosave,
		EventLogCap:     cfg.Game.EventLogCap,
		SavedEventTail:  cfg.Game.SavedEventTail,
	}
}
