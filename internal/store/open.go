package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oggyb/lovespark/internal/config"
	"github.com/oggyb/lovespark/internal/db"
)

// Open builds the backend named by cfg.Store.Backend and checks it is reachable.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.Store.Backend {
	case "redis", "":
		s = NewRedisStore(cfg)

	case "badger":
		s, err = OpenBadger(BadgerConfig{
			Path:       cfg.Store.BadgerPath,
			SyncWrites: cfg.Store.BadgerSyncWrites,
			Logger:     log.With("subsystem", "badger"),
			GCInterval: 5 * time.Minute,
		})

	case "sql":
		database, dbErr := db.NewDB(cfg)
		if dbErr != nil {
			return nil, dbErr
		}
		s = NewSQLStore(database)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Ping(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("store %s unreachable: %w", cfg.Store.Backend, err)
	}
	log.Info("store ready", "backend", cfg.Store.Backend)
	return s, nil
}
