package app

import (
	"log/slog"
	"time"

	"github.com/oggyb/lovespark/internal/auth"
	"github.com/oggyb/lovespark/internal/config"
	"github.com/oggyb/lovespark/internal/store"
)

// AppContext holds shared dependencies (Store, Logger, JWT, etc.)
type AppContext struct {
	Store  store.Store
	Logger *slog.Logger
	Config *config.Config
	JWT    *auth.JWTManager
	// Now is the service clock; tests pin it.
	Now func() time.Time
}

// New creates a new AppContext
func New(s store.Store, logger *slog.Logger, cfg *config.Config) *AppContext {
	return &AppContext{
		Store:  s,
		Logger: logger,
		Config: cfg,
		JWT:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Now:    time.Now,
	}
}
