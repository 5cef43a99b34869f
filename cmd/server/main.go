package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/oggyb/lovespark/internal/app"
	"github.com/oggyb/lovespark/internal/config"
	"github.com/oggyb/lovespark/internal/logger"
	"github.com/oggyb/lovespark/internal/seed"
	"github.com/oggyb/lovespark/internal/server"
	"github.com/oggyb/lovespark/internal/service/account"
	"github.com/oggyb/lovespark/internal/service/chat"
	"github.com/oggyb/lovespark/internal/service/explore"
	"github.com/oggyb/lovespark/internal/store"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open store", "err", err)
		os.Exit(1)
	}
	defer func() { _ = s.Close() }()

	appCtx := app.New(s, log, cfg)

	if cfg.IsDevelopment() {
		if _, err := seed.Run(ctx, s, log, seed.Options{Decisions: 40, Seed: 1}); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	registrars := []server.Registrar{
		account.NewRegistrar(appCtx),
		explore.NewRegistrar(appCtx),
		chat.NewRegistrar(appCtx),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.StartGRPCServer(gctx, appCtx, registrars...) })
	g.Go(func() error { return server.StartHTTPServer(gctx, appCtx) })

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
