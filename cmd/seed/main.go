// Command gk-seed applies migrations and creates the builtin roles, permissions
// and the initial superuser. It is safe to run repeatedly.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/and161185/gatekeeper/internal/config"
	"github.com/and161185/gatekeeper/internal/crypto"
	"github.com/and161185/gatekeeper/internal/migrate"
	"github.com/and161185/gatekeeper/internal/repository/postgres"
	"github.com/and161185/gatekeeper/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	if len(cfg.AdminPassword) < service.MinPasswordLen {
		logger.Fatal("GATEKEEPER_ADMIN_PASSWORD is required", zap.Int("min_len", service.MinPasswordLen))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DSN, logger); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	err = service.Bootstrap(ctx,
		postgres.NewRBACRepo(db),
		postgres.NewUserRepo(db),
		crypto.NewHasher(crypto.DefaultArgon2Params),
		service.Admin{Username: cfg.AdminUsername, Email: cfg.AdminEmail, Password: cfg.AdminPassword},
		logger,
	)
	if err != nil {
		logger.Error("bootstrap", zap.Error(err))
		db.Close()
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("seed complete", zap.String("admin", cfg.AdminUsername))
}
