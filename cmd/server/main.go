// Command gk-server starts the Gatekeeper identity gRPC server.
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/and161185/gatekeeper/internal/config"
	"github.com/and161185/gatekeeper/internal/crypto"
	"github.com/and161185/gatekeeper/internal/crypto/secretbox"
	"github.com/and161185/gatekeeper/internal/limiter"
	"github.com/and161185/gatekeeper/internal/metrics"
	"github.com/and161185/gatekeeper/internal/migrate"
	"github.com/and161185/gatekeeper/internal/notify"
	"github.com/and161185/gatekeeper/internal/repository/postgres"
	grpcserver "github.com/and161185/gatekeeper/internal/server/grpc"
	"github.com/and161185/gatekeeper/internal/service"
	"github.com/and161185/gatekeeper/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the Identity API.
func main() {
	dev := flag.Bool("dev", false, "enable server reflection (dev only)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(2)
	}

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	// Context with OS signals
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

	box, err := secretbox.New(cfg.MasterSecret)
	if err != nil {
		logger.Fatal("secret store", zap.Error(err))
	}
	codec, err := token.NewCodec([]byte(cfg.SigningKey), cfg.AccessTTL, token.WithIssuer(cfg.Issuer))
	if err != nil {
		logger.Fatal("token codec", zap.Error(err))
	}
	met := metrics.New()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	refreshRepo := postgres.NewRefreshRepo(db)
	resetRepo := postgres.NewResetRepo(db)
	configRepo := postgres.NewEmailConfigRepo(db)

	lim := limiter.NewPG(db.Pool, limiter.Policy{
		Window:   cfg.LoginWindow,
		MaxFails: cfg.LoginMaxFails,
		BlockFor: cfg.LoginBlockFor,
	})
	mailer := notify.New(configRepo, box, cfg.ResetURL, cfg.ResetTTL, notify.WithLogger(logger.Named("notify")))

	// Services
	authSvc := service.NewAuthService(userRepo, refreshRepo, resetRepo,
		crypto.NewHasher(crypto.DefaultArgon2Params), codec, mailer,
		service.WithLogger(logger.Named("auth")),
		service.WithMetrics(met),
		service.WithLimiter(lim),
		service.WithRefreshTTL(cfg.RefreshTTL),
		service.WithResetTTL(cfg.ResetTTL),
		service.WithNotifyTimeout(cfg.NotifyTimeout),
	)
	configSvc := service.NewEmailConfigService(configRepo, box, mailer, logger.Named("email"), met)

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.MetricsUnary(met),
			grpcserver.LoggingUnary(logger),
			grpcserver.AuthUnary(authSvc, grpcserver.Rules()),
		),
	}
	if cfg.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("TLS disabled, serving plaintext")
	}
	s := grpc.NewServer(opts...)
	grpcserver.New(authSvc, configSvc, logger).Register(s)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if *dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	ms := &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux(met), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := ms.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics listener", zap.Error(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("tls", cfg.TLSCert != ""))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	exit := 0
	select {
	case <-ctx.Done():
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		exit = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	_ = ms.Shutdown(shutdownCtx)
	cancel()

	// pending e-mails hold their own timeout
	authSvc.Wait()
	logger.Info("shutdown complete")
	if exit != 0 {
		_ = logger.Sync()
		os.Exit(exit)
	}
}

func newLogger(level string) *zap.Logger {
	zc := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		zc.Level = lvl
	}
	logger, err := zc.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func metricsMux(m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return mux
}
