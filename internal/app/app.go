package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	redisdiscussion "github.com/heartmarshall/dreamr-backend/internal/adapter/redis/discussion"
	"github.com/heartmarshall/dreamr-backend/internal/auth"
	"github.com/heartmarshall/dreamr-backend/internal/config"
	"github.com/heartmarshall/dreamr-backend/internal/service/discussion"
	"github.com/heartmarshall/dreamr-backend/internal/transport/middleware"
	"github.com/heartmarshall/dreamr-backend/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, connects to
// PostgreSQL and Redis, wires services and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	p, err := newPipeline(cfg, pool, logger)
	if err != nil {
		return err
	}

	sessions := redisdiscussion.NewStore(rdb, cfg.Redis.DiscussionTTL, cfg.Redis.DiscussionMaxTurns, logger)
	discussionService := discussion.NewService(logger, p.dreams, p.entitlements, sessions, p.llm)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterConfig{
		Logger:       logger,
		Health:       rest.NewHealthHandler(readiness{pool: pool, rdb: rdb}, BuildVersion()),
		Dreams:       rest.NewDreamHandler(p.service, cfg.Storage.PublicURL, logger),
		Discussion:   rest.NewDiscussionHandler(discussionService, logger),
		Subscription: rest.NewSubscriptionHandler(p.ledger, p.entitlements, logger),
		Auth:         middleware.Auth(auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), logger),
		RateLimit:    limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		CORS:         cfg.CORS,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		ImageDir:     p.files.Dir(),
		ImagePrefix:  cfg.Storage.PublicURL,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is canceled, then drains in-flight requests for at
// most ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// readiness reports ready only when both backing stores answer.
type readiness struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

func (r readiness) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}
