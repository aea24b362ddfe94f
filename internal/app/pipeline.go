package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dreamr-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dreamr-backend/internal/adapter/postgres/credit"
	dreamrepo "github.com/heartmarshall/dreamr-backend/internal/adapter/postgres/dream"
	"github.com/heartmarshall/dreamr-backend/internal/adapter/postgres/entitlement"
	"github.com/heartmarshall/dreamr-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/dreamr-backend/internal/adapter/provider/imagegen"
	"github.com/heartmarshall/dreamr-backend/internal/adapter/storage"
	"github.com/heartmarshall/dreamr-backend/internal/config"
	"github.com/heartmarshall/dreamr-backend/internal/service/classifier"
	"github.com/heartmarshall/dreamr-backend/internal/service/dream"
	"github.com/heartmarshall/dreamr-backend/internal/service/ledger"
)

// pipeline bundles the components shared by the API server and the backfill
// job.
type pipeline struct {
	pool         *pgxpool.Pool
	dreams       *dreamrepo.Repo
	entitlements *entitlement.Repo
	ledger       *ledger.Service
	llm          *claude.Generator
	files        *storage.FileStore
	service      *dream.Service
}

// openDatabase connects to PostgreSQL and applies migrations when enabled.
func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return pool, nil
}

func newPipeline(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*pipeline, error) {
	files, err := storage.NewFileStore(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("open file store: %w", err)
	}

	txm := postgres.NewTxManager(pool)
	dreams := dreamrepo.New(pool)
	entitlements := entitlement.New(pool)
	credits := ledger.NewService(logger, credit.New(pool), txm, cfg.Quota)
	llm := claude.New(cfg.LLM, logger)
	images := imagegen.NewProvider(cfg.Image, logger)

	svc := dream.NewService(
		logger, dreams, credits, entitlements, llm, images, files,
		classifier.New(), txm,
		dream.Config{
			TextAttempts:        cfg.LLM.MaxAttempts,
			TextBackoff:         cfg.LLM.RetryBackoff,
			ImageSize:           cfg.Image.Size,
			QuestionPlaceholder: cfg.Storage.QuestionPlaceholder,
			DeclinePlaceholder:  cfg.Storage.DeclinePlaceholder,
			PublicURL:           cfg.Storage.PublicURL,
		},
	)

	return &pipeline{
		pool:         pool,
		dreams:       dreams,
		entitlements: entitlements,
		ledger:       credits,
		llm:          llm,
		files:        files,
		service:      svc,
	}, nil
}
