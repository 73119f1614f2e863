package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lingvodoc-backend/internal/adapter/metrics"
	"github.com/heartmarshall/lingvodoc-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingvodoc-backend/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/lingvodoc-backend/internal/config"
	"github.com/heartmarshall/lingvodoc-backend/internal/service/cognates"
)

// Components is the report pipeline wired to one database pool.
type Components struct {
	Pool    *pgxpool.Pool
	Store   *lexicon.Store
	Metrics *metrics.Metrics
	Service *cognates.Service
}

// NewComponents connects to the database and builds the cognates service.
// The caller owns the result and must Close it.
func NewComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	classifier, err := cognates.NewClassifier(cfg.Classifier)
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	store := lexicon.New(pool)
	m := metrics.New()
	svc := cognates.NewService(logger, store, postgres.NewTxManager(pool), m, classifier, cfg.Report)

	return &Components{
		Pool:    pool,
		Store:   store,
		Metrics: m,
		Service: svc,
	}, nil
}

// Close releases the database pool.
func (c *Components) Close() {
	c.Pool.Close()
}
