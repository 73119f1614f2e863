package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lingvodoc-backend/internal/config"
	"github.com/heartmarshall/lingvodoc-backend/internal/transport/middleware"
	"github.com/heartmarshall/lingvodoc-backend/internal/transport/rest"
)

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// the server down within the configured grace period.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	components, err := NewComponents(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer components.Close()

	if err := components.Store.CheckSchema(ctx); err != nil {
		logger.Warn("schema check failed, /ready will report down", slog.String("error", err.Error()))
	}

	limiter := middleware.NewRateLimiter(time.Minute, 10*time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Health:      rest.NewHealthHandler(components.Pool, components.Store, Version),
		Cognates:    rest.NewCognatesHandler(components.Service, logger),
		Metrics:     components.Metrics.Handler(),
		RateLimiter: limiter,
		Logger:      logger,
		Server:      cfg.Server,
		CORS:        cfg.CORS,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return <-errCh
}
