package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lingvodoc-backend/internal/config"
	"github.com/heartmarshall/lingvodoc-backend/internal/transport/middleware"
)

// RouterDeps holds everything the router mounts.
type RouterDeps struct {
	Health      *HealthHandler
	Cognates    *CognatesHandler
	Metrics     http.Handler
	RateLimiter *middleware.RateLimiter
	Logger      *slog.Logger
	Server      config.ServerConfig
	CORS        config.CORSConfig
}

// NewRouter builds the HTTP handler tree.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.Handle("GET /metrics", deps.Metrics)

	cognates := middleware.Route(http.HandlerFunc(deps.Cognates.List),
		middleware.CORS(deps.CORS),
		deps.RateLimiter.Limit(deps.Server.ReportsPerMinute),
		middleware.ConcurrencyLimit(deps.Server.MaxConcurrentReports, int(deps.Server.RetryAfter/time.Second)),
	)
	mux.Handle("GET /api/v1/cognates", cognates)
	mux.Handle("OPTIONS /api/v1/cognates", middleware.CORS(deps.CORS)(http.HandlerFunc(noContent)))

	return middleware.Route(mux,
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
	)
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
