package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/cfb-meta-service/internal/http/handlers"
	"github.com/preston-bernstein/cfb-meta-service/internal/http/middleware"
	"github.com/preston-bernstein/cfb-meta-service/internal/http/requestutil"
	"github.com/preston-bernstein/cfb-meta-service/internal/metrics"
)

// RouterOptions carries the cross-cutting pieces the router installs as middleware.
type RouterOptions struct {
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers the API routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID, "Retry-After"},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/games", handler.Games)
	r.Get("/games/{id}", handler.GameByID)
	return r
}
