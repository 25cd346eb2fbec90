package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/GregMSThompson/transaction-insights/internal/handlers"
	"github.com/GregMSThompson/transaction-insights/internal/middleware"
)

type Options struct {
	PathPrefix  string
	CORSOrigins []string
}

func NewRouter(deps *handlers.Deps, opts Options) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	th := handlers.NewTransactionHandlers(deps)
	hh := handlers.NewHealthHandlers(deps)

	r.Get("/healthz", hh.Health)
	prefix := opts.PathPrefix
	if prefix == "" {
		prefix = "/"
	}
	r.Mount(prefix, th.TransactionRoutes())
	return r
}
