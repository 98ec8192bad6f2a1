package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/inventory-service/internal/docs"
	"github.com/rogerio-castellano/inventory-service/internal/http/handlers"
	mw "github.com/rogerio-castellano/inventory-service/internal/http/middleware"
	rl "github.com/rogerio-castellano/inventory-service/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Options struct {
	// Limiter throttles API routes per client address. Nil disables rate limiting.
	Limiter *rl.Limiter
	// TrustProxyHeaders takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

// NewRouter mounts every endpoint of h.
func NewRouter(h *handlers.Handler, logger *zap.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	if opts.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(mw.RequestID)
	r.Use(mw.Logging(logger))
	r.Use(mw.Recoverer(logger))

	r.NotFound(h.NotFoundHandler)
	r.MethodNotAllowed(h.MethodNotAllowedHandler)

	r.Get("/healthz", h.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(mw.RateLimit(opts.Limiter))
		}

		r.Get("/", h.IndexHandler)

		r.Route("/api", func(r chi.Router) {
			r.Route("/products", func(r chi.Router) {
				r.Post("/", h.CreateProductHandler)
				r.Get("/", h.GetProductsHandler)
				r.Post("/sell", h.SellProductHandler)
				r.Get("/search", h.SearchProductsHandler)
				r.Put("/bulk-price-update", h.BulkPriceUpdateHandler)
				r.Post("/import", h.ImportProductsHandler)
				r.Get("/{id}/movements", h.GetMovementsHandler)
			})
			r.Get("/metrics/dashboard", h.GetDashboardMetricsHandler)
			r.Get("/activity", h.GetActivityHandler)
		})
	})

	return r
}
