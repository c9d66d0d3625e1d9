package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/inventory-dashboard/docs"
	"github.com/rogerio-castellano/inventory-dashboard/internal/auth"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-dashboard/internal/logging"
	"github.com/rogerio-castellano/inventory-dashboard/internal/metrics"
)

// Deps is everything the router needs to mount the API.
type Deps struct {
	Server  *handlers.Server
	Issuer  *auth.Issuer
	Limiter *rl.Limiter
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	s := d.Server

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(d.Log))
	r.Use(middleware.Recoverer)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
		r.Handle("/metrics", d.Metrics.Handler())
	}

	r.Get("/health", s.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(RateLimitMiddleware(d.Limiter))
		}
		r.Post("/login", s.LoginHandler)
		r.Post("/logout", s.LogoutHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(d.Issuer, d.Log))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", s.CreateProductHandler)
			r.Get("/", s.GetProductsHandler)
			r.Get("/search", s.FilterProductsHandler)
			r.Post("/import", s.ImportProductsHandler)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetProductByIDHandler)
				r.Patch("/", s.UpdateProductHandler)
				r.Put("/", s.UpdateProductHandler)
				r.Delete("/", s.DeleteProductHandler)
				r.Post("/sales", s.RecordSaleHandler)
				r.Get("/sales", s.GetSalesHandler)
				r.Get("/sales/export", s.ExportSalesHandler)
			})
		})

		r.Get("/analytics", s.GetAnalyticsHandler)
		r.Get("/dashboard/summary", s.GetDashboardSummaryHandler)
		r.Get("/alerts/stock", s.GetStockAlertsHandler)
		r.Post("/admin/users", s.CreateUserHandler)
	})

	return r
}
