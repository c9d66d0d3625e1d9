package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors of the service. Each instance owns its registry so tests
// can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	SalesRecorded    prometheus.Counter
	UnitsSold        prometheus.Counter
	SaleRejections   *prometheus.CounterVec
	ProductMutations *prometheus.CounterVec
	StockAlerts      *prometheus.CounterVec
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		SalesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inventory_sales_recorded_total",
			Help: "Number of sales appended to product ledgers",
		}),
		UnitsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inventory_units_sold_total",
			Help: "Units removed from stock by recorded sales",
		}),
		SaleRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inventory_sale_rejections_total",
			Help: "Sales rejected, by reason",
		}, []string{"reason"}),
		ProductMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inventory_product_mutations_total",
			Help: "Successful product mutations, by operation",
		}, []string{"op"}),
		StockAlerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inventory_stock_alerts_total",
			Help: "Low or out of stock alerts raised after sales",
		}, []string{"level"}),
		RequestCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.Registry.MustRegister(
		m.SalesRecorded, m.UnitsSold, m.SaleRejections, m.ProductMutations, m.StockAlerts,
		m.RequestCounter, m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency labelled with the matched chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RequestCounter.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
