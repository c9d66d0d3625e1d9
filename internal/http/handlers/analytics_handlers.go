package handlers

import (
	"net/http"
)

const defaultAlertsLimit = 20

// GetAnalyticsHandler godoc
// @Summary Inventory analytics report
// @Description Revenue, stock by department, stock health, monthly revenue trend and top sellers
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} analytics.Report
// @Failure 503 {object} ErrorResponse
// @Router /analytics [get]
func (s *Server) GetAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	report, err := s.analytics.ComputeAnalytics(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, report)
}

// GetDashboardSummaryHandler godoc
// @Summary Dashboard summary counts
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} analytics.Summary
// @Failure 503 {object} ErrorResponse
// @Router /dashboard/summary [get]
func (s *Server) GetDashboardSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.analytics.ComputeDashboardSummary(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, summary)
}

// GetStockAlertsHandler godoc
// @Summary Recent low and out of stock alerts
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of alerts (default 20)"
// @Success 200 {object} AlertsResult
// @Failure 400 {object} ErrorResponse
// @Router /alerts/stock [get]
func (s *Server) GetStockAlertsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		s.badRequest(w, "list stock alerts", "limit", err.Error())
		return
	}
	n := defaultAlertsLimit
	if limit != nil {
		if *limit <= 0 {
			s.badRequest(w, "list stock alerts", "limit", "must be greater than zero")
			return
		}
		n = *limit
	}

	alerts, err := s.engine.RecentAlerts(r.Context(), n)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, AlertsResult{Data: alerts})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} MessageResult
// @Router /health [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, MessageResult{Message: "ok"})
}
