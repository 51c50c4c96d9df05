package controllers

import (
	"net/http"

	"github.com/shoplite/shoplite-backend/api/responses"
	"github.com/shoplite/shoplite-backend/api/validators"
	dashsvc "github.com/shoplite/shoplite-backend/internal/dashboard"
	"github.com/shoplite/shoplite-backend/pkg/config"
	"github.com/shoplite/shoplite-backend/pkg/logger"
)

// DashboardMetrics aggregates order metrics over a trailing window of days.
func DashboardMetrics(svc dashsvc.Service, cfg config.DashboardConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := validators.ParseQueryInt(r, "days", cfg.WindowDays, 1, cfg.MaxDays)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.Metrics(r.Context(), days))
	}
}
