package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
)

// As rotas de KPI respondem uma lista com um único objeto, formato esperado pelo dashboard.

func KPI(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kpi, err := service.KPI(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular KPI")
			return
		}

		writeJSON(w, r, []*domain.KPI{kpi})
	})
}

func FilteredKPI(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(w, r)
		if !ok {
			return
		}

		kpi, err := service.FilteredKPI(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular KPI filtrado")
			return
		}

		writeJSON(w, r, []*domain.KPI{kpi})
	})
}
