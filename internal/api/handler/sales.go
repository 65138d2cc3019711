package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
)

// LatestSales lista os 100 registros mais recentes
func LatestSales(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, err := service.LatestSales(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas")
			return
		}

		writeJSON(w, r, records)
	})
}

func FilteredSales(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(w, r)
		if !ok {
			return
		}

		records, err := service.FilteredSales(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas filtradas")
			return
		}

		writeJSON(w, r, records)
	})
}
