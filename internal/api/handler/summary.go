package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

func SummaryByDimension(service analytics.AnalyticsService, dimension domain.Dimension) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		totals, err := service.SummaryByDimension(r.Context(), dimension)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agregar vendas")
			return
		}

		writeJSON(w, r, totals)
	})
}

// FilteredSummaryByDimension aplica year/country e limita o ranking a top_n (padrão 10).
// Parâmetros inválidos são rejeitados antes de qualquer consulta.
func FilteredSummaryByDimension(service analytics.AnalyticsService, dimension domain.Dimension) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(w, r)
		if !ok {
			return
		}

		topN, err := domain.ParseTopN(r.URL.Query().Get("top_n"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"param": "top_n"})
			return
		}

		totals, err := service.FilteredSummaryByDimension(r.Context(), dimension, filter, topN)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agregar vendas filtradas")
			return
		}

		writeJSON(w, r, totals)
	})
}

func SummaryByMonth(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		totals, err := service.SummaryByMonth(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agregar vendas por mês")
			return
		}

		writeJSON(w, r, totals)
	})
}

func FilteredSummaryByMonth(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(w, r)
		if !ok {
			return
		}

		totals, err := service.FilteredSummaryByMonth(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agregar vendas por mês")
			return
		}

		writeJSON(w, r, totals)
	})
}
