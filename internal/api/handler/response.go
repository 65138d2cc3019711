package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}

// writeServiceError traduz erros do caso de uso para o formato padrão da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log.ForContext(r.Context()).WithError(err).Error(fallback)

	var analyticsErr *analytics.AnalyticsError
	if errors.As(err, &analyticsErr) {
		apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

// parseFilter valida year e country; em caso de erro já responde 400
func parseFilter(w http.ResponseWriter, r *http.Request) (domain.SalesFilter, bool) {
	filter, err := domain.ParseSalesFilter(r.URL.Query())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"param": "year"})
		return domain.SalesFilter{}, false
	}
	return filter, true
}
