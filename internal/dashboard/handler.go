package dashboard

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/justinas/alice"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
	"maragu.dev/gomponents"
)

// NewHandler monta as rotas do dashboard com os mesmos middlewares da API.
func NewHandler(builder *reporting.Builder) http.Handler {
	rt := router.New(
		router.WithNotFound(apiErrors.NotFoundHandler()),
		router.WithMethodNotAllowed(apiErrors.MethodNotAllowedHandler()),
		router.WithRoutes(Routes(builder)...),
	)

	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	).Then(rt)
}

func Routes(builder *reporting.Builder) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Page(builder),
		},
		{
			Path:    "/export.csv",
			Method:  http.MethodGet,
			Handler: Export(builder),
		},
		{
			Path:   "/healthz",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				_, _ = w.Write([]byte("ok"))
			}),
		},
	}
}

// Page refaz todas as consultas a cada carregamento; falha na API vira 502.
func Page(builder *reporting.Builder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		selection := reporting.ParseSelection(r.URL.Query())

		dashboard, err := builder.Build(r.Context(), selection)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("code", apiErrors.ErrExternalService).
				Error("Erro ao montar o dashboard")
			renderHTML(w, r, http.StatusBadGateway, errorPage(err.Error()))
			return
		}

		log.ForContext(r.Context()).WithField("rows", len(dashboard.Sales)).Debug("Dashboard montado")
		renderHTML(w, r, http.StatusOK, dashboardPage(dashboard))
	})
}

func Export(builder *reporting.Builder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		selection := reporting.ParseSelection(r.URL.Query())

		records, err := builder.Export(r.Context(), selection)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao exportar vendas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar a API de vendas", nil)
			return
		}

		var buf bytes.Buffer
		if err := reporting.WriteSalesCSV(&buf, records); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar CSV")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar CSV", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reporting.ExportFilename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	})
}

func renderHTML(w http.ResponseWriter, r *http.Request, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar página")
	}
}
