package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthz",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Analytics registra as rotas de consulta e a rota raiz que as lista.
func Analytics(service analytics.AnalyticsService) []router.Route {
	routes := []router.Route{
		{
			Path:    "/sales",
			Method:  http.MethodGet,
			Handler: LatestSales(service),
		},
		{
			Path:    "/sales_filtered",
			Method:  http.MethodGet,
			Handler: FilteredSales(service),
		},
		{
			Path:    "/kpi",
			Method:  http.MethodGet,
			Handler: KPI(service),
		},
		{
			Path:    "/kpi_filtered",
			Method:  http.MethodGet,
			Handler: FilteredKPI(service),
		},
		{
			Path:    "/summary/country",
			Method:  http.MethodGet,
			Handler: SummaryByDimension(service, domain.DimensionCountry),
		},
		{
			Path:    "/summary/country_filtered",
			Method:  http.MethodGet,
			Handler: FilteredSummaryByDimension(service, domain.DimensionCountry),
		},
		{
			Path:    "/summary/year",
			Method:  http.MethodGet,
			Handler: SummaryByDimension(service, domain.DimensionYear),
		},
		{
			Path:    "/summary/productline",
			Method:  http.MethodGet,
			Handler: SummaryByDimension(service, domain.DimensionProductLine),
		},
		{
			Path:    "/summary/productline_filtered",
			Method:  http.MethodGet,
			Handler: FilteredSummaryByDimension(service, domain.DimensionProductLine),
		},
		{
			Path:    "/summary/dealsize",
			Method:  http.MethodGet,
			Handler: SummaryByDimension(service, domain.DimensionDealSize),
		},
		{
			Path:    "/summary/status",
			Method:  http.MethodGet,
			Handler: SummaryByDimension(service, domain.DimensionStatus),
		},
		{
			Path:    "/summary/month",
			Method:  http.MethodGet,
			Handler: SummaryByMonth(service),
		},
		{
			Path:    "/summary/month_filtered",
			Method:  http.MethodGet,
			Handler: FilteredSummaryByMonth(service),
		},
	}

	endpoints := make([]string, 0, len(routes))
	for _, route := range routes {
		endpoints = append(endpoints, route.Path)
	}

	return append(routes, router.Route{
		Path:    "/",
		Method:  http.MethodGet,
		Handler: Root(endpoints),
	})
}
