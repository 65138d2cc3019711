package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics/mocks"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func newTestRouter(t *testing.T) (*mocks.MockAnalyticsService, http.Handler) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockAnalyticsService(ctrl)

	rt := router.New(
		router.WithNotFound(apiErrors.NotFoundHandler()),
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Analytics(service)...),
	)
	return service, rt
}

func doGet(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRoot_ListsEndpoints(t *testing.T) {
	_, rt := newTestRouter(t)

	rec := doGet(rt, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var body rootResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Sales Analytics API is running", body.Message)
	assert.Len(t, body.Endpoints, 13)
	assert.Contains(t, body.Endpoints, "/summary/productline_filtered")
	assert.NotContains(t, body.Endpoints, "/")
}

func TestHealthcheck(t *testing.T) {
	_, rt := newTestRouter(t)

	rec := doGet(rt, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestFilteredSales_PassesFilter(t *testing.T) {
	service, rt := newTestRouter(t)

	phone := "2125557818"
	service.EXPECT().
		FilteredSales(gomock.Any(), domain.SalesFilter{Year: intPtr(2003), Country: strPtr("USA")}).
		Return([]domain.SalesRecord{{OrderNumber: 10100, YearID: 2003, Country: "USA", Phone: &phone}}, nil)

	rec := doGet(rt, "/sales_filtered?year=2003&country=USA")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, float64(10100), body[0]["ORDERNUMBER"])
	assert.Equal(t, "USA", body[0]["COUNTRY"])
	assert.Equal(t, "2125557818", body[0]["PHONE"])
	assert.Nil(t, body[0]["TERRITORY"])
}

func TestLatestSales_EmptyIsArray(t *testing.T) {
	service, rt := newTestRouter(t)
	service.EXPECT().LatestSales(gomock.Any()).Return([]domain.SalesRecord{}, nil)

	rec := doGet(rt, "/sales")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestKPI_WrapsSingleObject(t *testing.T) {
	service, rt := newTestRouter(t)

	revenue, avg := 150.0, 75.0
	service.EXPECT().KPI(gomock.Any()).Return(&domain.KPI{TotalRevenue: &revenue, TotalOrders: 2, AvgOrderValue: &avg}, nil)
	service.EXPECT().
		FilteredKPI(gomock.Any(), domain.SalesFilter{Year: intPtr(1999)}).
		Return(&domain.KPI{}, nil)

	rec := doGet(rt, "/kpi")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"total_revenue":150,"total_orders":2,"avg_order_value":75}]`, rec.Body.String())

	rec = doGet(rt, "/kpi_filtered?year=1999")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"total_revenue":null,"total_orders":0,"avg_order_value":null}]`, rec.Body.String())
}

func TestSummaryRoutes_UseDimensionAsKey(t *testing.T) {
	service, rt := newTestRouter(t)

	service.EXPECT().
		SummaryByDimension(gomock.Any(), domain.DimensionCountry).
		Return([]domain.DimensionTotal{
			{Dimension: domain.DimensionCountry, Value: "USA", TotalSales: 100},
			{Dimension: domain.DimensionCountry, Value: "France", TotalSales: 50},
		}, nil)
	service.EXPECT().
		SummaryByDimension(gomock.Any(), domain.DimensionYear).
		Return([]domain.DimensionTotal{{Dimension: domain.DimensionYear, Value: int64(2003), TotalSales: 150}}, nil)
	service.EXPECT().
		SummaryByMonth(gomock.Any()).
		Return([]domain.MonthTotal{{Year: 2003, Month: 1, TotalSales: 150}}, nil)

	rec := doGet(rt, "/summary/country")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"country":"USA","total_sales":100},{"country":"France","total_sales":50}]`, rec.Body.String())

	rec = doGet(rt, "/summary/year")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"year":2003,"total_sales":150}]`, rec.Body.String())

	rec = doGet(rt, "/summary/month")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"year":2003,"month":1,"total_sales":150}]`, rec.Body.String())
}

func TestFilteredSummary_TopN(t *testing.T) {
	service, rt := newTestRouter(t)

	service.EXPECT().
		FilteredSummaryByDimension(gomock.Any(), domain.DimensionCountry, domain.SalesFilter{}, domain.DefaultTopN).
		Return([]domain.DimensionTotal{}, nil)
	service.EXPECT().
		FilteredSummaryByDimension(gomock.Any(), domain.DimensionProductLine, domain.SalesFilter{Country: strPtr("France")}, uint64(5)).
		Return([]domain.DimensionTotal{}, nil)

	rec := doGet(rt, "/summary/country_filtered")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(rt, "/summary/productline_filtered?country=France&top_n=5")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInvalidParams_RejectedBeforeQuery(t *testing.T) {
	// nenhuma chamada ao serviço é esperada
	_, rt := newTestRouter(t)

	tests := []struct {
		name   string
		target string
	}{
		{name: "ano não numérico", target: "/sales_filtered?year=abc"},
		{name: "ano inválido no KPI", target: "/kpi_filtered?year=20o3"},
		{name: "ano inválido no mensal", target: "/summary/month_filtered?year=x"},
		{name: "top_n zero", target: "/summary/country_filtered?top_n=0"},
		{name: "top_n negativo", target: "/summary/productline_filtered?top_n=-3"},
		{name: "top_n decimal", target: "/summary/country_filtered?top_n=2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(rt, tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
		})
	}
}

func TestServiceErrors(t *testing.T) {
	service, rt := newTestRouter(t)

	service.EXPECT().
		SummaryByDimension(gomock.Any(), domain.DimensionStatus).
		Return(nil, analytics.NewAnalyticsError(analytics.ErrFetchSummary, apiErrors.ErrDatabaseOperation, "Falha"))
	service.EXPECT().
		LatestSales(gomock.Any()).
		Return(nil, errors.New("inesperado"))

	rec := doGet(rt, "/summary/status")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)

	rec = doGet(rt, "/sales")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
}

func TestUnknownRoute(t *testing.T) {
	_, rt := newTestRouter(t)

	rec := doGet(rt, "/summary/customer")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)
}
