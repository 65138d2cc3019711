package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/testutil"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log.SetupTestLogger()

	conn := testutil.NewSQLiteConnection(t)
	testutil.SeedSales(t, conn,
		testutil.Sale(10100, 2003, 1, "USA", "Classic Cars", 100.00),
		testutil.Sale(10101, 2003, 2, "France", "Motorcycles", 50.00),
	)

	cfg := &config.Config{Server: config.Server{AllowedOrigins: []string{"*"}}}
	service := analytics.NewService(repository.NewSalesRepository(conn))

	srv := httptest.NewServer(NewHandler(cfg, service))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) *http.Response {
	t.Helper()

	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestServer_EndToEnd(t *testing.T) {
	srv := newTestServer(t)

	var kpi []map[string]any
	resp := getJSON(t, srv, "/kpi", &kpi)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, kpi, 1)
	assert.InDelta(t, 150.00, kpi[0]["total_revenue"], 0.001)
	assert.InDelta(t, 2, kpi[0]["total_orders"], 0)
	assert.InDelta(t, 75.00, kpi[0]["avg_order_value"], 0.001)

	var sales []map[string]any
	resp = getJSON(t, srv, "/sales_filtered?country=USA", &sales)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, sales, 1)
	assert.Equal(t, "USA", sales[0]["COUNTRY"])

	var countries []map[string]any
	resp = getJSON(t, srv, "/summary/country", &countries)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, countries, 2)
	assert.Equal(t, "USA", countries[0]["country"])
	assert.Equal(t, "France", countries[1]["country"])

	var top []map[string]any
	resp = getJSON(t, srv, "/summary/country_filtered?year=2003&top_n=1", &top)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, top, 1)
	assert.Equal(t, "USA", top[0]["country"])
}

func TestServer_ErrorsAndCors(t *testing.T) {
	srv := newTestServer(t)

	var apiErr map[string]any
	resp := getJSON(t, srv, "/summary/country_filtered?top_n=0", &apiErr)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VAL_003", apiErr["code"])

	resp = getJSON(t, srv, "/nao-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/kpi", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:8501")

	resp, err = srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:8501", resp.Header.Get("Access-Control-Allow-Origin"))
}
