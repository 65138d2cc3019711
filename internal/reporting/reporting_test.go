package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var fixtures = map[string]string{
	"/summary/country":              `[{"country":"USA","total_sales":100},{"country":"France","total_sales":50}]`,
	"/summary/year":                 `[{"year":2004,"total_sales":60},{"year":2003,"total_sales":90}]`,
	"/summary/productline":          `[{"productline":"Classic Cars","total_sales":150}]`,
	"/summary/dealsize":             `[{"dealsize":"Small","total_sales":150}]`,
	"/summary/status":               `[{"status":"Shipped","total_sales":150}]`,
	"/summary/month_filtered":       `[{"year":2004,"month":2,"total_sales":10},{"year":2003,"month":11,"total_sales":20},{"year":2003,"month":1,"total_sales":5}]`,
	"/summary/country_filtered":     `[{"country":"USA","total_sales":100}]`,
	"/summary/productline_filtered": `[{"productline":"Classic Cars","total_sales":100}]`,
	"/kpi_filtered":                 `[{"total_revenue":150,"total_orders":2,"avg_order_value":75}]`,
	"/sales_filtered":               `[{"ORDERNUMBER":10100,"SALES":100,"ORDERDATE":"2003-01-15T00:00:00Z","COUNTRY":"USA","YEAR_ID":2003,"PHONE":null}]`,
}

type fakeAPI struct {
	mu      sync.Mutex
	queries map[string]url.Values
	failOn  string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()

	api := &fakeAPI{queries: make(map[string]url.Values)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.queries[r.URL.Path] = r.URL.Query()
		failOn := api.failOn
		api.mu.Unlock()

		if r.URL.Path == failOn {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"SRV_002"}`))
			return
		}

		body, ok := fixtures[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return api, srv
}

func (a *fakeAPI) setFailOn(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failOn = path
}

func (a *fakeAPI) query(path string) url.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queries[path]
}

func TestSelection_Params(t *testing.T) {
	tests := []struct {
		name      string
		selection Selection
		want      string
		wantTopN  string
	}{
		{name: "padrão", selection: DefaultSelection(), want: "", wantTopN: "top_n=10"},
		{name: "somente ano", selection: Selection{Year: "2003", Country: AllOption, TopN: 7}, want: "year=2003", wantTopN: "top_n=7&year=2003"},
		{name: "ano e país", selection: Selection{Year: "2004", Country: "USA", TopN: 20}, want: "country=USA&year=2004", wantTopN: "country=USA&top_n=20&year=2004"},
		{name: "top_n acima do limite", selection: Selection{Year: AllOption, Country: AllOption, TopN: 99}, want: "", wantTopN: "top_n=20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.selection.Params().Encode())
			assert.Equal(t, tt.wantTopN, tt.selection.TopNParams().Encode())
		})
	}
}

func TestParseSelection(t *testing.T) {
	assert.Equal(t, DefaultSelection(), ParseSelection(url.Values{}))
	assert.Equal(t, Selection{Year: "2003", Country: "Spain", TopN: 5},
		ParseSelection(url.Values{"year": {"2003"}, "country": {"Spain"}, "top_n": {"1"}}))
	assert.Equal(t, 10, ParseSelection(url.Values{"top_n": {"dez"}}).TopN)
}

func TestToMonthlyTrendData(t *testing.T) {
	chart := ToMonthlyTrendData("trend", []map[string]any{
		{"year": float64(2004), "month": float64(2), "total_sales": float64(10)},
		{"year": float64(2003), "month": float64(11), "total_sales": float64(20)},
		{"year": float64(2003), "month": float64(1), "total_sales": float64(5)},
	})

	assert.Equal(t, ChartLine, chart.Type)
	assert.Equal(t, []string{"2003-01", "2003-11", "2004-02"}, chart.Labels)
	assert.Equal(t, []float64{5, 20, 10}, chart.Data[0].Values)
	assert.Equal(t, float64(20), chart.Max())
}

func TestAPIClient_UnexpectedStatus(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.setFailOn("/kpi_filtered")

	client := NewAPIClient(srv.URL+"/", time.Second)

	_, err := client.FetchKPI(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "500")

	_, err = client.FetchRows(context.Background(), "/nao-existe", nil)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
}

func TestBuilder_Build(t *testing.T) {
	api, srv := newFakeAPI(t)
	builder := NewBuilder(NewAPIClient(srv.URL, time.Second))

	selection := Selection{Year: "2003", Country: "USA", TopN: 7}
	dashboard, err := builder.Build(context.Background(), selection)
	require.NoError(t, err)

	assert.Equal(t, []string{AllOption, "2003", "2004"}, dashboard.Years)
	assert.Equal(t, []string{AllOption, "France", "USA"}, dashboard.Countries)

	require.NotNil(t, dashboard.KPI.TotalRevenue)
	assert.Equal(t, 150.0, *dashboard.KPI.TotalRevenue)
	assert.Equal(t, int64(2), dashboard.KPI.TotalOrders)

	assert.Equal(t, "Top 7 Countries by Sales", dashboard.TopCountries.Title)
	assert.Equal(t, []string{"USA"}, dashboard.TopCountries.Labels)
	assert.Equal(t, []string{"2004", "2003"}, dashboard.SalesByYear.Labels)
	assert.Equal(t, []string{"2003-01", "2003-11", "2004-02"}, dashboard.MonthlyTrend.Labels)
	assert.Len(t, dashboard.Charts(), 6)

	require.Len(t, dashboard.Sales, 1)
	assert.Equal(t, int64(10100), dashboard.Sales[0].OrderNumber)

	// lote estático sem filtros; lote filtrado com o mesmo snapshot
	assert.Empty(t, api.query("/summary/country"))
	assert.Equal(t, "country=USA&year=2003", api.query("/kpi_filtered").Encode())
	assert.Equal(t, "country=USA&year=2003", api.query("/sales_filtered").Encode())
	assert.Equal(t, "country=USA&year=2003", api.query("/summary/month_filtered").Encode())
	assert.Equal(t, "country=USA&top_n=7&year=2003", api.query("/summary/country_filtered").Encode())
	assert.Equal(t, "country=USA&top_n=7&year=2003", api.query("/summary/productline_filtered").Encode())
}

func TestBuilder_Build_AbortsOnFailure(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.setFailOn("/summary/status")

	_, err := NewBuilder(NewAPIClient(srv.URL, time.Second)).Build(context.Background(), DefaultSelection())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "/summary/status")
}

func TestWriteSalesCSV(t *testing.T) {
	phone := "2125557818"
	records := []domain.SalesRecord{{
		OrderNumber: 10100,
		Sales:       2871.5,
		OrderDate:   time.Date(2003, 2, 24, 0, 0, 0, 0, time.UTC),
		Country:     "USA",
		Phone:       &phone,
		YearID:      2003,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteSalesCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "10100", rows[1][0])
	assert.Equal(t, "2871.5", rows[1][4])
	assert.Equal(t, "2003-02-24 00:00:00", rows[1][5])
	assert.Equal(t, "2125557818", rows[1][14])
	assert.Equal(t, "", rows[1][15])
	assert.Equal(t, "USA", rows[1][20])
}
