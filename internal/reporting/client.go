// Package reporting monta o dashboard de vendas a partir da API de consultas.
package reporting

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnexpectedStatus = errors.New("unexpected status from sales API")

const defaultTimeout = 30 * time.Second

// Fetcher é a parte da API de consultas usada pelo dashboard.
type Fetcher interface {
	FetchRows(ctx context.Context, path string, params url.Values) ([]map[string]any, error)
	FetchKPI(ctx context.Context, params url.Values) (*domain.KPI, error)
	FetchSales(ctx context.Context, params url.Values) ([]domain.SalesRecord, error)
}

// APIClient faz uma requisição GET por chamada, sem retry.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *APIClient) FetchRows(ctx context.Context, path string, params url.Values) ([]map[string]any, error) {
	rows := make([]map[string]any, 0)
	if err := c.get(ctx, path, params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchKPI devolve o primeiro (e único) objeto da resposta de /kpi_filtered.
func (c *APIClient) FetchKPI(ctx context.Context, params url.Values) (*domain.KPI, error) {
	var kpis []domain.KPI
	if err := c.get(ctx, "/kpi_filtered", params, &kpis); err != nil {
		return nil, err
	}

	if len(kpis) == 0 {
		return &domain.KPI{}, nil
	}
	return &kpis[0], nil
}

func (c *APIClient) FetchSales(ctx context.Context, params url.Values) ([]domain.SalesRecord, error) {
	records := make([]domain.SalesRecord, 0)
	if err := c.get(ctx, "/sales_filtered", params, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *APIClient) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar requisição")
	}
	req.Header.Set("Accept", "application/json")

	startedAt := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "erro ao chamar %s", path)
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"path":        path,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Debug("Resposta da API de vendas")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Wrapf(ErrUnexpectedStatus, "%s respondeu %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar resposta de %s", path)
	}
	return nil
}
