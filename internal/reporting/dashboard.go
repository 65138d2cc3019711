package reporting

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Dashboard contém tudo que uma renderização da página precisa.
type Dashboard struct {
	Selection Selection
	Years     []string
	Countries []string

	KPI domain.KPI

	TopCountries    ChartData
	SalesByYear     ChartData
	TopProductLines ChartData
	SalesByDealSize ChartData
	SalesByStatus   ChartData
	MonthlyTrend    ChartData

	Sales []domain.SalesRecord
}

// Charts devolve os seis gráficos na ordem de exibição
func (d *Dashboard) Charts() []ChartData {
	return []ChartData{
		d.TopCountries,
		d.SalesByYear,
		d.TopProductLines,
		d.SalesByDealSize,
		d.SalesByStatus,
		d.MonthlyTrend,
	}
}

type Builder struct {
	fetcher Fetcher
}

func NewBuilder(fetcher Fetcher) *Builder {
	return &Builder{fetcher: fetcher}
}

// Build busca os dois lotes em paralelo. O lote estático não usa filtros; o lote
// filtrado usa o mesmo snapshot de selection em todas as requisições. O primeiro
// erro cancela as demais e aborta a renderização.
func (b *Builder) Build(ctx context.Context, selection Selection) (*Dashboard, error) {
	var (
		countryRows, yearRows, productLineRows, dealSizeRows, statusRows []map[string]any
		monthRows, topCountryRows, topProductLineRows                    []map[string]any
		kpi                                                              *domain.KPI
		sales                                                            []domain.SalesRecord
	)

	params := selection.Params()
	topNParams := selection.TopNParams()

	g, gctx := errgroup.WithContext(ctx)

	fetchRows := func(dest *[]map[string]any, path string, p url.Values) {
		g.Go(func() error {
			rows, err := b.fetcher.FetchRows(gctx, path, p)
			if err != nil {
				return errors.Wrapf(err, "falha ao carregar %s", path)
			}
			*dest = rows
			return nil
		})
	}

	// lote estático
	fetchRows(&countryRows, "/summary/country", nil)
	fetchRows(&yearRows, "/summary/year", nil)
	fetchRows(&productLineRows, "/summary/productline", nil)
	fetchRows(&dealSizeRows, "/summary/dealsize", nil)
	fetchRows(&statusRows, "/summary/status", nil)

	// lote filtrado
	g.Go(func() error {
		result, err := b.fetcher.FetchKPI(gctx, params)
		if err != nil {
			return errors.Wrap(err, "falha ao carregar /kpi_filtered")
		}
		kpi = result
		return nil
	})
	fetchRows(&monthRows, "/summary/month_filtered", params)
	fetchRows(&topCountryRows, "/summary/country_filtered", topNParams)
	fetchRows(&topProductLineRows, "/summary/productline_filtered", topNParams)
	g.Go(func() error {
		result, err := b.fetcher.FetchSales(gctx, params)
		if err != nil {
			return errors.Wrap(err, "falha ao carregar /sales_filtered")
		}
		sales = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	topN := clampTopN(selection.TopN)
	dashboard := &Dashboard{
		Selection: selection,
		Years:     options(yearRows, "year", true),
		Countries: options(countryRows, "country", false),
		KPI:       *kpi,

		TopCountries:    ToBarChartData(fmt.Sprintf("Top %d Countries by Sales", topN), topCountryRows, "country", "total_sales"),
		SalesByYear:     ToLineChartData("Sales by Year", yearRows, "year", "total_sales"),
		TopProductLines: ToBarChartData(fmt.Sprintf("Top %d Product Lines by Sales", topN), topProductLineRows, "productline", "total_sales"),
		SalesByDealSize: ToBarChartData("Sales by Deal Size", dealSizeRows, "dealsize", "total_sales"),
		SalesByStatus:   ToBarChartData("Sales by Status", statusRows, "status", "total_sales"),
		MonthlyTrend:    ToMonthlyTrendData("Monthly Sales Trend", monthRows),

		Sales: sales,
	}

	return dashboard, nil
}

// Export busca a listagem filtrada usada no download em CSV
func (b *Builder) Export(ctx context.Context, selection Selection) ([]domain.SalesRecord, error) {
	return b.fetcher.FetchSales(ctx, selection.Params())
}

// options gera a lista de valores distintos, ordenada, com "All" na frente.
func options(rows []map[string]any, key string, numeric bool) []string {
	seen := make(map[string]bool, len(rows))
	values := make([]string, 0, len(rows))
	numbers := make(map[string]float64, len(rows))

	for _, row := range rows {
		if row[key] == nil {
			continue
		}
		label := formatLabel(row[key])
		if seen[label] {
			continue
		}
		seen[label] = true
		values = append(values, label)
		numbers[label] = toFloat64(row[key])
	}

	if numeric {
		sort.Slice(values, func(i, j int) bool { return numbers[values[i]] < numbers[values[j]] })
	} else {
		sort.Strings(values)
	}

	return append([]string{AllOption}, values...)
}
