package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const (
	previewRows = 200

	lineWidth  = 560
	lineHeight = 200
	linePad    = 10
)

const pageCSS = `
body{font-family:system-ui,sans-serif;margin:0;background:#f6f7f9;color:#1f2328}
main{max-width:1200px;margin:0 auto;padding:24px}
form.filters{display:flex;gap:16px;align-items:end;flex-wrap:wrap;margin-bottom:24px}
form.filters label{display:flex;flex-direction:column;font-size:13px;gap:4px}
.metrics{display:grid;grid-template-columns:repeat(3,1fr);gap:16px;margin-bottom:24px}
.metric{background:#fff;border-radius:8px;padding:16px}
.metric .value{font-size:28px;font-weight:600}
.charts{display:grid;grid-template-columns:repeat(2,1fr);gap:16px}
.chart{background:#fff;border-radius:8px;padding:16px}
.bar-row{display:grid;grid-template-columns:140px 1fr 110px;gap:8px;align-items:center;font-size:13px;margin:4px 0}
.bar{background:#4c8bf5;height:14px;border-radius:3px}
.table-wrap{overflow-x:auto;background:#fff;border-radius:8px;margin-top:16px}
table{border-collapse:collapse;font-size:12px;width:100%}
th,td{padding:4px 8px;border-bottom:1px solid #e5e7eb;text-align:left;white-space:nowrap}
.error{background:#fff;border-left:4px solid #d1242f;padding:16px;border-radius:8px}
`

func layout(title string, body ...gomponents.Node) gomponents.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(gomponents.Text(title)),
				html.StyleEl(gomponents.Raw(pageCSS)),
			),
			html.Body(html.Main(body...)),
		),
	)
}

func dashboardPage(d *reporting.Dashboard) gomponents.Node {
	return layout("Sales Analytics Dashboard",
		html.H1(gomponents.Text("Sales Analytics Dashboard")),
		filterForm(d),
		metrics(d.KPI),
		html.Div(html.Class("charts"), gomponents.Map(d.Charts(), chart)),
		html.H2(gomponents.Text("Export Filtered Sales Data")),
		html.A(
			html.Href("/export.csv"+queryString(d.Selection)),
			gomponents.Text("Download CSV"),
		),
		html.H2(gomponents.Text("Filtered Sales Records")),
		salesTable(d.Sales),
	)
}

func errorPage(message string) gomponents.Node {
	return layout("Sales Analytics Dashboard",
		html.H1(gomponents.Text("Sales Analytics Dashboard")),
		html.Div(
			html.Class("error"),
			html.P(gomponents.Text("Não foi possível carregar os dados da API de vendas.")),
			html.P(gomponents.Text(message)),
		),
	)
}

func filterForm(d *reporting.Dashboard) gomponents.Node {
	return html.Form(
		html.Class("filters"),
		html.Method("get"),
		html.Action("/"),
		html.Label(
			gomponents.Text("Select Year"),
			selectInput("year", d.Years, d.Selection.Year),
		),
		html.Label(
			gomponents.Text("Select Country"),
			selectInput("country", d.Countries, d.Selection.Country),
		),
		html.Label(
			gomponents.Text("Top N (for Country & Product Line)"),
			html.Input(
				html.Type("number"),
				html.Name("top_n"),
				gomponents.Attr("min", strconv.Itoa(reporting.MinTopN)),
				gomponents.Attr("max", strconv.Itoa(reporting.MaxTopN)),
				gomponents.Attr("step", "1"),
				html.Value(strconv.Itoa(d.Selection.TopN)),
			),
		),
		html.Button(html.Type("submit"), gomponents.Text("Apply")),
	)
}

func selectInput(name string, values []string, selected string) gomponents.Node {
	return html.Select(
		html.Name(name),
		gomponents.Map(values, func(v string) gomponents.Node {
			return html.Option(
				html.Value(v),
				gomponents.If(v == selected, html.Selected()),
				gomponents.Text(v),
			)
		}),
	)
}

func metrics(kpi domain.KPI) gomponents.Node {
	return html.Div(
		html.Class("metrics"),
		metric("Total Revenue", currency(kpi.TotalRevenue)),
		metric("Total Orders", strconv.FormatInt(kpi.TotalOrders, 10)),
		metric("Avg Order Value", currency(kpi.AvgOrderValue)),
	)
}

func metric(label, value string) gomponents.Node {
	return html.Div(
		html.Class("metric"),
		html.Div(gomponents.Text(label)),
		html.Div(html.Class("value"), gomponents.Text(value)),
	)
}

func currency(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return utils.FormatCurrency(*v)
}

func chart(c reporting.ChartData) gomponents.Node {
	var body gomponents.Node
	switch {
	case c.Empty():
		body = html.P(gomponents.Text("Sem dados para os filtros selecionados."))
	case c.Type == reporting.ChartLine:
		body = lineChart(c)
	default:
		body = barChart(c)
	}

	return html.Div(
		html.Class("chart"),
		html.H3(gomponents.Text(c.Title)),
		body,
	)
}

func barChart(c reporting.ChartData) gomponents.Node {
	highest := c.Max()
	values := c.Data[0].Values

	rows := make([]gomponents.Node, 0, len(c.Labels))
	for i, label := range c.Labels {
		width := 0.0
		if highest > 0 {
			width = values[i] / highest * 100
		}
		rows = append(rows, html.Div(
			html.Class("bar-row"),
			html.Span(gomponents.Text(label)),
			html.Div(html.Class("bar"), html.Style(fmt.Sprintf("width:%.1f%%", width))),
			html.Span(gomponents.Text(utils.FormatCurrency(values[i]))),
		))
	}

	return html.Div(rows...)
}

// lineChart desenha a série como polyline SVG; o eixo Y começa em zero
func lineChart(c reporting.ChartData) gomponents.Node {
	highest := c.Max()
	values := c.Data[0].Values

	step := 0.0
	if len(values) > 1 {
		step = float64(lineWidth-2*linePad) / float64(len(values)-1)
	}

	points := make([]string, 0, len(values))
	for i, v := range values {
		y := float64(lineHeight - linePad)
		if highest > 0 {
			y -= v / highest * float64(lineHeight-2*linePad)
		}
		points = append(points, fmt.Sprintf("%.1f,%.1f", linePad+step*float64(i), y))
	}

	first, last := c.Labels[0], c.Labels[len(c.Labels)-1]

	return html.Div(
		gomponents.El("svg",
			gomponents.Attr("viewBox", fmt.Sprintf("0 0 %d %d", lineWidth, lineHeight)),
			gomponents.Attr("width", "100%"),
			gomponents.Attr("role", "img"),
			gomponents.El("polyline",
				gomponents.Attr("fill", "none"),
				gomponents.Attr("stroke", "#4c8bf5"),
				gomponents.Attr("stroke-width", "2"),
				gomponents.Attr("points", strings.Join(points, " ")),
			),
		),
		html.P(gomponents.Textf("%s a %s (máx. %s)", first, last, utils.FormatCurrency(highest))),
	)
}

func salesTable(records []domain.SalesRecord) gomponents.Node {
	if len(records) == 0 {
		return html.P(gomponents.Text("Nenhum registro encontrado."))
	}

	shown := records
	if len(shown) > previewRows {
		shown = shown[:previewRows]
	}

	headers := []string{"ORDERNUMBER", "ORDERDATE", "STATUS", "PRODUCTLINE", "CUSTOMERNAME", "COUNTRY", "DEALSIZE", "QUANTITYORDERED", "SALES"}

	return html.Div(
		html.Class("table-wrap"),
		html.Table(
			html.THead(html.Tr(gomponents.Map(headers, func(h string) gomponents.Node {
				return html.Th(gomponents.Text(h))
			}))),
			html.TBody(gomponents.Map(shown, func(r domain.SalesRecord) gomponents.Node {
				return html.Tr(
					html.Td(gomponents.Text(strconv.FormatInt(r.OrderNumber, 10))),
					html.Td(gomponents.Text(r.OrderDate.Format("2006-01-02"))),
					html.Td(gomponents.Text(r.Status)),
					html.Td(gomponents.Text(r.ProductLine)),
					html.Td(gomponents.Text(r.CustomerName)),
					html.Td(gomponents.Text(r.Country)),
					html.Td(gomponents.Text(r.DealSize)),
					html.Td(gomponents.Text(strconv.FormatInt(r.QuantityOrdered, 10))),
					html.Td(gomponents.Text(utils.FormatCurrency(r.Sales))),
				)
			})),
		),
		gomponents.If(len(records) > previewRows,
			html.P(gomponents.Textf("Exibindo %d de %d registros. Use o CSV para a lista completa.", previewRows, len(records))),
		),
	)
}

func queryString(selection reporting.Selection) string {
	if encoded := selection.Params().Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}
