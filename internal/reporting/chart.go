package reporting

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

const (
	ChartBar  = "bar"
	ChartLine = "line"
)

// ChartData é uma série pronta para renderização: um rótulo por ponto.
type ChartData struct {
	Type   string
	Title  string
	Labels []string
	Data   []ChartSeries
}

type ChartSeries struct {
	Name   string
	Values []float64
}

// Max devolve o maior valor entre as séries (0 para gráfico vazio)
func (c ChartData) Max() float64 {
	var highest float64
	for _, series := range c.Data {
		for _, v := range series.Values {
			highest = math.Max(highest, v)
		}
	}
	return highest
}

func (c ChartData) Empty() bool {
	return len(c.Labels) == 0
}

// ToBarChartData usa xKey como rótulo e yKey como valor, na ordem recebida da API.
func ToBarChartData(title string, rows []map[string]any, xKey, yKey string) ChartData {
	return toChartData(ChartBar, title, rows, xKey, yKey)
}

func ToLineChartData(title string, rows []map[string]any, xKey, yKey string) ChartData {
	return toChartData(ChartLine, title, rows, xKey, yKey)
}

func toChartData(chartType, title string, rows []map[string]any, xKey, yKey string) ChartData {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))

	for i, row := range rows {
		labels[i] = formatLabel(row[xKey])
		values[i] = toFloat64(row[yKey])
	}

	return ChartData{
		Type:   chartType,
		Title:  title,
		Labels: labels,
		Data:   []ChartSeries{{Name: yKey, Values: values}},
	}
}

// ToMonthlyTrendData ordena por ano e mês e rotula cada ponto como YYYY-MM.
func ToMonthlyTrendData(title string, rows []map[string]any) ChartData {
	sorted := make([]map[string]any, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi, yj := toFloat64(sorted[i]["year"]), toFloat64(sorted[j]["year"])
		if yi != yj {
			return yi < yj
		}
		return toFloat64(sorted[i]["month"]) < toFloat64(sorted[j]["month"])
	})

	labels := make([]string, len(sorted))
	values := make([]float64, len(sorted))
	for i, row := range sorted {
		labels[i] = fmt.Sprintf("%s-%02d", formatLabel(row["year"]), int(toFloat64(row["month"])))
		values[i] = toFloat64(row["total_sales"])
	}

	return ChartData{
		Type:   ChartLine,
		Title:  title,
		Labels: labels,
		Data:   []ChartSeries{{Name: "total_sales", Values: values}},
	}
}

func formatLabel(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// JSON decodifica anos como float64
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', 2, 64)
	case int, int32, int64:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toFloat64(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}
