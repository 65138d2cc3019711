package domain

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Dimension é uma coluna categórica usada como chave de GROUP BY. O valor também
// é o nome do campo no JSON de resposta.
type Dimension string

const (
	DimensionCountry     Dimension = "country"
	DimensionYear        Dimension = "year"
	DimensionProductLine Dimension = "productline"
	DimensionDealSize    Dimension = "dealsize"
	DimensionStatus      Dimension = "status"
)

var ErrUnknownDimension = errors.New("unknown dimension")

// Dimensions lista as dimensões na ordem em que o dashboard as consome
var Dimensions = []Dimension{
	DimensionCountry,
	DimensionYear,
	DimensionProductLine,
	DimensionDealSize,
	DimensionStatus,
}

func (d Dimension) Valid() bool {
	for _, dim := range Dimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// SupportsTopN indica se a dimensão possui a variante filtrada com top-N.
func (d Dimension) SupportsTopN() bool {
	return d == DimensionCountry || d == DimensionProductLine
}

// DimensionTotal é o total de vendas de um valor da dimensão. Value é string,
// exceto para ano (int64); nil quando a coluna é nula.
type DimensionTotal struct {
	Dimension  Dimension
	Value      any
	TotalSales float64
}

func (t DimensionTotal) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(map[string]any{
		string(t.Dimension): t.Value,
		"total_sales":       t.TotalSales,
	})
}

type MonthTotal struct {
	Year       int64   `json:"year"`
	Month      int64   `json:"month"`
	TotalSales float64 `json:"total_sales"`
}
