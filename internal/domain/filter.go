package domain

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const DefaultTopN uint64 = 10

var (
	ErrInvalidYear = errors.New("year must be an integer")
	ErrInvalidTopN = errors.New("top_n must be a positive integer")
)

// Field identifica uma coluna filtrável. O mapeamento para o nome real da coluna
// fica no repositório, nunca vem da requisição.
type Field string

const (
	FieldYear    Field = "year"
	FieldCountry Field = "country"
)

type Operator string

const OperatorEq Operator = "="

// Predicate é uma restrição (campo, operador, valor) aplicada antes da agregação.
type Predicate struct {
	Field    Field
	Operator Operator
	Value    any
}

// SalesFilter guarda os filtros opcionais de ano e país; nil significa ausente.
type SalesFilter struct {
	Year    *int
	Country *string
}

// ParseSalesFilter valida os parâmetros year e country da query string
func ParseSalesFilter(query url.Values) (SalesFilter, error) {
	var filter SalesFilter

	if raw := strings.TrimSpace(query.Get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return SalesFilter{}, errors.Wrapf(ErrInvalidYear, "valor recebido %q", raw)
		}
		filter.Year = &year
	}

	if country := query.Get("country"); country != "" {
		filter.Country = &country
	}

	return filter, nil
}

// ParseTopN interpreta top_n; vazio assume DefaultTopN, zero e negativos são rejeitados.
func ParseTopN(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTopN, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, errors.Wrapf(ErrInvalidTopN, "valor recebido %q", raw)
	}

	return uint64(n), nil
}

func (f SalesFilter) IsEmpty() bool {
	return f.Year == nil && f.Country == nil
}

// Predicates devolve os filtros presentes, sempre na ordem ano, país.
func (f SalesFilter) Predicates() []Predicate {
	predicates := make([]Predicate, 0, 2)
	if f.Year != nil {
		predicates = append(predicates, Predicate{Field: FieldYear, Operator: OperatorEq, Value: *f.Year})
	}
	if f.Country != nil {
		predicates = append(predicates, Predicate{Field: FieldCountry, Operator: OperatorEq, Value: *f.Country})
	}
	return predicates
}

// Params converte o filtro de volta em query string.
func (f SalesFilter) Params() url.Values {
	params := url.Values{}
	if f.Year != nil {
		params.Set("year", strconv.Itoa(*f.Year))
	}
	if f.Country != nil {
		params.Set("country", *f.Country)
	}
	return params
}
