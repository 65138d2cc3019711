package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Colunas que podem aparecer em um WHERE. Somente estes identificadores entram
// no texto SQL; os valores sempre seguem como parâmetros.
var filterColumns = map[domain.Field]string{
	domain.FieldYear:    `"YEAR_ID"`,
	domain.FieldCountry: `"COUNTRY"`,
}

// compilePredicates converte a lista de predicados em uma conjunção parametrizada.
// Retorna nil quando não há predicados.
func compilePredicates(predicates []domain.Predicate) (squirrel.Sqlizer, error) {
	if len(predicates) == 0 {
		return nil, nil
	}

	conditions := make(squirrel.And, 0, len(predicates))
	for _, p := range predicates {
		column, ok := filterColumns[p.Field]
		if !ok {
			return nil, fmt.Errorf("campo de filtro não suportado: %q", p.Field)
		}

		switch p.Operator {
		case domain.OperatorEq:
			conditions = append(conditions, squirrel.Eq{column: p.Value})
		default:
			return nil, fmt.Errorf("operador de filtro não suportado: %q", p.Operator)
		}
	}

	return conditions, nil
}

// applyFilter adiciona o WHERE ao select quando o filtro possui predicados
func applyFilter(query squirrel.SelectBuilder, filter domain.SalesFilter) (squirrel.SelectBuilder, error) {
	where, err := compilePredicates(filter.Predicates())
	if err != nil {
		return query, err
	}
	if where == nil {
		return query, nil
	}
	return query.Where(where), nil
}
