package analytics

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análise de vendas
var (
	// Erros de validação
	ErrUnsupportedDimension = errors.New("dimension does not support filtered top-N")

	// Erros de banco de dados
	ErrFetchSales   = errors.New("error fetching sales records")
	ErrFetchKPI     = errors.New("error computing KPI")
	ErrFetchSummary = errors.New("error computing sales summary")
)

// AnalyticsError é um erro com o código da API e detalhes para o cliente
type AnalyticsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewAnalyticsError(err error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
