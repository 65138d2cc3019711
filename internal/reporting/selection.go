package reporting

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	AllOption = "All"

	DefaultTopN = 10
	MinTopN     = 5
	MaxTopN     = 20
)

// Selection é o estado do formulário de filtros em uma renderização.
type Selection struct {
	Year    string
	Country string
	TopN    int
}

func DefaultSelection() Selection {
	return Selection{Year: AllOption, Country: AllOption, TopN: DefaultTopN}
}

// ParseSelection lê o formulário do dashboard. Valores ausentes assumem o padrão
// e top_n fora de [MinTopN, MaxTopN] é ajustado para o limite mais próximo.
func ParseSelection(query url.Values) Selection {
	selection := DefaultSelection()

	if year := strings.TrimSpace(query.Get("year")); year != "" {
		selection.Year = year
	}
	if country := query.Get("country"); country != "" {
		selection.Country = country
	}
	if raw := strings.TrimSpace(query.Get("top_n")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			selection.TopN = n
		}
	}

	selection.TopN = clampTopN(selection.TopN)
	return selection
}

func clampTopN(n int) int {
	return min(max(n, MinTopN), MaxTopN)
}

// Params inclui year e country somente quando um valor específico foi escolhido.
func (s Selection) Params() url.Values {
	params := url.Values{}
	if s.Year != "" && s.Year != AllOption {
		params.Set("year", s.Year)
	}
	if s.Country != "" && s.Country != AllOption {
		params.Set("country", s.Country)
	}
	return params
}

// TopNParams é usado apenas pelos rankings de país e linha de produto.
func (s Selection) TopNParams() url.Values {
	params := s.Params()
	params.Set("top_n", strconv.Itoa(clampTopN(s.TopN)))
	return params
}
