package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos para ORDERDATE; o CSV de origem usa "2/24/2003 0:00".
var orderDateLayouts = []string{
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006",
	time.DateTime,
	time.DateOnly,
	time.RFC3339,
}

func ParseOrderDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range orderDateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("data em formato desconhecido: %q", dateStr)
}
