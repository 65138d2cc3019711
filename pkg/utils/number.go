package utils

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCurrency formata um valor monetário como "$1,234.56".
func FormatCurrency(f float64) string {
	sign := ""
	if f < 0 {
		sign = "-"
	}

	cents := int64(math.Round(math.Abs(f) * 100))
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(cents/100), cents%100)
}
