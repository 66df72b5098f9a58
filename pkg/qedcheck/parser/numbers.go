package parser

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// ParseNumber reads a cell value as a number. Currency formatting such as
// "$425,720" is accepted.
func ParseNumber(s string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatCurrency renders v as whole dollars with thousands separators.
func FormatCurrency(v float64) string {
	return currencyPrinter.Sprintf("$%d", int64(math.Round(v)))
}
