// Package t212 decodes the CSV documents written by the Trading 212
// portfolio exporter: a positions document, a sectioned summary document,
// and optional buy/sell history documents.
//
// The documents are internally generated and trusted, so decoding is best
// effort and never fails on row-level damage: short or malformed rows are
// dropped, unparsable numeric tokens coerce to zero. The only validation
// performed is a per-row column count.
package t212

import (
	"strconv"
	"strings"
)

// SplitLine tokenizes one CSV line. A double quote toggles an in-quotes
// state; a comma separates fields only while outside quotes, so values like
// "1,234.56" and "Stocks & Shares ISA" survive as single tokens. Embedded
// quote escaping is not supported — the exporter never produces it.
func SplitLine(line string) []string {
	line = strings.TrimSpace(line)

	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())

	return fields
}

// ParseNumber normalizes a numeric token: quote characters, thousands
// commas and one leading "+" are formatting noise from the exporter and are
// stripped before parsing. Any token that still does not parse coerces to 0.
func ParseNumber(token string) float64 {
	cleaned := strings.ReplaceAll(token, "\"", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "+")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// CleanText normalizes a text token (currency codes, labels): quotes and
// commas are stripped and the result trimmed. No case folding.
func CleanText(token string) string {
	cleaned := strings.ReplaceAll(token, "\"", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	return strings.TrimSpace(cleaned)
}
