package view

import (
	"fmt"
	"math"
	"time"

	"github.com/Rhymond/go-money"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/t212"
)

// Decimal precision for quantity formatting: share counts keep three
// decimals (fractional shares), everything else two.
const (
	SharePrecision   = 3
	DefaultPrecision = 2
)

// exporterTimeLayout is the timestamp format the exporter writes.
const exporterTimeLayout = "2006-01-02 15:04:05"

// displayTimeLayout is the calendar-date-plus-time presentation format.
const displayTimeLayout = "2 Jan 2006, 15:04"

// printer renders locale-grouped numbers for the reporting locale.
var printer = message.NewPrinter(language.BritishEnglish)

// ValueClass is the sign-derived gain/loss classification the frontend
// uses for colouring. It is computed from the raw signed value, never from
// a formatted string.
type ValueClass string

const (
	ClassGain ValueClass = "gain"
	ClassLoss ValueClass = "loss"
	ClassFlat ValueClass = "flat"
)

// Classify returns the gain/loss/flat class of a signed amount.
func Classify(v float64) ValueClass {
	switch {
	case v > 0:
		return ClassGain
	case v < 0:
		return ClassLoss
	}
	return ClassFlat
}

// FormatCurrency renders an amount with the currency's symbol and locale
// grouping at two decimals, e.g. 1234.5 with "GBP" → "£1,234.50".
func FormatCurrency(v float64, code string) string {
	return money.New(int64(math.Round(v*100)), code).Display()
}

// FormatPercent renders a percentage with an explicit sign for
// non-negative values and two decimals, e.g. 22.74 → "+22.74%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatQuantity renders a number with locale thousands grouping at the
// given decimal precision.
func FormatQuantity(v float64, decimals int) string {
	return printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// FormatDate renders an exporter timestamp as a calendar date plus time.
// Input that does not match the exporter's layout is returned verbatim.
func FormatDate(s string) string {
	t, err := time.Parse(exporterTimeLayout, s)
	if err != nil {
		return s
	}
	return t.Format(displayTimeLayout)
}

// FormatMetricCurrency renders a possibly-unavailable amount. The sentinel
// bypasses numeric formatting and renders verbatim.
func FormatMetricCurrency(m t212.Metric, code string) string {
	if !m.Known {
		return t212.NotAvailable
	}
	return FormatCurrency(m.Value, code)
}

// FormatMetricPercent renders a possibly-unavailable percentage.
func FormatMetricPercent(m t212.Metric) string {
	if !m.Known {
		return t212.NotAvailable
	}
	return FormatPercent(m.Value)
}

// ClassifyMetric classifies a possibly-unavailable amount; the sentinel
// is flat (neither gain nor loss).
func ClassifyMetric(m t212.Metric) ValueClass {
	if !m.Known {
		return ClassFlat
	}
	return Classify(m.Value)
}
