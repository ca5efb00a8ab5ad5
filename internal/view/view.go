// Package view derives display-ready data from parsed exporter records:
// account filtering, stable field sorting with per-table selection state,
// and pure formatting helpers. Nothing here mutates its input; every
// function returns freshly derived data so independently rendered tables
// never share state.
package view

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/t212"
)

// Direction of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// AccountAll selects every position regardless of account classification.
const AccountAll = "All"

// Sort field names per table. These match the JSON field names the API
// emits, so the frontend can echo a column name back as the sort key.
const (
	FieldAccount            = "account"
	FieldName               = "name"
	FieldTicker             = "ticker"
	FieldQuantity           = "quantity"
	FieldAveragePrice       = "averagePrice"
	FieldCurrentPrice       = "currentPrice"
	FieldAveragePriceGBP    = "averagePriceGBP"
	FieldCurrentPriceGBP    = "currentPriceGBP"
	FieldValueGBP           = "valueGBP"
	FieldChangeGBP          = "changeGBP"
	FieldChangePercent      = "changePercent"
	FieldDate               = "date"
	FieldPrice              = "price"
	FieldValue              = "value"
	FieldFee                = "fee"
	FieldCurrentValue       = "currentValue"
	FieldPerformancePercent = "performancePercent"
)

// collator backs locale-aware text comparison during sorts.
var collator = collate.New(language.English)

// TableState is the externally-owned sort/filter selection for one table.
type TableState struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
	Account   string    `json:"account"`
}

// NewPositionsState returns the default positions selection: every account,
// descending by market value.
func NewPositionsState() TableState {
	return TableState{Field: FieldValueGBP, Direction: Descending, Account: AccountAll}
}

// NewHistoryState returns the default trade-history selection: descending
// by execution date.
func NewHistoryState() TableState {
	return TableState{Field: FieldDate, Direction: Descending}
}

// Select applies a column selection: re-selecting the active field toggles
// the direction, selecting a new field resets to descending.
func (s *TableState) Select(field string) {
	if field == s.Field {
		if s.Direction == Descending {
			s.Direction = Ascending
		} else {
			s.Direction = Descending
		}
		return
	}
	s.Field = field
	s.Direction = Descending
}

// FilterPositions returns the positions whose account classification equals
// the selector, preserving relative order. The selector "All" returns a
// copy of the whole input. The source slice is never mutated.
func FilterPositions(positions []t212.Position, account string) []t212.Position {
	filtered := make([]t212.Position, 0, len(positions))
	for _, p := range positions {
		if account == AccountAll || p.Account == account {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// sortKey is the comparable projection of one record field. Values of
// different kinds (a known number against the N/A sentinel, or a number
// against text) compare equal, so mixed pairs keep their relative order.
type sortKey struct {
	kind sortKind
	num  float64
	str  string
}

type sortKind int

const (
	kindNumber sortKind = iota
	kindText
	kindUnavailable
)

func numberKey(v float64) sortKey { return sortKey{kind: kindNumber, num: v} }
func textKey(s string) sortKey    { return sortKey{kind: kindText, str: s} }

func metricKey(m t212.Metric) sortKey {
	if !m.Known {
		return sortKey{kind: kindUnavailable}
	}
	return numberKey(m.Value)
}

// compare returns a negative/zero/positive ordering for ascending order.
func (a sortKey) compare(b sortKey) int {
	if a.kind != b.kind {
		return 0
	}
	switch a.kind {
	case kindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case kindText:
		return collator.CompareString(a.str, b.str)
	}
	return 0
}

// less orders two keys for the given direction. Equal keys (including
// every mixed-kind pair) report false both ways, which keeps the stable
// sort from reordering them.
func less(a, b sortKey, direction Direction) bool {
	c := a.compare(b)
	if direction == Descending {
		return c > 0
	}
	return c < 0
}

// SortPositions returns a new slice sorted by the named field. Unknown
// field names leave the order untouched. The input is never mutated.
func SortPositions(positions []t212.Position, field string, direction Direction) []t212.Position {
	sorted := make([]t212.Position, len(positions))
	copy(sorted, positions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(positionKey(sorted[i], field), positionKey(sorted[j], field), direction)
	})
	return sorted
}

// SortBuys returns a new slice of buy records sorted by the named field.
func SortBuys(buys []t212.BuyRecord, field string, direction Direction) []t212.BuyRecord {
	sorted := make([]t212.BuyRecord, len(buys))
	copy(sorted, buys)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(buyKey(sorted[i], field), buyKey(sorted[j], field), direction)
	})
	return sorted
}

// SortSells returns a new slice of sell records sorted by the named field.
func SortSells(sells []t212.SellRecord, field string, direction Direction) []t212.SellRecord {
	sorted := make([]t212.SellRecord, len(sells))
	copy(sorted, sells)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sellKey(sorted[i], field), sellKey(sorted[j], field), direction)
	})
	return sorted
}

func positionKey(p t212.Position, field string) sortKey {
	switch field {
	case FieldAccount:
		return textKey(p.Account)
	case FieldName:
		return textKey(p.Name)
	case FieldTicker:
		return textKey(p.Ticker)
	case FieldQuantity:
		return numberKey(p.Quantity)
	case FieldAveragePrice:
		return numberKey(p.AveragePrice)
	case FieldCurrentPrice:
		return numberKey(p.CurrentPrice)
	case FieldAveragePriceGBP:
		return numberKey(p.AveragePriceGBP)
	case FieldCurrentPriceGBP:
		return numberKey(p.CurrentPriceGBP)
	case FieldValueGBP:
		return numberKey(p.ValueGBP)
	case FieldChangeGBP:
		return numberKey(p.ChangeGBP)
	case FieldChangePercent:
		return numberKey(p.ChangePercent)
	}
	return sortKey{kind: kindUnavailable}
}

func buyKey(b t212.BuyRecord, field string) sortKey {
	switch field {
	case FieldDate:
		return textKey(b.Date)
	case FieldTicker:
		return textKey(b.Ticker)
	case FieldName:
		return textKey(b.Name)
	case FieldQuantity:
		return numberKey(b.Quantity)
	case FieldPrice:
		return numberKey(b.Price)
	case FieldValue:
		return numberKey(b.Value)
	case FieldFee:
		return textKey(b.Fee)
	case FieldCurrentPrice:
		return metricKey(b.CurrentPrice)
	case FieldCurrentValue:
		return metricKey(b.CurrentValue)
	case FieldPerformancePercent:
		return metricKey(b.PerformancePercent)
	}
	return sortKey{kind: kindUnavailable}
}

func sellKey(s t212.SellRecord, field string) sortKey {
	switch field {
	case FieldDate:
		return textKey(s.Date)
	case FieldTicker:
		return textKey(s.Ticker)
	case FieldName:
		return textKey(s.Name)
	case FieldQuantity:
		return numberKey(s.Quantity)
	case FieldPrice:
		return numberKey(s.Price)
	case FieldValue:
		return numberKey(s.Value)
	case FieldFee:
		return textKey(s.Fee)
	}
	return sortKey{kind: kindUnavailable}
}
