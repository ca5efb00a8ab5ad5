package t212

import "time"

// Account classifications used by the Trading 212 exporter. The exporter
// writes exactly these two labels in the positions document.
const (
	AccountISA     = "ISA"
	AccountTrading = "Trading"
)

// Position is one currently-held investment line item, mapped one-to-one
// from a row of the positions document. All monetary *GBP fields are already
// normalized to the reporting currency by the exporter; they are taken as
// authoritative and never recomputed here.
type Position struct {
	Account              string  `json:"account"`
	Name                 string  `json:"name"`
	Ticker               string  `json:"ticker"`
	Quantity             float64 `json:"quantity"`
	AveragePriceCurrency string  `json:"averagePriceCurrency"`
	CurrentPriceCurrency string  `json:"currentPriceCurrency"`
	AveragePrice         float64 `json:"averagePrice"`
	CurrentPrice         float64 `json:"currentPrice"`
	AveragePriceGBP      float64 `json:"averagePriceGBP"`
	CurrentPriceGBP      float64 `json:"currentPriceGBP"`
	ValueGBP             float64 `json:"valueGBP"`
	ChangeGBP            float64 `json:"changeGBP"`
	ChangePercent        float64 `json:"changePercent"`
}

// AccountSummary is the per-account cash/value/result rollup from the
// ACCOUNT SUMMARIES section of the summary document.
type AccountSummary struct {
	Account   string  `json:"account"`
	FreeFunds float64 `json:"freeFunds"`
	Portfolio float64 `json:"portfolio"`
	Result    float64 `json:"result"`
	Currency  string  `json:"currency"`
}

// CombinedTotals is the single cross-account rollup from the COMBINED TOTALS
// section of the summary document.
type CombinedTotals struct {
	FreeFunds float64 `json:"freeFunds"`
	Portfolio float64 `json:"portfolio"`
	Result    float64 `json:"result"`
	Currency  string  `json:"currency"`
}

// SummaryDocument is the parsed form of the summary export: the free-text
// generation date from the first line (empty when absent), the account
// rollups in document order, and the combined totals.
type SummaryDocument struct {
	GeneratedDate string           `json:"generatedDate"`
	Accounts      []AccountSummary `json:"accounts"`
	Totals        CombinedTotals   `json:"totals"`
}

// SellRecord is one executed sell order from the sell-history document.
// Fee is carried as text: the exporter writes a placeholder there because
// fees are not obtainable from the data source.
type SellRecord struct {
	Date     string  `json:"date"`
	Ticker   string  `json:"ticker"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Value    float64 `json:"value"`
	Fee      string  `json:"fee"`
}

// BuyRecord is one executed buy order. The trailing three fields compare the
// order against today's market and may legitimately be the sentinel "N/A";
// they are carried as Metric so that unknown is never conflated with zero.
type BuyRecord struct {
	Date               string  `json:"date"`
	Ticker             string  `json:"ticker"`
	Name               string  `json:"name"`
	Quantity           float64 `json:"quantity"`
	Price              float64 `json:"price"`
	Value              float64 `json:"value"`
	Fee                string  `json:"fee"`
	CurrentPrice       Metric  `json:"currentPrice"`
	CurrentValue       Metric  `json:"currentValue"`
	PerformancePercent Metric  `json:"performancePercent"`
}

// PortfolioSnapshot is the immutable result of one full ingestion pass:
// both mandatory documents parsed, both optional history documents parsed
// or substituted with empty slices. It is never partially valid — if either
// mandatory document is unavailable no snapshot is constructed.
type PortfolioSnapshot struct {
	ID                string           `json:"id"`
	Positions         []Position       `json:"positions"`
	Accounts          []AccountSummary `json:"accounts"`
	Totals            CombinedTotals   `json:"totals"`
	Buys              []BuyRecord      `json:"buys"`
	Sells             []SellRecord     `json:"sells"`
	ReportingCurrency string           `json:"reportingCurrency"`
	GeneratedDate     string           `json:"generatedDate"`
	ImportedAt        time.Time        `json:"importedAt"`
}
