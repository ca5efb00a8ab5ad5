package t212

import "strings"

// Column counts per document. Rows tokenizing to fewer columns are dropped.
const (
	positionColumns = 13
	accountColumns  = 5
	totalsColumns   = 4
	sellColumns     = 7
	buyColumns      = 10
)

// generatedMarker introduces the free-text generation timestamp on the
// first line of the summary document.
const generatedMarker = "Generated on "

// Section markers of the summary document. Marker lines are state
// transitions only and are never parsed as data.
const (
	accountsMarker = "ACCOUNT SUMMARIES"
	totalsMarker   = "COMBINED TOTALS"
)

// Repeated column headers inside the summary sections, skipped by prefix.
const (
	accountsHeaderPrefix = "ACCOUNT,FREE_FUNDS"
	totalsHeaderPrefix   = "TOTAL_FREE_FUNDS"
)

// summaryState is the position of the scan within the summary document.
type summaryState int

const (
	statePreamble summaryState = iota
	stateAccounts
	stateTotals
)

// ParsePositions decodes the positions document: one header line followed
// by one row per holding. The header is skipped by index, never matched by
// content. Rows with fewer than 13 fields are dropped. Output preserves
// file order.
func ParsePositions(text string) []Position {
	lines := strings.Split(text, "\n")

	positions := []Position{}
	for i, line := range lines {
		if i == 0 {
			continue
		}
		fields := SplitLine(line)
		if len(fields) < positionColumns {
			continue
		}

		positions = append(positions, Position{
			Account:              CleanText(fields[0]),
			Name:                 CleanText(fields[1]),
			Ticker:               CleanText(fields[2]),
			Quantity:             ParseNumber(fields[3]),
			AveragePriceCurrency: CleanText(fields[4]),
			CurrentPriceCurrency: CleanText(fields[5]),
			AveragePrice:         ParseNumber(fields[6]),
			CurrentPrice:         ParseNumber(fields[7]),
			AveragePriceGBP:      ParseNumber(fields[8]),
			CurrentPriceGBP:      ParseNumber(fields[9]),
			ValueGBP:             ParseNumber(fields[10]),
			ChangeGBP:            ParseNumber(fields[11]),
			ChangePercent:        ParseNumber(fields[12]),
		})
	}

	return positions
}

// ParseSummary decodes the summary document with a single forward scan over
// three states: preamble, ACCOUNT SUMMARIES and COMBINED TOTALS. The first
// line may carry a "Generated on <timestamp>" fragment; when it does not,
// GeneratedDate stays empty. Blank lines are permitted anywhere. If the
// totals section carries more than one well-formed row, the last one wins.
func ParseSummary(text string) SummaryDocument {
	lines := strings.Split(text, "\n")

	doc := SummaryDocument{Accounts: []AccountSummary{}}

	if len(lines) > 0 {
		if idx := strings.Index(lines[0], generatedMarker); idx >= 0 {
			doc.GeneratedDate = CleanText(lines[0][idx+len(generatedMarker):])
		}
	}

	state := statePreamble
	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		switch {
		case strings.Contains(line, totalsMarker):
			state = stateTotals
			continue
		case strings.Contains(line, accountsMarker):
			state = stateAccounts
			continue
		}

		if line == "" {
			continue
		}

		switch state {
		case stateAccounts:
			if strings.HasPrefix(line, accountsHeaderPrefix) {
				continue
			}
			fields := SplitLine(line)
			if len(fields) < accountColumns {
				continue
			}
			doc.Accounts = append(doc.Accounts, AccountSummary{
				Account:   CleanText(fields[0]),
				FreeFunds: ParseNumber(fields[1]),
				Portfolio: ParseNumber(fields[2]),
				Result:    ParseNumber(fields[3]),
				Currency:  CleanText(fields[4]),
			})

		case stateTotals:
			if strings.HasPrefix(line, totalsHeaderPrefix) {
				continue
			}
			fields := SplitLine(line)
			if len(fields) < totalsColumns {
				continue
			}
			doc.Totals = CombinedTotals{
				FreeFunds: ParseNumber(fields[0]),
				Portfolio: ParseNumber(fields[1]),
				Result:    ParseNumber(fields[2]),
				Currency:  CleanText(fields[3]),
			}
		}
	}

	return doc
}

// ParseSellHistory decodes the sell-history document: one header row
// skipped by index, then 7 fixed columns per executed order. The fee
// column is free text — the exporter writes a placeholder there.
func ParseSellHistory(text string) []SellRecord {
	lines := strings.Split(text, "\n")

	sells := []SellRecord{}
	for i, line := range lines {
		if i == 0 {
			continue
		}
		fields := SplitLine(line)
		if len(fields) < sellColumns {
			continue
		}

		sells = append(sells, SellRecord{
			Date:     CleanText(fields[0]),
			Ticker:   CleanText(fields[1]),
			Name:     CleanText(fields[2]),
			Quantity: ParseNumber(fields[3]),
			Price:    ParseNumber(fields[4]),
			Value:    ParseNumber(fields[5]),
			Fee:      CleanText(fields[6]),
		})
	}

	return sells
}

// ParseBuyHistory decodes the buy-history document. Buy rows extend the
// sell layout with three comparison-to-market columns that may carry the
// "N/A" sentinel; those decode through ParseMetric so the sentinel is
// preserved instead of coerced to zero.
func ParseBuyHistory(text string) []BuyRecord {
	lines := strings.Split(text, "\n")

	buys := []BuyRecord{}
	for i, line := range lines {
		if i == 0 {
			continue
		}
		fields := SplitLine(line)
		if len(fields) < buyColumns {
			continue
		}

		buys = append(buys, BuyRecord{
			Date:               CleanText(fields[0]),
			Ticker:             CleanText(fields[1]),
			Name:               CleanText(fields[2]),
			Quantity:           ParseNumber(fields[3]),
			Price:              ParseNumber(fields[4]),
			Value:              ParseNumber(fields[5]),
			Fee:                CleanText(fields[6]),
			CurrentPrice:       ParseMetric(fields[7]),
			CurrentValue:       ParseMetric(fields[8]),
			PerformancePercent: ParseMetric(fields[9]),
		})
	}

	return buys
}
