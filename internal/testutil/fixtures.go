// Package testutil provides shared helpers for tests: exporter document
// fixtures, a fake document source, and HTTP request builders.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/service"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/source"
)

// PositionsCSV is a well-formed positions document: header row plus three
// holdings across both accounts, with quoted grouped numbers and a signed
// change column as the exporter writes them.
const PositionsCSV = `ACCOUNT,NAME,TICKER,SHARES,AVG_PRICE_CURRENCY,CURRENT_PRICE_CURRENCY,AVG_PRICE,CURRENT_PRICE,AVG_PRICE_GBP,CURRENT_PRICE_GBP,VALUE_GBP,CHANGE_GBP,CHANGE_PCT
Trading,Microsoft,MSFT_US_EQ,0.138,USD,USD,415.80,328.48,510.35,403.18,70.43,+13.05,22.74
ISA,"Vanguard S&P 500",VUAG_EQ,12.5,GBP,GBP,78.12,85.40,78.12,85.40,"1,067.50",+91.00,9.32
ISA,Tesla,TSLA_US_EQ,0.5,USD,USD,250.00,198.75,310.00,246.45,123.22,-31.78,-20.50
`

// SummaryCSV is a well-formed summary document: generation timestamp,
// blank separators, both marker sections and their repeated headers.
const SummaryCSV = `Trading 212 Portfolio Summary - Generated on 2025-11-16 11:02:10

ACCOUNT SUMMARIES
ACCOUNT,FREE_FUNDS,PORTFOLIO,RESULT,CURRENCY
"Stocks & Shares ISA","5,000.50","150,000.00","+30,000.25",GBP
Invest Account,"2,538.22","58,473.25","+15,475.50",GBP

COMBINED TOTALS
TOTAL_FREE_FUNDS,TOTAL_PORTFOLIO,TOTAL_RESULT,CURRENCY
"7,538.72","208,473.25","+45,475.75",GBP
`

// BuyHistoryCSV holds two buy orders: one with known comparison figures
// and one carrying the N/A sentinel in the trailing three columns.
const BuyHistoryCSV = `DATE,TICKER,NAME,SHARES,PRICE,VALUE,FEE,CURRENT_PRICE,CURRENT_VALUE,PERFORMANCE_PCT
2025-10-02 14:30:12,MSFT_US_EQ,Microsoft,0.138,415.80,57.38,Not available,510.35,70.43,+22.74
2025-09-15 09:05:44,AAPL_US_EQ,Apple,1.0,170.00,170.00,Not available,N/A,N/A,N/A
`

// SellHistoryCSV holds one sell order.
const SellHistoryCSV = `DATE,TICKER,NAME,SHARES,PRICE,VALUE,FEE
2025-08-20 10:12:33,TSLA_US_EQ,Tesla,0.5,250.00,125.00,Not available
`

// FakeSourceClient is an in-memory source.Client backed by a document map.
// Documents with a configured error fail; documents missing from the map
// fail with a not-found error.
type FakeSourceClient struct {
	Documents map[string]string
	Errors    map[string]error
}

// NewFakeSourceClient returns a fake source preloaded with all four
// well-formed fixture documents.
func NewFakeSourceClient() *FakeSourceClient {
	return &FakeSourceClient{
		Documents: map[string]string{
			source.PositionsDocument:   PositionsCSV,
			source.SummaryDocument:     SummaryCSV,
			source.BuyHistoryDocument:  BuyHistoryCSV,
			source.SellHistoryDocument: SellHistoryCSV,
		},
		Errors: map[string]error{},
	}
}

// FetchDocument implements source.Client.
func (c *FakeSourceClient) FetchDocument(_ context.Context, name string) (string, error) {
	if err, ok := c.Errors[name]; ok {
		return "", err
	}
	text, ok := c.Documents[name]
	if !ok {
		return "", fmt.Errorf("document %s not found", name)
	}
	return text, nil
}

// NewTestSnapshotService builds a SnapshotService on the fake source and
// runs one ingestion pass so the snapshot is ready to serve.
func NewTestSnapshotService(t *testing.T, client source.Client) *service.SnapshotService {
	t.Helper()

	if client == nil {
		client = NewFakeSourceClient()
	}
	snapshots := service.NewSnapshotService(client)
	if _, err := snapshots.Refresh(context.Background()); err != nil {
		t.Fatalf("refreshing test snapshot: %v", err)
	}
	return snapshots
}
