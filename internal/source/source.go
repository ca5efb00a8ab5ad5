// Package source fetches the exporter's CSV documents. Network and
// availability failures are reported here; interpreting the text is the
// parser's job.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Document names as published by the exporter.
const (
	PositionsDocument   = "portfolio_positions.csv"
	SummaryDocument     = "portfolio_summary.csv"
	BuyHistoryDocument  = "portfolio_buy_history.csv"
	SellHistoryDocument = "portfolio_sell_history.csv"
)

// Client defines the interface for fetching exported CSV documents.
// This interface enables dependency injection and testing with mock
// implementations.
type Client interface {
	FetchDocument(ctx context.Context, name string) (string, error)
}

// ExportClient fetches CSV documents from the static location the exporter
// publishes to. It wraps an HTTP client and resolves document names against
// a base URL.
type ExportClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewExportClient creates a new export client for the given base URL.
//
// Parameters:
//   - baseURL: Location the exporter publishes documents under
//   - timeout: Per-request timeout for document fetches
//
// Returns:
//   - *ExportClient: A new client instance ready for use
func NewExportClient(baseURL string, timeout time.Duration) *ExportClient {
	return &ExportClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// FetchDocument retrieves one CSV document as raw text. A non-success
// status is an error: the caller decides whether the document was
// mandatory.
func (c *ExportClient) FetchDocument(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("document name not set")
	}

	documentURL := fmt.Sprintf("%s/%s", c.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status %d", name, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
