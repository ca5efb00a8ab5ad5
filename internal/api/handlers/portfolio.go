package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/api/response"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/apperrors"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/service"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/t212"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/view"
)

// PortfolioHandler serves the snapshot overview and on-demand refreshes
type PortfolioHandler struct {
	snapshots *service.SnapshotService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(snapshots *service.SnapshotService) *PortfolioHandler {
	return &PortfolioHandler{
		snapshots: snapshots,
	}
}

// AccountSummaryRow pairs one account rollup with its display strings.
type AccountSummaryRow struct {
	t212.AccountSummary
	Display AccountSummaryDisplay `json:"display"`
}

// AccountSummaryDisplay holds the formatted presentation of one account
// rollup. ResultClass carries the sign-derived gain/loss colouring.
type AccountSummaryDisplay struct {
	FreeFunds   string          `json:"freeFunds"`
	Portfolio   string          `json:"portfolio"`
	Result      string          `json:"result"`
	ResultClass view.ValueClass `json:"resultClass"`
}

// TotalsRow pairs the combined totals with their display strings.
type TotalsRow struct {
	t212.CombinedTotals
	Display AccountSummaryDisplay `json:"display"`
}

// OverviewResponse is the snapshot overview: identity, generation and
// import timestamps, account rollups and combined totals.
type OverviewResponse struct {
	ID                string              `json:"id"`
	GeneratedDate     string              `json:"generatedDate"`
	GeneratedDisplay  string              `json:"generatedDisplay"`
	ImportedAt        time.Time           `json:"importedAt"`
	ReportingCurrency string              `json:"reportingCurrency"`
	Accounts          []AccountSummaryRow `json:"accounts"`
	Totals            TotalsRow           `json:"totals"`
	Positions         int                 `json:"positions"`
	Buys              int                 `json:"buys"`
	Sells             int                 `json:"sells"`
}

// Overview handles GET requests for the snapshot overview.
//
// Endpoint: GET /api/portfolio
// Response: 200 OK with OverviewResponse
// Error: 503 Service Unavailable before the first successful ingestion pass
func (h *PortfolioHandler) Overview(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshots.Current()
	if err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "portfolio snapshot not ready", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, buildOverview(snapshot))
}

// Refresh handles POST requests for an on-demand ingestion pass.
//
// Endpoint: POST /api/portfolio/refresh
// Response: 200 OK with the fresh OverviewResponse
// Error: 502 Bad Gateway when a mandatory document cannot be fetched
func (h *PortfolioHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshots.Refresh(r.Context())
	if err != nil {
		status := http.StatusBadGateway
		if !errors.Is(err, apperrors.ErrPositionsUnavailable) && !errors.Is(err, apperrors.ErrSummaryUnavailable) {
			status = http.StatusInternalServerError
		}
		response.RespondError(w, status, apperrors.ErrFailedToRefreshSnapshot.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, buildOverview(snapshot))
}

func buildOverview(snapshot *t212.PortfolioSnapshot) OverviewResponse {
	accounts := make([]AccountSummaryRow, 0, len(snapshot.Accounts))
	for _, a := range snapshot.Accounts {
		accounts = append(accounts, AccountSummaryRow{
			AccountSummary: a,
			Display: AccountSummaryDisplay{
				FreeFunds:   view.FormatCurrency(a.FreeFunds, a.Currency),
				Portfolio:   view.FormatCurrency(a.Portfolio, a.Currency),
				Result:      view.FormatCurrency(a.Result, a.Currency),
				ResultClass: view.Classify(a.Result),
			},
		})
	}

	totals := snapshot.Totals
	return OverviewResponse{
		ID:                snapshot.ID,
		GeneratedDate:     snapshot.GeneratedDate,
		GeneratedDisplay:  view.FormatDate(snapshot.GeneratedDate),
		ImportedAt:        snapshot.ImportedAt,
		ReportingCurrency: snapshot.ReportingCurrency,
		Accounts:          accounts,
		Totals: TotalsRow{
			CombinedTotals: totals,
			Display: AccountSummaryDisplay{
				FreeFunds:   view.FormatCurrency(totals.FreeFunds, snapshot.ReportingCurrency),
				Portfolio:   view.FormatCurrency(totals.Portfolio, snapshot.ReportingCurrency),
				Result:      view.FormatCurrency(totals.Result, snapshot.ReportingCurrency),
				ResultClass: view.Classify(totals.Result),
			},
		},
		Positions: len(snapshot.Positions),
		Buys:      len(snapshot.Buys),
		Sells:     len(snapshot.Sells),
	}
}
