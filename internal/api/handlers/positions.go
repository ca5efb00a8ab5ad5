package handlers

import (
	"net/http"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/api/response"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/service"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/t212"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/view"
)

// PositionsHandler serves the filtered, sorted, formatted holdings table
type PositionsHandler struct {
	snapshots *service.SnapshotService
}

// NewPositionsHandler creates a new PositionsHandler
func NewPositionsHandler(snapshots *service.SnapshotService) *PositionsHandler {
	return &PositionsHandler{
		snapshots: snapshots,
	}
}

// PositionRow pairs one holding with its display strings.
type PositionRow struct {
	t212.Position
	Display PositionDisplay `json:"display"`
}

// PositionDisplay holds the formatted presentation of one holding. Native
// prices format in their own currency, normalized figures in the reporting
// currency.
type PositionDisplay struct {
	Quantity        string          `json:"quantity"`
	AveragePrice    string          `json:"averagePrice"`
	CurrentPrice    string          `json:"currentPrice"`
	AveragePriceGBP string          `json:"averagePriceGBP"`
	CurrentPriceGBP string          `json:"currentPriceGBP"`
	ValueGBP        string          `json:"valueGBP"`
	ChangeGBP       string          `json:"changeGBP"`
	ChangePercent   string          `json:"changePercent"`
	ChangeClass     view.ValueClass `json:"changeClass"`
}

// PositionsResponse is the holdings table plus the active filter and sort
// state for indicator display.
type PositionsResponse struct {
	Account   string        `json:"account"`
	Sort      sortState     `json:"sort"`
	Positions []PositionRow `json:"positions"`
}

// Positions handles GET requests for the holdings table.
//
// Endpoint: GET /api/portfolio/positions?account=&sort=&direction=
// Response: 200 OK with PositionsResponse
// Error: 400 Bad Request on an invalid account or direction parameter
// Error: 503 Service Unavailable before the first successful ingestion pass
func (h *PositionsHandler) Positions(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshots.Current()
	if err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "portfolio snapshot not ready", err.Error())
		return
	}

	account, err := parseAccountQuery(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	state := view.NewPositionsState()
	state.Account = account
	if err := applySortQuery(r, &state); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filtered := view.FilterPositions(snapshot.Positions, state.Account)
	sorted := view.SortPositions(filtered, state.Field, state.Direction)

	rows := make([]PositionRow, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, PositionRow{
			Position: p,
			Display: PositionDisplay{
				Quantity:        view.FormatQuantity(p.Quantity, view.SharePrecision),
				AveragePrice:    view.FormatCurrency(p.AveragePrice, p.AveragePriceCurrency),
				CurrentPrice:    view.FormatCurrency(p.CurrentPrice, p.CurrentPriceCurrency),
				AveragePriceGBP: view.FormatCurrency(p.AveragePriceGBP, snapshot.ReportingCurrency),
				CurrentPriceGBP: view.FormatCurrency(p.CurrentPriceGBP, snapshot.ReportingCurrency),
				ValueGBP:        view.FormatCurrency(p.ValueGBP, snapshot.ReportingCurrency),
				ChangeGBP:       view.FormatCurrency(p.ChangeGBP, snapshot.ReportingCurrency),
				ChangePercent:   view.FormatPercent(p.ChangePercent),
				ChangeClass:     view.Classify(p.ChangeGBP),
			},
		})
	}

	respondJSON(w, http.StatusOK, PositionsResponse{
		Account:   state.Account,
		Sort:      sortState{Field: state.Field, Direction: state.Direction},
		Positions: rows,
	})
}
