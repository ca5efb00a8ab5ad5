package handlers

import (
	"net/http"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/api/response"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/apperrors"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/service"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/t212"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/view"
)

// History sides. Buy rows carry comparison-to-market fields that sells
// do not have.
const (
	sideBuy  = "buy"
	sideSell = "sell"
)

// HistoryHandler serves the sorted, formatted trade-history tables
type HistoryHandler struct {
	snapshots *service.SnapshotService
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(snapshots *service.SnapshotService) *HistoryHandler {
	return &HistoryHandler{
		snapshots: snapshots,
	}
}

// TradeDisplay holds the formatted presentation shared by both history
// tables. The comparison fields stay empty on sell rows.
type TradeDisplay struct {
	Date               string          `json:"date"`
	Quantity           string          `json:"quantity"`
	Price              string          `json:"price"`
	Value              string          `json:"value"`
	CurrentPrice       string          `json:"currentPrice,omitempty"`
	CurrentValue       string          `json:"currentValue,omitempty"`
	PerformancePercent string          `json:"performancePercent,omitempty"`
	PerformanceClass   view.ValueClass `json:"performanceClass,omitempty"`
}

// BuyRow pairs one buy order with its display strings.
type BuyRow struct {
	t212.BuyRecord
	Display TradeDisplay `json:"display"`
}

// SellRow pairs one sell order with its display strings.
type SellRow struct {
	t212.SellRecord
	Display TradeDisplay `json:"display"`
}

// HistoryResponse is one trade-history table plus its active sort state.
// Exactly one of Buys/Sells is set, matching the requested side. An
// absent history document surfaces as an empty list, not an error.
type HistoryResponse struct {
	Side  string    `json:"side"`
	Sort  sortState `json:"sort"`
	Buys  []BuyRow  `json:"buys"`
	Sells []SellRow `json:"sells"`
}

// History handles GET requests for the trade-history tables.
//
// Endpoint: GET /api/portfolio/history?side=buy|sell&sort=&direction=
// Response: 200 OK with HistoryResponse
// Error: 400 Bad Request on an invalid side or direction parameter
// Error: 503 Service Unavailable before the first successful ingestion pass
func (h *HistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshots.Current()
	if err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "portfolio snapshot not ready", err.Error())
		return
	}

	side := r.URL.Query().Get("side")
	if side == "" {
		side = sideBuy
	}
	if side != sideBuy && side != sideSell {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSide.Error(), nil)
		return
	}

	state := view.NewHistoryState()
	if err := applySortQuery(r, &state); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	resp := HistoryResponse{
		Side: side,
		Sort: sortState{Field: state.Field, Direction: state.Direction},
	}

	currency := snapshot.ReportingCurrency
	if side == sideBuy {
		sorted := view.SortBuys(snapshot.Buys, state.Field, state.Direction)
		rows := make([]BuyRow, 0, len(sorted))
		for _, b := range sorted {
			rows = append(rows, BuyRow{
				BuyRecord: b,
				Display: TradeDisplay{
					Date:               view.FormatDate(b.Date),
					Quantity:           view.FormatQuantity(b.Quantity, view.SharePrecision),
					Price:              view.FormatCurrency(b.Price, currency),
					Value:              view.FormatCurrency(b.Value, currency),
					CurrentPrice:       view.FormatMetricCurrency(b.CurrentPrice, currency),
					CurrentValue:       view.FormatMetricCurrency(b.CurrentValue, currency),
					PerformancePercent: view.FormatMetricPercent(b.PerformancePercent),
					PerformanceClass:   view.ClassifyMetric(b.PerformancePercent),
				},
			})
		}
		resp.Buys = rows
	} else {
		sorted := view.SortSells(snapshot.Sells, state.Field, state.Direction)
		rows := make([]SellRow, 0, len(sorted))
		for _, sell := range sorted {
			rows = append(rows, SellRow{
				SellRecord: sell,
				Display: TradeDisplay{
					Date:     view.FormatDate(sell.Date),
					Quantity: view.FormatQuantity(sell.Quantity, view.SharePrecision),
					Price:    view.FormatCurrency(sell.Price, currency),
					Value:    view.FormatCurrency(sell.Value, currency),
				},
			})
		}
		resp.Sells = rows
	}

	respondJSON(w, http.StatusOK, resp)
}
