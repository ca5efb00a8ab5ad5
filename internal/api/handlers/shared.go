package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/apperrors"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/t212"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/view"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// sortState holds the active sort selection echoed back to the frontend
// for column-indicator display.
type sortState struct {
	Field     string         `json:"field"`
	Direction view.Direction `json:"direction"`
}

// applySortQuery overlays sort/direction query parameters on a table's
// default selection. An absent field keeps the default; an absent
// direction resets to descending for the chosen field.
func applySortQuery(r *http.Request, state *view.TableState) error {
	if field := r.URL.Query().Get("sort"); field != "" {
		state.Field = field
		state.Direction = view.Descending
	}

	switch direction := r.URL.Query().Get("direction"); direction {
	case "":
	case string(view.Ascending):
		state.Direction = view.Ascending
	case string(view.Descending):
		state.Direction = view.Descending
	default:
		return apperrors.ErrInvalidDirection
	}

	return nil
}

// parseAccountQuery validates the account selector against the closed set
// {All, Trading, ISA}. An absent parameter selects all accounts.
func parseAccountQuery(r *http.Request) (string, error) {
	account := r.URL.Query().Get("account")
	switch account {
	case "", view.AccountAll:
		return view.AccountAll, nil
	case t212.AccountTrading, t212.AccountISA:
		return account, nil
	}
	return "", apperrors.ErrInvalidAccount
}
