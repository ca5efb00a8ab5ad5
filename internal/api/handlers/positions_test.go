package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/api/handlers"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/service"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/testutil"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/view"
)

func TestPositionsHandler(t *testing.T) {
	snapshots := testutil.NewTestSnapshotService(t, nil)
	handler := handlers.NewPositionsHandler(snapshots)

	t.Run("default is all accounts, value descending", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/positions", nil)
		w := httptest.NewRecorder()
		handler.Positions(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		var resp handlers.PositionsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}

		if resp.Account != view.AccountAll {
			t.Errorf("account = %q", resp.Account)
		}
		if resp.Sort.Field != view.FieldValueGBP || resp.Sort.Direction != view.Descending {
			t.Errorf("sort = %+v", resp.Sort)
		}
		if len(resp.Positions) != 3 {
			t.Fatalf("got %d positions, want 3", len(resp.Positions))
		}
		if resp.Positions[0].Ticker != "VUAG_EQ" {
			t.Errorf("first position = %q, want largest value first", resp.Positions[0].Ticker)
		}
		if resp.Positions[0].Display.ValueGBP != "£1,067.50" {
			t.Errorf("display value = %q", resp.Positions[0].Display.ValueGBP)
		}
	})

	t.Run("account filter keeps only matching positions", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/positions",
			map[string]string{"account": "ISA"})
		w := httptest.NewRecorder()
		handler.Positions(w, req)

		var resp handlers.PositionsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Positions) != 2 {
			t.Fatalf("got %d positions, want 2", len(resp.Positions))
		}
		for _, p := range resp.Positions {
			if p.Account != "ISA" {
				t.Errorf("non-ISA position leaked: %q", p.Ticker)
			}
		}
	})

	t.Run("explicit sort and direction are applied and echoed", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/positions",
			map[string]string{"sort": "name", "direction": "asc"})
		w := httptest.NewRecorder()
		handler.Positions(w, req)

		var resp handlers.PositionsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Sort.Field != view.FieldName || resp.Sort.Direction != view.Ascending {
			t.Errorf("sort = %+v", resp.Sort)
		}
		if resp.Positions[0].Name != "Microsoft" {
			t.Errorf("first name = %q", resp.Positions[0].Name)
		}
	})

	t.Run("loss rows are classified from the raw sign", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/positions",
			map[string]string{"sort": "changeGBP", "direction": "asc"})
		w := httptest.NewRecorder()
		handler.Positions(w, req)

		var resp handlers.PositionsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		first := resp.Positions[0]
		if first.ChangeGBP >= 0 || first.Display.ChangeClass != view.ClassLoss {
			t.Errorf("first = change %v class %q", first.ChangeGBP, first.Display.ChangeClass)
		}
	})

	t.Run("invalid account is a 400", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/positions",
			map[string]string{"account": "Margin"})
		w := httptest.NewRecorder()
		handler.Positions(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("invalid direction is a 400", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/positions",
			map[string]string{"direction": "sideways"})
		w := httptest.NewRecorder()
		handler.Positions(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("503 before the first successful ingestion pass", func(t *testing.T) {
		cold := handlers.NewPositionsHandler(service.NewSnapshotService(testutil.NewFakeSourceClient()))
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/positions", nil)
		w := httptest.NewRecorder()
		cold.Positions(w, req)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", w.Code)
		}
	})
}
