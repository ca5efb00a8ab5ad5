package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/source"
)

func TestExportClientFetchDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/output/" + source.PositionsDocument:
			w.Write([]byte("HEADER\nTrading,row"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := source.NewExportClient(server.URL+"/output/", 5*time.Second)

	t.Run("returns document text on success", func(t *testing.T) {
		text, err := client.FetchDocument(context.Background(), source.PositionsDocument)
		if err != nil {
			t.Fatalf("FetchDocument: %v", err)
		}
		if text != "HEADER\nTrading,row" {
			t.Errorf("text = %q", text)
		}
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		if _, err := client.FetchDocument(context.Background(), source.BuyHistoryDocument); err == nil {
			t.Error("expected error for 404 document")
		}
	})

	t.Run("empty document name is an error", func(t *testing.T) {
		if _, err := client.FetchDocument(context.Background(), ""); err == nil {
			t.Error("expected error for empty name")
		}
	})

	t.Run("cancelled context aborts the fetch", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := client.FetchDocument(ctx, source.PositionsDocument); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}
