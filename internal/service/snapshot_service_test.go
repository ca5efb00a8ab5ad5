package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/apperrors"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/service"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/source"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/testutil"
)

func TestSnapshotServiceRefresh(t *testing.T) {
	t.Run("assembles a complete snapshot from all four documents", func(t *testing.T) {
		snapshots := service.NewSnapshotService(testutil.NewFakeSourceClient())

		snapshot, err := snapshots.Refresh(context.Background())
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}

		if snapshot.ID == "" {
			t.Error("snapshot ID not set")
		}
		if snapshot.ImportedAt.IsZero() {
			t.Error("ImportedAt not set")
		}
		if len(snapshot.Positions) != 3 {
			t.Errorf("got %d positions, want 3", len(snapshot.Positions))
		}
		if len(snapshot.Accounts) != 2 {
			t.Errorf("got %d accounts, want 2", len(snapshot.Accounts))
		}
		if len(snapshot.Buys) != 2 || len(snapshot.Sells) != 1 {
			t.Errorf("history = %d buys, %d sells", len(snapshot.Buys), len(snapshot.Sells))
		}
		if snapshot.GeneratedDate != "2025-11-16 11:02:10" {
			t.Errorf("GeneratedDate = %q", snapshot.GeneratedDate)
		}
		if snapshot.ReportingCurrency != "GBP" {
			t.Errorf("ReportingCurrency = %q", snapshot.ReportingCurrency)
		}
	})

	t.Run("missing positions document is fatal", func(t *testing.T) {
		client := testutil.NewFakeSourceClient()
		client.Errors[source.PositionsDocument] = errors.New("404")
		snapshots := service.NewSnapshotService(client)

		if _, err := snapshots.Refresh(context.Background()); !errors.Is(err, apperrors.ErrPositionsUnavailable) {
			t.Errorf("err = %v, want ErrPositionsUnavailable", err)
		}
		if _, err := snapshots.Current(); !errors.Is(err, apperrors.ErrSnapshotNotReady) {
			t.Errorf("Current after failed refresh = %v, want ErrSnapshotNotReady", err)
		}
	})

	t.Run("missing summary document is fatal", func(t *testing.T) {
		client := testutil.NewFakeSourceClient()
		client.Errors[source.SummaryDocument] = errors.New("404")
		snapshots := service.NewSnapshotService(client)

		if _, err := snapshots.Refresh(context.Background()); !errors.Is(err, apperrors.ErrSummaryUnavailable) {
			t.Errorf("err = %v, want ErrSummaryUnavailable", err)
		}
	})

	t.Run("missing history documents degrade to empty sequences", func(t *testing.T) {
		client := testutil.NewFakeSourceClient()
		client.Errors[source.BuyHistoryDocument] = errors.New("404")
		client.Errors[source.SellHistoryDocument] = errors.New("404")
		snapshots := service.NewSnapshotService(client)

		snapshot, err := snapshots.Refresh(context.Background())
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		if len(snapshot.Buys) != 0 || len(snapshot.Sells) != 0 {
			t.Errorf("history = %d buys, %d sells, want empty", len(snapshot.Buys), len(snapshot.Sells))
		}
		if len(snapshot.Positions) == 0 {
			t.Error("positions lost alongside optional documents")
		}
	})

	t.Run("failed refresh keeps the previous snapshot current", func(t *testing.T) {
		client := testutil.NewFakeSourceClient()
		snapshots := service.NewSnapshotService(client)

		first, err := snapshots.Refresh(context.Background())
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}

		client.Errors[source.SummaryDocument] = errors.New("404")
		if _, err := snapshots.Refresh(context.Background()); err == nil {
			t.Fatal("expected refresh failure")
		}

		current, err := snapshots.Current()
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		if current.ID != first.ID {
			t.Errorf("current snapshot replaced by failed refresh")
		}
	})

	t.Run("empty currency in totals falls back to GBP", func(t *testing.T) {
		client := testutil.NewFakeSourceClient()
		client.Documents[source.SummaryDocument] = "Generated on 2025-11-16 11:02:10\nACCOUNT SUMMARIES\nCOMBINED TOTALS\n"
		snapshots := service.NewSnapshotService(client)

		snapshot, err := snapshots.Refresh(context.Background())
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		if snapshot.ReportingCurrency != "GBP" {
			t.Errorf("ReportingCurrency = %q, want GBP fallback", snapshot.ReportingCurrency)
		}
	})
}

func TestSnapshotServiceCurrent(t *testing.T) {
	snapshots := service.NewSnapshotService(testutil.NewFakeSourceClient())

	if _, err := snapshots.Current(); !errors.Is(err, apperrors.ErrSnapshotNotReady) {
		t.Errorf("Current before refresh = %v, want ErrSnapshotNotReady", err)
	}
}
