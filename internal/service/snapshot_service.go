package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/apperrors"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/source"
	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/t212"
)

// SnapshotService runs the ingestion pass: it fetches the four exported
// CSV documents as one concurrent group, parses them, and assembles an
// immutable PortfolioSnapshot. The last successful snapshot is held for
// readers; a failed refresh never replaces it.
type SnapshotService struct {
	client source.Client

	mu      sync.RWMutex
	current *t212.PortfolioSnapshot
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(client source.Client) *SnapshotService {
	return &SnapshotService{
		client: client,
	}
}

// Current returns the last successfully ingested snapshot, or
// apperrors.ErrSnapshotNotReady before the first successful pass.
func (s *SnapshotService) Current() (*t212.PortfolioSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, apperrors.ErrSnapshotNotReady
	}
	return s.current, nil
}

// Refresh runs one full ingestion pass. The four documents are fetched
// concurrently and awaited together before any parsing begins. Positions
// and summary are mandatory: either failing aborts the pass with a single
// error and the previous snapshot stays current. The history documents are
// optional: a failed fetch degrades to an empty sequence for that document
// only.
func (s *SnapshotService) Refresh(ctx context.Context) (*t212.PortfolioSnapshot, error) {
	var positionsText, summaryText, buyText, sellText string

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		text, err := s.client.FetchDocument(groupCtx, source.PositionsDocument)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrPositionsUnavailable, err)
		}
		positionsText = text
		return nil
	})

	group.Go(func() error {
		text, err := s.client.FetchDocument(groupCtx, source.SummaryDocument)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrSummaryUnavailable, err)
		}
		summaryText = text
		return nil
	})

	group.Go(func() error {
		text, err := s.client.FetchDocument(groupCtx, source.BuyHistoryDocument)
		if err != nil {
			log.Printf("Buy history unavailable, continuing without it: %v", err)
			return nil
		}
		buyText = text
		return nil
	})

	group.Go(func() error {
		text, err := s.client.FetchDocument(groupCtx, source.SellHistoryDocument)
		if err != nil {
			log.Printf("Sell history unavailable, continuing without it: %v", err)
			return nil
		}
		sellText = text
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	summary := t212.ParseSummary(summaryText)

	reportingCurrency := summary.Totals.Currency
	if reportingCurrency == "" {
		reportingCurrency = "GBP"
	}

	snapshot := &t212.PortfolioSnapshot{
		ID:                uuid.NewString(),
		Positions:         t212.ParsePositions(positionsText),
		Accounts:          summary.Accounts,
		Totals:            summary.Totals,
		Buys:              t212.ParseBuyHistory(buyText),
		Sells:             t212.ParseSellHistory(sellText),
		ReportingCurrency: reportingCurrency,
		GeneratedDate:     summary.GeneratedDate,
		ImportedAt:        time.Now().UTC(),
	}

	s.mu.Lock()
	s.current = snapshot
	s.mu.Unlock()

	log.Printf("Snapshot %s ingested: %d positions, %d accounts, %d buys, %d sells",
		snapshot.ID, len(snapshot.Positions), len(snapshot.Accounts),
		len(snapshot.Buys), len(snapshot.Sells))

	return snapshot, nil
}
