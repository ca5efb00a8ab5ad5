package view

import (
	"reflect"
	"testing"

	"github.com/ndewijer/Trading212-Portfolio-Viewer-Backend/internal/t212"
)

func testPositions() []t212.Position {
	return []t212.Position{
		{Account: t212.AccountTrading, Name: "Microsoft", Ticker: "MSFT_US_EQ", ValueGBP: 70.43, ChangeGBP: 13.05},
		{Account: t212.AccountISA, Name: "Vanguard S&P 500", Ticker: "VUAG_EQ", ValueGBP: 1067.50, ChangeGBP: 91.00},
		{Account: t212.AccountISA, Name: "Tesla", Ticker: "TSLA_US_EQ", ValueGBP: 123.22, ChangeGBP: -31.78},
		{Account: t212.AccountTrading, Name: "apple", Ticker: "AAPL_US_EQ", ValueGBP: 200.00, ChangeGBP: 5.00},
	}
}

func tickers(positions []t212.Position) []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = p.Ticker
	}
	return out
}

func TestFilterPositions(t *testing.T) {
	positions := testPositions()

	t.Run("All returns the input content in order", func(t *testing.T) {
		got := FilterPositions(positions, AccountAll)
		if !reflect.DeepEqual(got, positions) {
			t.Errorf("filtered = %v", tickers(got))
		}
	})

	t.Run("ISA keeps only ISA positions in relative order", func(t *testing.T) {
		got := FilterPositions(positions, t212.AccountISA)
		want := []string{"VUAG_EQ", "TSLA_US_EQ"}
		if !reflect.DeepEqual(tickers(got), want) {
			t.Errorf("filtered = %v, want %v", tickers(got), want)
		}
	})

	t.Run("does not mutate the source", func(t *testing.T) {
		before := tickers(positions)
		FilterPositions(positions, t212.AccountTrading)
		if !reflect.DeepEqual(tickers(positions), before) {
			t.Errorf("source mutated: %v", tickers(positions))
		}
	})
}

func TestSortPositions(t *testing.T) {
	positions := testPositions()

	t.Run("descending by value", func(t *testing.T) {
		got := SortPositions(positions, FieldValueGBP, Descending)
		want := []string{"VUAG_EQ", "AAPL_US_EQ", "TSLA_US_EQ", "MSFT_US_EQ"}
		if !reflect.DeepEqual(tickers(got), want) {
			t.Errorf("sorted = %v, want %v", tickers(got), want)
		}
	})

	t.Run("descending is the reverse of ascending", func(t *testing.T) {
		asc := SortPositions(positions, FieldValueGBP, Ascending)
		desc := SortPositions(positions, FieldValueGBP, Descending)
		for i := range asc {
			if asc[i].Ticker != desc[len(desc)-1-i].Ticker {
				t.Fatalf("asc = %v, desc = %v", tickers(asc), tickers(desc))
			}
		}
	})

	t.Run("sorting is idempotent", func(t *testing.T) {
		once := SortPositions(positions, FieldValueGBP, Descending)
		twice := SortPositions(once, FieldValueGBP, Descending)
		if !reflect.DeepEqual(tickers(once), tickers(twice)) {
			t.Errorf("once = %v, twice = %v", tickers(once), tickers(twice))
		}
	})

	t.Run("text fields use case-insensitive locale order", func(t *testing.T) {
		got := SortPositions(positions, FieldName, Ascending)
		want := []string{"AAPL_US_EQ", "MSFT_US_EQ", "TSLA_US_EQ", "VUAG_EQ"}
		if !reflect.DeepEqual(tickers(got), want) {
			t.Errorf("sorted = %v, want %v", tickers(got), want)
		}
	})

	t.Run("unknown field leaves order untouched", func(t *testing.T) {
		got := SortPositions(positions, "bogus", Descending)
		if !reflect.DeepEqual(tickers(got), tickers(positions)) {
			t.Errorf("sorted = %v", tickers(got))
		}
	})

	t.Run("does not mutate the source", func(t *testing.T) {
		before := tickers(positions)
		SortPositions(positions, FieldValueGBP, Ascending)
		if !reflect.DeepEqual(tickers(positions), before) {
			t.Errorf("source mutated: %v", tickers(positions))
		}
	})
}

func TestSortBuysSentinel(t *testing.T) {
	t.Run("known pair orders by value", func(t *testing.T) {
		buys := []t212.BuyRecord{
			{Ticker: "A", PerformancePercent: t212.KnownMetric(5)},
			{Ticker: "C", PerformancePercent: t212.KnownMetric(-3)},
		}
		got := SortBuys(buys, FieldPerformancePercent, Ascending)
		if got[0].Ticker != "C" || got[1].Ticker != "A" {
			t.Errorf("sorted = %v, %v", got[0].Ticker, got[1].Ticker)
		}
	})

	t.Run("sentinel against a number compares equal and keeps order", func(t *testing.T) {
		buys := []t212.BuyRecord{
			{Ticker: "B", PerformancePercent: t212.UnavailableMetric()},
			{Ticker: "A", PerformancePercent: t212.KnownMetric(5)},
		}
		got := SortBuys(buys, FieldPerformancePercent, Ascending)
		if got[0].Ticker != "B" || got[1].Ticker != "A" {
			t.Errorf("mixed pair reordered: %v, %v", got[0].Ticker, got[1].Ticker)
		}
	})

	t.Run("sentinel pair keeps order in both directions", func(t *testing.T) {
		buys := []t212.BuyRecord{
			{Ticker: "B", PerformancePercent: t212.UnavailableMetric()},
			{Ticker: "D", PerformancePercent: t212.UnavailableMetric()},
		}
		for _, direction := range []Direction{Ascending, Descending} {
			got := SortBuys(buys, FieldPerformancePercent, direction)
			if got[0].Ticker != "B" || got[1].Ticker != "D" {
				t.Errorf("%v: sentinel pair reordered: %v, %v", direction, got[0].Ticker, got[1].Ticker)
			}
		}
	})
}

func TestSortSells(t *testing.T) {
	sells := []t212.SellRecord{
		{Ticker: "OLD", Date: "2025-01-05 10:00:00"},
		{Ticker: "NEW", Date: "2025-08-20 10:12:33"},
	}

	got := SortSells(sells, FieldDate, Descending)
	if got[0].Ticker != "NEW" {
		t.Errorf("sorted = %v, want NEW first", got)
	}
}

func TestTableState(t *testing.T) {
	t.Run("positions default is value descending, all accounts", func(t *testing.T) {
		state := NewPositionsState()
		if state.Field != FieldValueGBP || state.Direction != Descending || state.Account != AccountAll {
			t.Errorf("state = %+v", state)
		}
	})

	t.Run("history default is date descending", func(t *testing.T) {
		state := NewHistoryState()
		if state.Field != FieldDate || state.Direction != Descending {
			t.Errorf("state = %+v", state)
		}
	})

	t.Run("re-selecting the active field toggles direction", func(t *testing.T) {
		state := NewPositionsState()
		state.Select(FieldValueGBP)
		if state.Direction != Ascending {
			t.Errorf("direction = %v, want asc", state.Direction)
		}
		state.Select(FieldValueGBP)
		if state.Direction != Descending {
			t.Errorf("direction = %v, want desc", state.Direction)
		}
	})

	t.Run("selecting a new field resets to descending", func(t *testing.T) {
		state := NewPositionsState()
		state.Select(FieldValueGBP) // now ascending
		state.Select(FieldName)
		if state.Field != FieldName || state.Direction != Descending {
			t.Errorf("state = %+v", state)
		}
	})
}
