package repository

import (
	"testing"
	"time"

	"tradelog/internal/models"
)

func sample() models.Trade {
	return models.Trade{
		Date:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Ticker:   "EURUSD",
		Side:     "Long",
		Strategy: "Breakout",
		Tags:     []string{"A+ setup", "news"},
	}
}

func TestFilter_ZeroMatchesEverything(t *testing.T) {
	if !(Filter{}).Match(sample()) {
		t.Fatalf("empty filter should match")
	}
}

func TestFilter_DateBounds(t *testing.T) {
	f := Filter{
		Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	if !f.Match(sample()) {
		t.Fatalf("inclusive end should match")
	}
	f.End = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if f.Match(sample()) {
		t.Fatalf("after end should not match")
	}
	undated := sample()
	undated.Date = time.Time{}
	if (Filter{Start: f.Start}).Match(undated) {
		t.Fatalf("undated trade should fail a bounded filter")
	}
}

func TestFilter_Tickers(t *testing.T) {
	if !(Filter{Tickers: []string{"gbpusd", "eurusd"}}).Match(sample()) {
		t.Fatalf("case-insensitive ticker should match")
	}
	if (Filter{Tickers: []string{"GBPUSD"}}).Match(sample()) {
		t.Fatalf("wrong ticker should not match")
	}
}

func TestFilter_SideAndStrategy(t *testing.T) {
	if (Filter{Side: "Short"}).Match(sample()) {
		t.Fatalf("side mismatch should fail")
	}
	if !(Filter{Side: "Long", Strategy: "Breakout"}).Match(sample()) {
		t.Fatalf("exact side+strategy should match")
	}
}

func TestFilter_TagSubstring(t *testing.T) {
	if !(Filter{Tag: "a+"}).Match(sample()) {
		t.Fatalf("substring tag should match")
	}
	if (Filter{Tag: "fomo"}).Match(sample()) {
		t.Fatalf("absent tag should not match")
	}
}
