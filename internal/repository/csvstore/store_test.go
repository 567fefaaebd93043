package csvstore

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tradelog/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), "trades.csv", "daily.csv")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func TestOpen_CreatesHeaderOnlyFiles(t *testing.T) {
	s := openTestStore(t)
	trades, err := s.LoadTrades(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(trades) != 0 {
		t.Fatalf("len=%d want 0", len(trades))
	}
	notes, err := s.LoadNotes(context.Background())
	if err != nil {
		t.Fatalf("load notes: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("len=%d want 0", len(notes))
	}
}

func TestTrades_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	in := models.Trade{
		ID:         "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Timestamp:  time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC),
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Time:       "14:30",
		Market:     "FX",
		Ticker:     "eurusd",
		Side:       "Long",
		Quantity:   2,
		Entry:      1.08,
		Stop:       1.075,
		Target:     1.09,
		Exit:       1.085,
		Fees:       0.5,
		RiskCcy:    math.NaN(),
		RiskPct:    1,
		Strategy:   "Breakout",
		Setup:      "London open",
		Tags:       []string{"A+", "news"},
		Mood:       "🙂",
		Confidence: 4,
		Notes:      "clean entry",
		RRPlanned:  2,
		PnL:        9.5,
		RMultiple:  0.95,
	}
	if err := s.SaveTrades(context.Background(), []models.Trade{in}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := s.LoadTrades(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len=%d want 1", len(out))
	}
	got := out[0]
	if got.ID != in.ID {
		t.Fatalf("id=%q want %q", got.ID, in.ID)
	}
	if got.Ticker != "EURUSD" {
		t.Fatalf("ticker=%q want EURUSD", got.Ticker)
	}
	if !got.Date.Equal(in.Date) {
		t.Fatalf("date=%v want %v", got.Date, in.Date)
	}
	if !got.Timestamp.Equal(in.Timestamp) {
		t.Fatalf("timestamp=%v want %v", got.Timestamp, in.Timestamp)
	}
	if got.Entry != in.Entry || got.PnL != in.PnL {
		t.Fatalf("entry=%v pnl=%v", got.Entry, got.PnL)
	}
	if !math.IsNaN(got.RiskCcy) {
		t.Fatalf("riskCcy=%v want NaN", got.RiskCcy)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "A+" || got.Tags[1] != "news" {
		t.Fatalf("tags=%v", got.Tags)
	}
}

func TestNotes_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	in := models.DailyNote{
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Mood:        "😤",
		Confidence:  3,
		DayType:     "Green",
		DayResult:   "Positive (+)",
		DayPL:       120.5,
		Sessions:    []string{"London", "NY"},
		DayNotes:    "followed the plan",
		Lesson:      "wait for the retest",
		ChecklistOK: true,
	}
	if err := s.SaveNotes(context.Background(), []models.DailyNote{in}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := s.LoadNotes(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len=%d want 1", len(out))
	}
	got := out[0]
	if !got.Date.Equal(in.Date) || got.DayPL != in.DayPL || !got.ChecklistOK {
		t.Fatalf("note=%+v", got)
	}
	if len(got.Sessions) != 2 || got.Sessions[1] != "NY" {
		t.Fatalf("sessions=%v", got.Sessions)
	}
}

func TestLoadTrades_ForeignFileCoerced(t *testing.T) {
	dir := t.TempDir()
	// Old export: columns out of order, some missing, one ragged row.
	raw := "ticker,side,pnl,date,quantity\n" +
		"ES,Long,150,2026-03-02,1\n" +
		"NQ,Short,bad-cell,2026-03-03\n"
	if err := os.WriteFile(filepath.Join(dir, "trades.csv"), []byte(raw), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err := Open(dir, "trades.csv", "daily.csv")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	out, err := s.LoadTrades(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len=%d want 2", len(out))
	}
	if out[0].Ticker != "ES" || out[0].PnL != 150 {
		t.Fatalf("row0=%+v", out[0])
	}
	if out[0].ID != "" {
		t.Fatalf("id=%q want empty for synthesized column", out[0].ID)
	}
	if !math.IsNaN(out[1].PnL) {
		t.Fatalf("pnl=%v want NaN for bad cell", out[1].PnL)
	}
	if !math.IsNaN(out[1].Quantity) {
		t.Fatalf("qty=%v want NaN for ragged row", out[1].Quantity)
	}
}

func TestReset_TruncatesBothStores(t *testing.T) {
	s := openTestStore(t)
	seed := models.Trade{ID: "x", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)}
	if err := s.SaveTrades(context.Background(), []models.Trade{seed}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	out, err := s.LoadTrades(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len=%d want 0", len(out))
	}
}

func TestPing(t *testing.T) {
	s := openTestStore(t)
	if err := s.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	for _, p := range s.Files() {
		if err := os.Remove(p); err != nil {
			t.Fatalf("remove: %v", err)
		}
	}
	if err := s.Ping(); err == nil {
		t.Fatalf("expected error after removing files")
	}
}
