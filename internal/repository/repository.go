package repository

import (
	"context"
	"strings"
	"time"

	"tradelog/internal/models"
)

// Filter restricts a trade listing. Zero-valued fields match everything.
type Filter struct {
	Start    time.Time
	End      time.Time
	Tickers  []string
	Side     string
	Strategy string
	Tag      string
}

// Match reports whether a trade passes the filter. Date bounds are
// inclusive; trades with no date are excluded as soon as either bound
// is set. Ticker comparison is case-insensitive, tag matching is a
// case-insensitive substring test against each tag.
func (f Filter) Match(t models.Trade) bool {
	if !f.Start.IsZero() || !f.End.IsZero() {
		if t.Date.IsZero() {
			return false
		}
		if !f.Start.IsZero() && t.Date.Before(f.Start) {
			return false
		}
		if !f.End.IsZero() && t.Date.After(f.End) {
			return false
		}
	}
	if len(f.Tickers) > 0 {
		found := false
		for _, tk := range f.Tickers {
			if strings.EqualFold(tk, t.Ticker) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Side != "" && f.Side != t.Side {
		return false
	}
	if f.Strategy != "" && f.Strategy != t.Strategy {
		return false
	}
	if f.Tag != "" {
		found := false
		for _, tag := range t.Tags {
			if strings.Contains(strings.ToLower(tag), strings.ToLower(f.Tag)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// TradeRepository persists the trade log as a whole. Stores are
// load-all/save-all because the backing files are small flat files
// rewritten atomically on every mutation.
type TradeRepository interface {
	LoadTrades(ctx context.Context) ([]models.Trade, error)
	SaveTrades(ctx context.Context, trades []models.Trade) error
}

// NoteRepository persists daily journal notes.
type NoteRepository interface {
	LoadNotes(ctx context.Context) ([]models.DailyNote, error)
	SaveNotes(ctx context.Context, notes []models.DailyNote) error
}

// Repository is the full persistence surface of the journal.
type Repository interface {
	TradeRepository
	NoteRepository

	// Reset truncates both stores back to header-only files.
	Reset(ctx context.Context) error

	// Ping verifies the backing files are reachable.
	Ping() error
}
