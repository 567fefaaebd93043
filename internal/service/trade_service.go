package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"tradelog/internal/metrics"
	"tradelog/internal/models"
	"tradelog/internal/repository"
)

// TradeInput carries the raw fields of a trade entry form. Pointer
// numerics distinguish "absent" from zero; absent becomes the missing
// marker in the stored row.
type TradeInput struct {
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Market     string   `json:"market"`
	Ticker     string   `json:"ticker"`
	Side       string   `json:"side"`
	Quantity   *float64 `json:"quantity"`
	Entry      *float64 `json:"entry"`
	Stop       *float64 `json:"stop"`
	Target     *float64 `json:"target"`
	Exit       *float64 `json:"exit"`
	Fees       *float64 `json:"fees"`
	RiskCcy    *float64 `json:"risk_ccy"`
	RiskPct    *float64 `json:"risk_pct"`
	Strategy   string   `json:"strategy"`
	Setup      string   `json:"setup"`
	Tags       []string `json:"tags"`
	Mood       string   `json:"mood"`
	Confidence *float64 `json:"confidence"`
	Notes      string   `json:"notes"`
}

func (in TradeInput) validate() error {
	if strings.TrimSpace(in.Ticker) == "" {
		return fmt.Errorf("ticker is required")
	}
	if !models.ValidSide(in.Side) {
		return fmt.Errorf("side must be %q or %q", models.SideLong, models.SideShort)
	}
	if in.Quantity == nil || *in.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if in.Entry == nil || *in.Entry <= 0 {
		return fmt.Errorf("entry must be positive")
	}
	return nil
}

func numOrNaN(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

type TradeService struct {
	Repo   repository.Repository
	Logger *zap.Logger
	Now    func() time.Time
}

func (s *TradeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Add validates the input, derives the stored metrics once and appends
// the trade to the log.
func (s *TradeService) Add(ctx context.Context, in TradeInput) (models.Trade, error) {
	if err := in.validate(); err != nil {
		return models.Trade{}, err
	}
	t := s.build(in)
	t.ID = models.NewID()
	t.Timestamp = s.now().UTC()

	trades, err := s.Repo.LoadTrades(ctx)
	if err != nil {
		return models.Trade{}, err
	}
	trades = append(trades, t)
	if err := s.Repo.SaveTrades(ctx, trades); err != nil {
		return models.Trade{}, err
	}
	if s.Logger != nil {
		s.Logger.Info("trade logged",
			zap.String("id", t.ID),
			zap.String("ticker", t.Ticker),
			zap.String("side", t.Side))
	}
	return t, nil
}

func (s *TradeService) build(in TradeInput) models.Trade {
	entry := numOrNaN(in.Entry)
	stop := numOrNaN(in.Stop)
	target := numOrNaN(in.Target)
	exit := numOrNaN(in.Exit)
	qty := numOrNaN(in.Quantity)
	fees := numOrNaN(in.Fees)
	riskCcy := numOrNaN(in.RiskCcy)

	pnl := metrics.PnL(in.Side, entry, exit, qty, fees)
	return models.Trade{
		Date:       parseInputDate(in.Date, s.now()),
		Time:       in.Time,
		Market:     in.Market,
		Ticker:     strings.ToUpper(strings.TrimSpace(in.Ticker)),
		Side:       in.Side,
		Quantity:   qty,
		Entry:      entry,
		Stop:       stop,
		Target:     target,
		Exit:       exit,
		Fees:       fees,
		RiskCcy:    riskCcy,
		RiskPct:    numOrNaN(in.RiskPct),
		Strategy:   in.Strategy,
		Setup:      in.Setup,
		Tags:       in.Tags,
		Mood:       in.Mood,
		Confidence: numOrNaN(in.Confidence),
		Notes:      in.Notes,
		RRPlanned:  metrics.PlannedRR(in.Side, entry, stop, target),
		RRRealized: 0,
		PnL:        pnl,
		RMultiple:  metrics.RMultiple(pnl, riskCcy, qty, entry, stop),
	}
}

func (s *TradeService) List(ctx context.Context, f repository.Filter) ([]models.Trade, error) {
	trades, err := s.Repo.LoadTrades(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *TradeService) Get(ctx context.Context, id string) (models.Trade, error) {
	trades, err := s.Repo.LoadTrades(ctx)
	if err != nil {
		return models.Trade{}, err
	}
	for _, t := range trades {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Trade{}, ErrNotFound
}

// Update rebuilds the trade from the input while keeping its id and
// original timestamp. Derived metrics are recomputed from the new
// fields.
func (s *TradeService) Update(ctx context.Context, id string, in TradeInput) (models.Trade, error) {
	if err := in.validate(); err != nil {
		return models.Trade{}, err
	}
	trades, err := s.Repo.LoadTrades(ctx)
	if err != nil {
		return models.Trade{}, err
	}
	for i, t := range trades {
		if t.ID != id {
			continue
		}
		next := s.build(in)
		next.ID = t.ID
		next.Timestamp = t.Timestamp
		trades[i] = next
		if err := s.Repo.SaveTrades(ctx, trades); err != nil {
			return models.Trade{}, err
		}
		return next, nil
	}
	return models.Trade{}, ErrNotFound
}

func (s *TradeService) Delete(ctx context.Context, id string) error {
	trades, err := s.Repo.LoadTrades(ctx)
	if err != nil {
		return err
	}
	kept := trades[:0]
	for _, t := range trades {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trades) {
		return ErrNotFound
	}
	return s.Repo.SaveTrades(ctx, kept)
}

// ReplaceAll swaps the entire log for the given rows. Rows without an
// id get a fresh one; derived metrics are trusted as supplied since the
// caller edits whole rows.
func (s *TradeService) ReplaceAll(ctx context.Context, trades []models.Trade) error {
	for i := range trades {
		if trades[i].ID == "" {
			trades[i].ID = models.NewID()
		}
		trades[i].Ticker = strings.ToUpper(strings.TrimSpace(trades[i].Ticker))
	}
	return s.Repo.SaveTrades(ctx, trades)
}
