package service

import (
	"context"

	"tradelog/internal/models"
	"tradelog/internal/repository"
	"tradelog/internal/stats"
)

// ProgressService computes aggregate views over a filtered slice of the
// trade log.
type ProgressService struct {
	Repo repository.Repository
}

func (s *ProgressService) filtered(ctx context.Context, f repository.Filter) ([]models.Trade, error) {
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

func (s *ProgressService) Summary(ctx context.Context, f repository.Filter) (stats.Summary, error) {
	trades, err := s.filtered(ctx, f)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(trades), nil
}

func (s *ProgressService) Equity(ctx context.Context, f repository.Filter) ([]stats.EquityPoint, error) {
	trades, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return stats.EquityCurve(trades), nil
}

func (s *ProgressService) Weekly(ctx context.Context, f repository.Filter) ([]stats.BucketSum, error) {
	trades, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return stats.WeeklyPnL(trades), nil
}

func (s *ProgressService) Monthly(ctx context.Context, f repository.Filter) ([]stats.BucketSum, error) {
	trades, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return stats.MonthlyPnL(trades), nil
}
