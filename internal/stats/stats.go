// Package stats computes the dashboard aggregates over an
// already-filtered set of trades. Everything here is pure; the result
// field for all statistics is the stored pnl. A NaN pnl (corrupt cell
// in a hand-edited file) contributes nothing to any sum or average,
// but the row itself still counts toward the trade total.
package stats

import (
	"math"
	"sort"
	"time"

	"tradelog/internal/models"
)

type Summary struct {
	TotalTrades   int      `json:"total_trades"`
	Wins          int      `json:"wins"`
	WinRate       float64  `json:"win_rate"`
	TotalPnL      float64  `json:"total_pnl"`
	AvgR          *float64 `json:"avg_r"`
	AvgConfidence *float64 `json:"avg_confidence"`
	MaxDrawdown   float64  `json:"max_drawdown"`
}

type EquityPoint struct {
	Date   time.Time `json:"date"`
	Equity float64   `json:"equity"`
}

type BucketSum struct {
	Start time.Time `json:"start"`
	PnL   float64   `json:"pnl"`
}

// Summarize computes the KPI block. Every trade counts toward the total
// and the win-rate denominator, even when its pnl is NaN; the NaN only
// drops out of Wins, TotalPnL and the averages. Win rate on an empty set
// is 0, never a division error; the averages are nil when there is
// nothing to average, which the API surfaces as "no data" rather than 0.
func Summarize(trades []models.Trade) Summary {
	s := Summary{}
	var rSum float64
	var rN int
	var confSum float64
	var confN int
	for _, t := range trades {
		s.TotalTrades++
		if !math.IsNaN(t.PnL) {
			if t.PnL > 0 {
				s.Wins++
			}
			s.TotalPnL += t.PnL
		}
		if !math.IsNaN(t.RMultiple) {
			rSum += t.RMultiple
			rN++
		}
		if !math.IsNaN(t.Confidence) {
			confSum += t.Confidence
			confN++
		}
	}
	if s.TotalTrades > 0 {
		s.WinRate = float64(s.Wins) / float64(s.TotalTrades) * 100
	}
	if rN > 0 {
		avg := rSum / float64(rN)
		s.AvgR = &avg
	}
	if confN > 0 {
		avg := confSum / float64(confN)
		s.AvgConfidence = &avg
	}
	s.MaxDrawdown = MaxDrawdown(trades)
	return s
}

// sortedByDate returns the usable trades in date-ascending order. The
// sort is stable so same-day trades keep their insertion order, which
// pins both the equity series and drawdown results.
func sortedByDate(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if math.IsNaN(t.PnL) || t.Date.IsZero() {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// EquityCurve is the running sum of pnl over the date-sorted trades,
// collapsed to one point per date. Cumulation runs across the full
// sequence first; collapsing keeps the last cumulative value of each
// date for plotting.
func EquityCurve(trades []models.Trade) []EquityPoint {
	sorted := sortedByDate(trades)
	points := make([]EquityPoint, 0, len(sorted))
	equity := 0.0
	for _, t := range sorted {
		equity += t.PnL
		if n := len(points); n > 0 && points[n-1].Date.Equal(t.Date) {
			points[n-1].Equity = equity
			continue
		}
		points = append(points, EquityPoint{Date: t.Date, Equity: equity})
	}
	return points
}

// MaxDrawdown is the most negative gap between the running equity and
// its running peak, measured over the full per-trade series (before the
// per-date collapse). It is 0 for an empty or never-declining series.
func MaxDrawdown(trades []models.Trade) float64 {
	sorted := sortedByDate(trades)
	equity := 0.0
	peak := 0.0
	maxDD := 0.0
	for i, t := range sorted {
		equity += t.PnL
		if i == 0 || equity > peak {
			peak = equity
		}
		if dd := equity - peak; dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// WeeklyPnL sums pnl per ISO week, keyed by the Monday that starts the
// week. Weeks with no trades are absent from the result.
func WeeklyPnL(trades []models.Trade) []BucketSum {
	return bucketPnL(trades, weekStart)
}

// MonthlyPnL sums pnl per calendar month, keyed by the first of the
// month.
func MonthlyPnL(trades []models.Trade) []BucketSum {
	return bucketPnL(trades, monthStart)
}

func bucketPnL(trades []models.Trade, key func(time.Time) time.Time) []BucketSum {
	sums := map[time.Time]float64{}
	for _, t := range trades {
		if math.IsNaN(t.PnL) || t.Date.IsZero() {
			continue
		}
		sums[key(t.Date)] += t.PnL
	}
	out := make([]BucketSum, 0, len(sums))
	for start, pnl := range sums {
		out = append(out, BucketSum{Start: start, PnL: pnl})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
