// Package metrics holds the derived-field formulas computed once at trade
// entry time. All three are total: invalid or missing inputs yield the
// neutral 0.0 instead of an error, so a partially filled form still saves.
// Callers pass NaN for fields the user left empty.
package metrics

import "math"

// PlannedRR is the planned reward-to-risk ratio from entry, stop and
// target. A stop on the wrong side of the entry (risk <= 0) is treated as
// invalid, not merely unprofitable.
func PlannedRR(side string, entry, stop, target float64) float64 {
	if !(entry > 0) || !(stop > 0) || !(target > 0) {
		return 0
	}
	var risk, reward float64
	if side == SideLong {
		risk = entry - stop
		reward = target - entry
	} else {
		risk = stop - entry
		reward = entry - target
	}
	if risk <= 0 {
		return 0
	}
	return round2(reward / risk)
}

// PnL is the realized profit or loss: signed price move times quantity,
// minus fees. Fees do not scale with quantity.
func PnL(side string, entry, exit, qty, fees float64) float64 {
	if math.IsNaN(qty) || math.IsNaN(entry) || math.IsNaN(exit) {
		return 0
	}
	if math.IsNaN(fees) {
		fees = 0
	}
	direction := 1.0
	if side == SideShort {
		direction = -1.0
	}
	return direction*(exit-entry)*qty - fees
}

// RMultiple expresses pnl as a multiple of the capital risked. Explicit
// risk in currency wins; otherwise per-unit risk is derived from the
// entry/stop distance and quantity.
func RMultiple(pnl, riskCcy, qty, entry, stop float64) float64 {
	denom := riskCcy
	if !(denom > 0) {
		if !(entry > 0) || !(stop > 0) || !(qty > 0) {
			return 0
		}
		denom = math.Abs(entry-stop) * qty
	}
	if !(denom > 0) {
		return 0
	}
	if math.IsNaN(pnl) {
		return 0
	}
	return round2(pnl / denom)
}

const (
	SideLong  = "Long"
	SideShort = "Short"
)

// round2 rounds to 2 decimals, half away from zero. Exact ties such as
// 0.625 therefore round to 0.63, not the banker's 0.62.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
