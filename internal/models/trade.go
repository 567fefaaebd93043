package models

import (
	"encoding/json"
	"math"
	"time"

	"tradelog/internal/schema"
)

// Trade is one logged trade. Derived fields (RRPlanned, RRRealized, PnL,
// RMultiple) are computed once when the entry is saved and stored; reads
// never recompute them. RRRealized is written as 0 — the column exists in
// the file format but nothing fills it yet.
type Trade struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Market     string    `json:"market"`
	Ticker     string    `json:"ticker"`
	Side       string    `json:"side"`
	Quantity   float64   `json:"quantity"`
	Entry      float64   `json:"entry"`
	Stop       float64   `json:"stop"`
	Target     float64   `json:"target"`
	Exit       float64   `json:"exit"`
	Fees       float64   `json:"fees"`
	RiskCcy    float64   `json:"risk_ccy"`
	RiskPct    float64   `json:"risk_pct"`
	Strategy   string    `json:"strategy"`
	Setup      string    `json:"setup"`
	Tags       []string  `json:"tags"`
	Mood       string    `json:"mood"`
	Confidence float64   `json:"confidence"`
	Notes      string    `json:"notes"`
	RRPlanned  float64   `json:"rr_planned"`
	RRRealized float64   `json:"rr_realized"`
	PnL        float64   `json:"pnl"`
	RMultiple  float64   `json:"r_multiple"`
}

// MarshalJSON emits NaN numerics (the missing-value marker from coerced
// files) as null; encoding/json would otherwise refuse the whole record.
func (t Trade) MarshalJSON() ([]byte, error) {
	type alias Trade
	return json.Marshal(struct {
		alias
		Quantity   *float64 `json:"quantity"`
		Entry      *float64 `json:"entry"`
		Stop       *float64 `json:"stop"`
		Target     *float64 `json:"target"`
		Exit       *float64 `json:"exit"`
		Fees       *float64 `json:"fees"`
		RiskCcy    *float64 `json:"risk_ccy"`
		RiskPct    *float64 `json:"risk_pct"`
		Confidence *float64 `json:"confidence"`
		RRPlanned  *float64 `json:"rr_planned"`
		RRRealized *float64 `json:"rr_realized"`
		PnL        *float64 `json:"pnl"`
		RMultiple  *float64 `json:"r_multiple"`
	}{
		alias:      alias(t),
		Quantity:   nullable(t.Quantity),
		Entry:      nullable(t.Entry),
		Stop:       nullable(t.Stop),
		Target:     nullable(t.Target),
		Exit:       nullable(t.Exit),
		Fees:       nullable(t.Fees),
		RiskCcy:    nullable(t.RiskCcy),
		RiskPct:    nullable(t.RiskPct),
		Confidence: nullable(t.Confidence),
		RRPlanned:  nullable(t.RRPlanned),
		RRRealized: nullable(t.RRRealized),
		PnL:        nullable(t.PnL),
		RMultiple:  nullable(t.RMultiple),
	})
}

// UnmarshalJSON is the inverse: null or absent numerics decode to the
// missing marker, and dates accept plain YYYY-MM-DD as well as RFC3339.
func (t *Trade) UnmarshalJSON(data []byte) error {
	type alias Trade
	aux := struct {
		*alias
		Timestamp  string   `json:"timestamp"`
		Date       string   `json:"date"`
		Quantity   *float64 `json:"quantity"`
		Entry      *float64 `json:"entry"`
		Stop       *float64 `json:"stop"`
		Target     *float64 `json:"target"`
		Exit       *float64 `json:"exit"`
		Fees       *float64 `json:"fees"`
		RiskCcy    *float64 `json:"risk_ccy"`
		RiskPct    *float64 `json:"risk_pct"`
		Confidence *float64 `json:"confidence"`
		RRPlanned  *float64 `json:"rr_planned"`
		RRRealized *float64 `json:"rr_realized"`
		PnL        *float64 `json:"pnl"`
		RMultiple  *float64 `json:"r_multiple"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.Timestamp = schema.ParseDateTime(aux.Timestamp)
	t.Date = schema.ParseDate(aux.Date)
	t.Quantity = fromNullable(aux.Quantity)
	t.Entry = fromNullable(aux.Entry)
	t.Stop = fromNullable(aux.Stop)
	t.Target = fromNullable(aux.Target)
	t.Exit = fromNullable(aux.Exit)
	t.Fees = fromNullable(aux.Fees)
	t.RiskCcy = fromNullable(aux.RiskCcy)
	t.RiskPct = fromNullable(aux.RiskPct)
	t.Confidence = fromNullable(aux.Confidence)
	t.RRPlanned = fromNullable(aux.RRPlanned)
	t.RRRealized = fromNullable(aux.RRRealized)
	t.PnL = fromNullable(aux.PnL)
	t.RMultiple = fromNullable(aux.RMultiple)
	return nil
}

func nullable(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func fromNullable(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}
