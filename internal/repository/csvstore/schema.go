package csvstore

import (
	"strings"

	"tradelog/internal/models"
	"tradelog/internal/schema"
)

// TradeSchema is the on-disk column layout of the trade log. Order is the
// file order; foreign files are coerced onto it on load.
var TradeSchema = schema.New(
	schema.Column{Name: "id", Kind: schema.String},
	schema.Column{Name: "timestamp", Kind: schema.DateTime},
	schema.Column{Name: "date", Kind: schema.Date},
	schema.Column{Name: "time", Kind: schema.String},
	schema.Column{Name: "market", Kind: schema.String},
	schema.Column{Name: "ticker", Kind: schema.String},
	schema.Column{Name: "side", Kind: schema.String},
	schema.Column{Name: "quantity", Kind: schema.Numeric},
	schema.Column{Name: "entry", Kind: schema.Numeric},
	schema.Column{Name: "stop", Kind: schema.Numeric},
	schema.Column{Name: "target", Kind: schema.Numeric},
	schema.Column{Name: "exit", Kind: schema.Numeric},
	schema.Column{Name: "fees", Kind: schema.Numeric},
	schema.Column{Name: "risk_ccy", Kind: schema.Numeric},
	schema.Column{Name: "risk_pct", Kind: schema.Numeric},
	schema.Column{Name: "strategy", Kind: schema.String},
	schema.Column{Name: "setup", Kind: schema.String},
	schema.Column{Name: "tags", Kind: schema.String},
	schema.Column{Name: "mood", Kind: schema.String},
	schema.Column{Name: "confidence", Kind: schema.Numeric},
	schema.Column{Name: "notes", Kind: schema.String},
	schema.Column{Name: "rr_planned", Kind: schema.Numeric},
	schema.Column{Name: "rr_realized", Kind: schema.Numeric},
	schema.Column{Name: "pnl", Kind: schema.Numeric},
	schema.Column{Name: "r_multiple", Kind: schema.Numeric},
)

// DailySchema is the on-disk column layout of the daily notes file.
var DailySchema = schema.New(
	schema.Column{Name: "date", Kind: schema.Date},
	schema.Column{Name: "mood", Kind: schema.String},
	schema.Column{Name: "confidence", Kind: schema.Numeric},
	schema.Column{Name: "day_type", Kind: schema.String},
	schema.Column{Name: "day_result", Kind: schema.String},
	schema.Column{Name: "day_pl", Kind: schema.Numeric},
	schema.Column{Name: "sessions", Kind: schema.String},
	schema.Column{Name: "day_notes", Kind: schema.String},
	schema.Column{Name: "lesson", Kind: schema.String},
	schema.Column{Name: "checklist_ok", Kind: schema.Bool},
	schema.Column{Name: "screenshot_path", Kind: schema.String},
)

// List-valued cells (tags, sessions) are stored comma joined.
func joinList(vals []string) string {
	return strings.Join(vals, ",")
}

func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func tradeToRow(t models.Trade) []string {
	return []string{
		t.ID,
		schema.FormatDateTime(t.Timestamp),
		schema.FormatDate(t.Date),
		t.Time,
		t.Market,
		strings.ToUpper(t.Ticker),
		t.Side,
		schema.FormatNumeric(t.Quantity),
		schema.FormatNumeric(t.Entry),
		schema.FormatNumeric(t.Stop),
		schema.FormatNumeric(t.Target),
		schema.FormatNumeric(t.Exit),
		schema.FormatNumeric(t.Fees),
		schema.FormatNumeric(t.RiskCcy),
		schema.FormatNumeric(t.RiskPct),
		t.Strategy,
		t.Setup,
		joinList(t.Tags),
		t.Mood,
		schema.FormatNumeric(t.Confidence),
		t.Notes,
		schema.FormatNumeric(t.RRPlanned),
		schema.FormatNumeric(t.RRRealized),
		schema.FormatNumeric(t.PnL),
		schema.FormatNumeric(t.RMultiple),
	}
}

// tradeFromRow decodes a coerced row; the coercion step guarantees the
// row has exactly the schema's cells in schema order.
func tradeFromRow(row []string) models.Trade {
	return models.Trade{
		ID:         row[0],
		Timestamp:  schema.ParseDateTime(row[1]),
		Date:       schema.ParseDate(row[2]),
		Time:       row[3],
		Market:     row[4],
		Ticker:     row[5],
		Side:       row[6],
		Quantity:   schema.ParseNumeric(row[7]),
		Entry:      schema.ParseNumeric(row[8]),
		Stop:       schema.ParseNumeric(row[9]),
		Target:     schema.ParseNumeric(row[10]),
		Exit:       schema.ParseNumeric(row[11]),
		Fees:       schema.ParseNumeric(row[12]),
		RiskCcy:    schema.ParseNumeric(row[13]),
		RiskPct:    schema.ParseNumeric(row[14]),
		Strategy:   row[15],
		Setup:      row[16],
		Tags:       splitList(row[17]),
		Mood:       row[18],
		Confidence: schema.ParseNumeric(row[19]),
		Notes:      row[20],
		RRPlanned:  schema.ParseNumeric(row[21]),
		RRRealized: schema.ParseNumeric(row[22]),
		PnL:        schema.ParseNumeric(row[23]),
		RMultiple:  schema.ParseNumeric(row[24]),
	}
}

func noteToRow(n models.DailyNote) []string {
	return []string{
		schema.FormatDate(n.Date),
		n.Mood,
		schema.FormatNumeric(n.Confidence),
		n.DayType,
		n.DayResult,
		schema.FormatNumeric(n.DayPL),
		joinList(n.Sessions),
		n.DayNotes,
		n.Lesson,
		schema.FormatBool(n.ChecklistOK),
		n.ScreenshotPath,
	}
}

func noteFromRow(row []string) models.DailyNote {
	return models.DailyNote{
		Date:           schema.ParseDate(row[0]),
		Mood:           row[1],
		Confidence:     schema.ParseNumeric(row[2]),
		DayType:        row[3],
		DayResult:      row[4],
		DayPL:          schema.ParseNumeric(row[5]),
		Sessions:       splitList(row[6]),
		DayNotes:       row[7],
		Lesson:         row[8],
		ChecklistOK:    schema.ParseBool(row[9]),
		ScreenshotPath: row[10],
	}
}
