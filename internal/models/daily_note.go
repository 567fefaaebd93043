package models

import (
	"encoding/json"
	"time"

	"tradelog/internal/schema"
)

// DailyNote is one end-of-day reflection. Date is the natural key: the
// store holds at most one live note per calendar date, and saving a note
// for an existing date supersedes the old one.
type DailyNote struct {
	Date           time.Time `json:"date"`
	Mood           string    `json:"mood"`
	Confidence     float64   `json:"confidence"`
	DayType        string    `json:"day_type"`
	DayResult      string    `json:"day_result"`
	DayPL          float64   `json:"day_pl"`
	Sessions       []string  `json:"sessions"`
	DayNotes       string    `json:"day_notes"`
	Lesson         string    `json:"lesson"`
	ChecklistOK    bool      `json:"checklist_ok"`
	ScreenshotPath string    `json:"screenshot_path"`
}

func (n DailyNote) MarshalJSON() ([]byte, error) {
	type alias DailyNote
	return json.Marshal(struct {
		alias
		Confidence *float64 `json:"confidence"`
		DayPL      *float64 `json:"day_pl"`
	}{
		alias:      alias(n),
		Confidence: nullable(n.Confidence),
		DayPL:      nullable(n.DayPL),
	})
}

func (n *DailyNote) UnmarshalJSON(data []byte) error {
	type alias DailyNote
	aux := struct {
		*alias
		Date       string   `json:"date"`
		Confidence *float64 `json:"confidence"`
		DayPL      *float64 `json:"day_pl"`
	}{alias: (*alias)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	n.Date = schema.ParseDate(aux.Date)
	n.Confidence = fromNullable(aux.Confidence)
	n.DayPL = fromNullable(aux.DayPL)
	return nil
}
