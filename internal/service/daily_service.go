package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"tradelog/internal/models"
	"tradelog/internal/repository"
	"tradelog/internal/schema"
)

// NoteInput carries the raw fields of the end-of-day form.
type NoteInput struct {
	Date           string   `json:"date"`
	Mood           string   `json:"mood"`
	Confidence     *float64 `json:"confidence"`
	DayType        string   `json:"day_type"`
	DayResult      string   `json:"day_result"`
	DayPL          *float64 `json:"day_pl"`
	Sessions       []string `json:"sessions"`
	DayNotes       string   `json:"day_notes"`
	Lesson         string   `json:"lesson"`
	ChecklistOK    bool     `json:"checklist_ok"`
	ScreenshotPath string   `json:"screenshot_path"`
}

type DailyService struct {
	Repo   repository.Repository
	Logger *zap.Logger
	Now    func() time.Time
}

func (s *DailyService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Upsert saves a note under its date. A note already stored for that
// date is superseded; at most one note per date survives.
func (s *DailyService) Upsert(ctx context.Context, in NoteInput) (models.DailyNote, error) {
	date := parseInputDate(in.Date, s.now())
	if date.IsZero() {
		return models.DailyNote{}, fmt.Errorf("invalid date %q", in.Date)
	}
	note := models.DailyNote{
		Date:           date,
		Mood:           in.Mood,
		Confidence:     numOrNaN(in.Confidence),
		DayType:        in.DayType,
		DayResult:      in.DayResult,
		DayPL:          numOrNaN(in.DayPL),
		Sessions:       in.Sessions,
		DayNotes:       in.DayNotes,
		Lesson:         in.Lesson,
		ChecklistOK:    in.ChecklistOK,
		ScreenshotPath: in.ScreenshotPath,
	}

	notes, err := s.Repo.LoadNotes(ctx)
	if err != nil {
		return models.DailyNote{}, err
	}
	kept := notes[:0]
	for _, n := range notes {
		if !n.Date.Equal(date) {
			kept = append(kept, n)
		}
	}
	kept = append(kept, note)
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Date.Before(kept[j].Date) })
	if err := s.Repo.SaveNotes(ctx, kept); err != nil {
		return models.DailyNote{}, err
	}
	if s.Logger != nil {
		s.Logger.Info("daily note saved", zap.String("date", schema.FormatDate(date)))
	}
	return note, nil
}

// List returns notes inside the inclusive date range, oldest first.
// Zero bounds are open.
func (s *DailyService) List(ctx context.Context, start, end time.Time) ([]models.DailyNote, error) {
	notes, err := s.Repo.LoadNotes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.DailyNote, 0, len(notes))
	for _, n := range notes {
		if n.Date.IsZero() {
			continue
		}
		if !start.IsZero() && n.Date.Before(start) {
			continue
		}
		if !end.IsZero() && n.Date.After(end) {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *DailyService) Delete(ctx context.Context, raw string) error {
	date := schema.ParseDate(strings.TrimSpace(raw))
	if date.IsZero() {
		return fmt.Errorf("invalid date %q", raw)
	}
	notes, err := s.Repo.LoadNotes(ctx)
	if err != nil {
		return err
	}
	kept := notes[:0]
	for _, n := range notes {
		if !n.Date.Equal(date) {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return ErrNotFound
	}
	return s.Repo.SaveNotes(ctx, kept)
}
