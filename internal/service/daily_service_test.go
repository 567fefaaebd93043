package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tradelog/internal/models"
)

func newDailyService(repo *stubRepo) *DailyService {
	return &DailyService{Repo: repo, Now: fixedNow}
}

func TestDailyUpsert_Insert(t *testing.T) {
	repo := &stubRepo{}
	svc := newDailyService(repo)
	note, err := svc.Upsert(context.Background(), NoteInput{
		Date:    "2026-03-02",
		Mood:    "🙂",
		DayType: "Green",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !note.Date.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date=%v", note.Date)
	}
	if len(repo.notes) != 1 {
		t.Fatalf("stored=%d want 1", len(repo.notes))
	}
}

func TestDailyUpsert_SupersedesSameDate(t *testing.T) {
	repo := &stubRepo{}
	svc := newDailyService(repo)
	if _, err := svc.Upsert(context.Background(), NoteInput{Date: "2026-03-02", Lesson: "first"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := svc.Upsert(context.Background(), NoteInput{Date: "2026-03-02", Lesson: "second"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if len(repo.notes) != 1 {
		t.Fatalf("stored=%d want 1", len(repo.notes))
	}
	if repo.notes[0].Lesson != "second" {
		t.Fatalf("lesson=%q want second", repo.notes[0].Lesson)
	}
}

func TestDailyUpsert_EmptyDateDefaultsToToday(t *testing.T) {
	repo := &stubRepo{}
	svc := newDailyService(repo)
	note, err := svc.Upsert(context.Background(), NoteInput{})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !note.Date.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date=%v", note.Date)
	}
}

func TestDailyList_RangeSorted(t *testing.T) {
	repo := &stubRepo{notes: []models.DailyNote{
		{Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newDailyService(repo)
	out, err := svc.List(context.Background(),
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len=%d want 2", len(out))
	}
	if !out[0].Date.Before(out[1].Date) {
		t.Fatalf("not sorted: %v %v", out[0].Date, out[1].Date)
	}
}

func TestDailyDelete(t *testing.T) {
	repo := &stubRepo{notes: []models.DailyNote{
		{Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newDailyService(repo)
	if err := svc.Delete(context.Background(), "2026-03-02"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.notes) != 0 {
		t.Fatalf("stored=%d want 0", len(repo.notes))
	}
	if err := svc.Delete(context.Background(), "2026-03-02"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), "junk"); err == nil {
		t.Fatalf("expected error for bad date")
	}
}
