// Package service holds the journal's business logic: trade entry with
// derived metrics, daily note upserts, aggregation and scheduled
// backups. Services only talk to the repository interface.
package service

import (
	"errors"
	"time"

	"tradelog/internal/schema"
)

// ErrNotFound marks lookups for ids or dates that are not in the store.
var ErrNotFound = errors.New("not found")

// parseInputDate accepts the form's date string; empty falls back to
// the current date.
func parseInputDate(raw string, now time.Time) time.Time {
	if raw == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return schema.ParseDate(raw)
}
