package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tradelog/internal/config"
)

func TestBackupRun_CopiesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "trades.csv")
	if err := os.WriteFile(src, []byte("id\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	clock := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := &BackupService{
		Files:  []string{src},
		Config: config.BackupConfig{Dir: filepath.Join(dir, "backups"), Keep: 2},
		Now:    func() time.Time { return clock },
	}

	for i := 0; i < 3; i++ {
		written, err := svc.Run()
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if len(written) != 1 {
			t.Fatalf("written=%d want 1", len(written))
		}
		clock = clock.Add(time.Hour)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "backups", "trades-*.csv"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("kept=%d want 2", len(matches))
	}
	// the oldest copy is the one pruned
	for _, m := range matches {
		if filepath.Base(m) == "trades-20260302T100000.csv" {
			t.Fatalf("oldest backup not pruned: %v", matches)
		}
	}
}

func TestBackupRun_MissingSource(t *testing.T) {
	dir := t.TempDir()
	svc := &BackupService{
		Files:  []string{filepath.Join(dir, "nope.csv")},
		Config: config.BackupConfig{Dir: filepath.Join(dir, "backups"), Keep: 2},
	}
	if _, err := svc.Run(); err == nil {
		t.Fatalf("expected error for missing source")
	}
}
