package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"tradelog/internal/config"
)

// BackupService copies the store files into the backup directory with a
// timestamp suffix and prunes old copies down to the configured count.
// It runs on the cron schedule and on demand from the admin endpoint.
type BackupService struct {
	Files  []string
	Config config.BackupConfig
	Logger *zap.Logger
	Now    func() time.Time
}

func (s *BackupService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Run performs one backup pass. It returns the paths written.
func (s *BackupService) Run() ([]string, error) {
	if err := os.MkdirAll(s.Config.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}
	stamp := s.now().UTC().Format("20060102T150405")

	var written []string
	for _, src := range s.Files {
		base := filepath.Base(src)
		ext := filepath.Ext(base)
		dst := filepath.Join(s.Config.Dir, strings.TrimSuffix(base, ext)+"-"+stamp+ext)
		if err := copyFile(src, dst); err != nil {
			return written, err
		}
		written = append(written, dst)
		if err := s.prune(base); err != nil && s.Logger != nil {
			s.Logger.Warn("backup prune failed", zap.String("file", base), zap.Error(err))
		}
	}
	if s.Logger != nil {
		s.Logger.Info("backup complete", zap.Int("files", len(written)))
	}
	return written, nil
}

// prune keeps the newest Keep copies of one source file. Timestamped
// names sort chronologically, so lexical order is age order.
func (s *BackupService) prune(base string) error {
	if s.Config.Keep <= 0 {
		return nil
	}
	ext := filepath.Ext(base)
	pattern := filepath.Join(s.Config.Dir, strings.TrimSuffix(base, ext)+"-*"+ext)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if len(matches) <= s.Config.Keep {
		return nil
	}
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-s.Config.Keep] {
		if err := os.Remove(old); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", dst, err)
	}
	return out.Close()
}
