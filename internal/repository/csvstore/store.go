// Package csvstore persists the journal as two flat CSV files. Every
// mutation rewrites the whole file through a temp file plus rename, so a
// crash never leaves a half-written store behind.
package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tradelog/internal/models"
	"tradelog/internal/schema"
)

type Store struct {
	mu         sync.Mutex
	tradesPath string
	dailyPath  string
}

// Open prepares a store rooted at dir, creating the directory and
// header-only files on first run.
func Open(dir, tradesFile, dailyFile string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		tradesPath: filepath.Join(dir, tradesFile),
		dailyPath:  filepath.Join(dir, dailyFile),
	}
	if err := ensureFile(s.tradesPath, TradeSchema.Header()); err != nil {
		return nil, err
	}
	if err := ensureFile(s.dailyPath, DailySchema.Header()); err != nil {
		return nil, err
	}
	return s, nil
}

// Files returns the paths of the backing files, for backup copies.
func (s *Store) Files() []string {
	return []string{s.tradesPath, s.dailyPath}
}

func (s *Store) LoadTrades(ctx context.Context) ([]models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := readBatch(s.tradesPath)
	if err != nil {
		return nil, err
	}
	b = TradeSchema.Coerce(b)
	out := make([]models.Trade, 0, len(b.Rows))
	for _, row := range b.Rows {
		out = append(out, tradeFromRow(row))
	}
	return out, nil
}

func (s *Store) SaveTrades(ctx context.Context, trades []models.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, tradeToRow(t))
	}
	return writeBatch(s.tradesPath, schema.Batch{Header: TradeSchema.Header(), Rows: rows})
}

func (s *Store) LoadNotes(ctx context.Context) ([]models.DailyNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := readBatch(s.dailyPath)
	if err != nil {
		return nil, err
	}
	b = DailySchema.Coerce(b)
	out := make([]models.DailyNote, 0, len(b.Rows))
	for _, row := range b.Rows {
		out = append(out, noteFromRow(row))
	}
	return out, nil
}

func (s *Store) SaveNotes(ctx context.Context, notes []models.DailyNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, noteToRow(n))
	}
	return writeBatch(s.dailyPath, schema.Batch{Header: DailySchema.Header(), Rows: rows})
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeBatch(s.tradesPath, schema.Batch{Header: TradeSchema.Header()}); err != nil {
		return err
	}
	return writeBatch(s.dailyPath, schema.Batch{Header: DailySchema.Header()})
}

func (s *Store) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range []string{s.tradesPath, s.dailyPath} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("store file %s: %w", p, err)
		}
	}
	return nil
}

func ensureFile(path string, header []string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return writeBatch(path, schema.Batch{Header: header})
}

func readBatch(path string) (schema.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return schema.Batch{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Hand-edited files are common; ragged rows are repaired by coercion.
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return schema.Batch{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return schema.Batch{}, nil
	}
	return schema.Batch{Header: records[0], Rows: records[1:]}, nil
}

func writeBatch(path string, b schema.Batch) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(b.Header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(b.Rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
