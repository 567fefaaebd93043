// Package schema normalizes loosely typed tabular batches onto a fixed
// column layout. A malformed cell never fails a batch: it degrades to the
// kind's missing marker (empty cell), and a missing column is synthesized
// with the kind's default. Coercion is idempotent.
package schema

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type Kind int

const (
	String Kind = iota
	Numeric
	Date
	DateTime
	Bool
)

type Column struct {
	Name string
	Kind Kind
}

type Schema struct {
	cols []Column
}

func New(cols ...Column) Schema {
	return Schema{cols: cols}
}

func (s Schema) Columns() []Column {
	return s.cols
}

func (s Schema) Header() []string {
	out := make([]string, len(s.cols))
	for i, c := range s.cols {
		out[i] = c.Name
	}
	return out
}

// Batch is a raw tabular record set: a header row plus data rows, as read
// from a CSV file. Rows may be ragged and columns may appear in any order.
type Batch struct {
	Header []string
	Rows   [][]string
}

// Coerce maps b onto the schema: exactly the schema's columns, in schema
// order, every cell in canonical form. Extra input columns are dropped,
// absent ones synthesized with defaults.
func (s Schema) Coerce(b Batch) Batch {
	src := make([]int, len(s.cols))
	for i, col := range s.cols {
		src[i] = -1
		for j, name := range b.Header {
			if name == col.Name {
				src[i] = j
				break
			}
		}
	}

	out := Batch{Header: s.Header(), Rows: make([][]string, len(b.Rows))}
	for r, row := range b.Rows {
		cells := make([]string, len(s.cols))
		for i, col := range s.cols {
			if src[i] < 0 {
				cells[i] = defaultCell(col.Kind)
				continue
			}
			raw := ""
			if src[i] < len(row) {
				raw = row[src[i]]
			}
			cells[i] = canonical(col.Kind, raw)
		}
		out.Rows[r] = cells
	}
	return out
}

func defaultCell(k Kind) string {
	switch k {
	case Numeric:
		return "0"
	case Bool:
		return "false"
	default:
		return ""
	}
}

func canonical(k Kind, raw string) string {
	switch k {
	case Numeric:
		return FormatNumeric(ParseNumeric(raw))
	case Date:
		return FormatDate(ParseDate(raw))
	case DateTime:
		return FormatDateTime(ParseDateTime(raw))
	case Bool:
		return FormatBool(ParseBool(raw))
	default:
		return raw
	}
}

const dateLayout = "2006-01-02"

var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02.01.2006",
}

// ParseDate returns the zero time for anything it cannot read; the zero
// time is the null-date marker throughout the store.
func ParseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func ParseDateTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", dateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseNumeric returns NaN as the missing marker for empty or
// unparseable cells.
func ParseNumeric(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

func FormatNumeric(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func ParseBool(raw string) bool {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "yes", "y":
		return true
	case "no", "n", "":
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return b
}

func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
