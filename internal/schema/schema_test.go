package schema

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func testSchema() Schema {
	return New(
		Column{Name: "id", Kind: String},
		Column{Name: "date", Kind: Date},
		Column{Name: "qty", Kind: Numeric},
		Column{Name: "ok", Kind: Bool},
	)
}

func TestCoerce_ReordersAndDropsExtras(t *testing.T) {
	b := Batch{
		Header: []string{"qty", "junk", "id", "date", "ok"},
		Rows: [][]string{
			{"2.5", "x", "a1", "2026-03-02", "yes"},
		},
	}
	got := testSchema().Coerce(b)
	want := [][]string{{"a1", "2026-03-02", "2.5", "true"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Fatalf("rows=%v want=%v", got.Rows, want)
	}
	if !reflect.DeepEqual(got.Header, []string{"id", "date", "qty", "ok"}) {
		t.Fatalf("header=%v", got.Header)
	}
}

func TestCoerce_MissingColumnsGetDefaults(t *testing.T) {
	b := Batch{
		Header: []string{"id"},
		Rows:   [][]string{{"a1"}},
	}
	got := testSchema().Coerce(b)
	want := [][]string{{"a1", "", "0", "false"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Fatalf("rows=%v want=%v", got.Rows, want)
	}
}

func TestCoerce_BadCellsBecomeMissing(t *testing.T) {
	b := Batch{
		Header: []string{"id", "date", "qty", "ok"},
		Rows: [][]string{
			{"a1", "not-a-date", "abc", "maybe"},
		},
	}
	got := testSchema().Coerce(b)
	want := [][]string{{"a1", "", "", "false"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Fatalf("rows=%v want=%v", got.Rows, want)
	}
}

func TestCoerce_RaggedRowPadded(t *testing.T) {
	b := Batch{
		Header: []string{"id", "date", "qty", "ok"},
		Rows: [][]string{
			{"a1", "2026-03-02"},
		},
	}
	got := testSchema().Coerce(b)
	want := [][]string{{"a1", "2026-03-02", "", "false"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Fatalf("rows=%v want=%v", got.Rows, want)
	}
}

func TestCoerce_Idempotent(t *testing.T) {
	s := testSchema()
	b := Batch{
		Header: []string{"qty", "id"},
		Rows:   [][]string{{"1.5", "a1"}, {"oops", "a2"}},
	}
	once := s.Coerce(b)
	twice := s.Coerce(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("coerce not idempotent: %v vs %v", once, twice)
	}
}

func TestParseDate_Layouts(t *testing.T) {
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2026-03-02", "2026/03/02", "02.03.2026", "2026-03-02 14:05:06", "2026-03-02T14:05:06Z"} {
		if got := ParseDate(raw); !got.Equal(want) {
			t.Fatalf("ParseDate(%q)=%v want=%v", raw, got, want)
		}
	}
	if got := ParseDate("garbage"); !got.IsZero() {
		t.Fatalf("ParseDate(garbage)=%v want zero", got)
	}
}

func TestParseNumeric_Missing(t *testing.T) {
	if got := ParseNumeric(""); !math.IsNaN(got) {
		t.Fatalf("empty=%v want NaN", got)
	}
	if got := ParseNumeric("nope"); !math.IsNaN(got) {
		t.Fatalf("nope=%v want NaN", got)
	}
	if got := ParseNumeric("3.25"); got != 3.25 {
		t.Fatalf("got=%v want 3.25", got)
	}
}

func TestFormatNumeric_RoundTrip(t *testing.T) {
	if got := FormatNumeric(math.NaN()); got != "" {
		t.Fatalf("NaN=%q want empty", got)
	}
	if got := FormatNumeric(-12.5); got != "-12.5" {
		t.Fatalf("got=%q", got)
	}
}

func TestParseBool_Lenient(t *testing.T) {
	for _, raw := range []string{"true", "True", "yes", "y", "1"} {
		if !ParseBool(raw) {
			t.Fatalf("ParseBool(%q)=false", raw)
		}
	}
	for _, raw := range []string{"", "no", "n", "false", "whatever"} {
		if ParseBool(raw) {
			t.Fatalf("ParseBool(%q)=true", raw)
		}
	}
}
