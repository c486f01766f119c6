package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"salesboard/internal/core"
)

func TestParseWellFormed(t *testing.T) {
	in := "Month,Sales,Expenses\nJanuary,4500,3200\nFebruary,5200,3400\n"
	records, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []core.Record{
		{Month: "January", Sales: 4500, Expenses: 3200},
		{Month: "February", Sales: 5200, Expenses: 3400},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestParseTrimsWhitespaceAndSkipsBlankLines(t *testing.T) {
	in := "Month,Sales,Expenses\r\n  January , 4500 , 3200 \r\n\n   \nFebruary,5200,3400"
	records, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0] != (core.Record{Month: "January", Sales: 4500, Expenses: 3200}) {
		t.Fatalf("record 0 = %+v", records[0])
	}
}

func TestParseHeaderOnly(t *testing.T) {
	records, err := Parse(strings.NewReader("Month,Sales,Expenses\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}

func TestParseHeaderNotValidated(t *testing.T) {
	// The first line is discarded even if it looks like data.
	records, err := Parse(strings.NewReader("January,4500,3200\nFebruary,5200,3400\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 1 || records[0].Month != "February" {
		t.Fatalf("records = %+v, want only February", records)
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"non-numeric sales", "Month,Sales,Expenses\nMarch,abc,3100\n"},
		{"non-numeric expenses", "Month,Sales,Expenses\nMarch,3100,abc\n"},
		{"too few fields", "Month,Sales,Expenses\nMarch,3100\n"},
		{"too many fields", "Month,Sales,Expenses\nMarch,1,2,3\n"},
		{"bad line after good ones", "Month,Sales,Expenses\nJanuary,1,2\nFebruary,x,2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := Parse(strings.NewReader(tc.in))
			if err == nil {
				t.Fatalf("expected error")
			}
			if records != nil {
				t.Fatalf("expected no partial results, got %+v", records)
			}
		})
	}
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, "Month,Sales,Expenses\nJanuary,4500,3200\nFebruary,5200,3400\n")
	records := Load(path)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestLoadMissingFile(t *testing.T) {
	records := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if len(records) != 0 {
		t.Fatalf("expected empty sequence for missing file, got %+v", records)
	}
}

func TestLoadMalformedYieldsEmpty(t *testing.T) {
	path := writeTemp(t, "Month,Sales,Expenses\nJanuary,4500,3200\nMarch,abc,3100\n")
	records := Load(path)
	if len(records) != 0 {
		t.Fatalf("expected whole parse to abort, got %+v", records)
	}
}
