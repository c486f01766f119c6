package google

import (
	"context"
	"testing"

	"salesboard/internal/core"
)

func TestRecordRow(t *testing.T) {
	row := recordRow(core.Record{Month: "January", Sales: 4500, Expenses: 3200})
	if len(row) != 4 {
		t.Fatalf("row has %d cells, want 4", len(row))
	}
	if row[0] != "January" || row[1] != int64(4500) || row[2] != int64(3200) || row[3] != int64(1300) {
		t.Fatalf("row = %v", row)
	}
}

func TestNewFromEnvRequiresSpreadsheetID(t *testing.T) {
	t.Setenv("GOOGLE_SPREADSHEET_ID", "")
	if _, err := NewFromEnv(context.Background()); err == nil {
		t.Fatalf("expected error without spreadsheet ID")
	}
}

func TestExportRecordRejectsInvalidRecord(t *testing.T) {
	c := &Client{}
	if _, err := c.ExportRecord(context.Background(), core.Record{Month: ""}); err == nil {
		t.Fatalf("expected validation error")
	}
}
