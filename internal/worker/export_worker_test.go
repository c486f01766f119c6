package worker

import (
	"context"
	"errors"
	"testing"

	"salesboard/internal/amqp"
	"salesboard/internal/core"
	"salesboard/internal/storage"
)

type fakeRecordStore struct {
	rows        map[int64]*storage.RecordRow
	pending     []storage.PendingExportRecord
	exported    []int64
	errored     []int64
	pendingErr  error
	getErr      error
	markExpErr  error
}

func (f *fakeRecordStore) GetRecord(_ context.Context, id int64) (*storage.RecordRow, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, errors.New("no such record")
	}
	return row, nil
}

func (f *fakeRecordStore) GetPendingExportRecords(_ context.Context, _ int) ([]storage.PendingExportRecord, error) {
	return f.pending, f.pendingErr
}

func (f *fakeRecordStore) MarkExported(_ context.Context, id int64) error {
	if f.markExpErr != nil {
		return f.markExpErr
	}
	f.exported = append(f.exported, id)
	return nil
}

func (f *fakeRecordStore) MarkExportError(_ context.Context, id int64) error {
	f.errored = append(f.errored, id)
	return nil
}

type fakeExporter struct {
	exported []core.Record
	err      error
}

func (f *fakeExporter) ExportRecord(_ context.Context, r core.Record) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.exported = append(f.exported, r)
	return "Sales!A2:D2", nil
}

func pendingRow(id int64) *storage.RecordRow {
	return &storage.RecordRow{
		ID:         id,
		Record:     core.Record{Month: "January", Sales: 4500, Expenses: 3200},
		SyncStatus: storage.SyncPending,
	}
}

func TestHandleSyncMessage(t *testing.T) {
	st := &fakeRecordStore{rows: map[int64]*storage.RecordRow{7: pendingRow(7)}}
	ex := &fakeExporter{}
	w := NewExportWorker(st, ex, 10)

	if err := w.HandleSyncMessage(context.Background(), amqp.NewRecordSyncMessage(7, 1)); err != nil {
		t.Fatalf("HandleSyncMessage: %v", err)
	}
	if len(ex.exported) != 1 || ex.exported[0].Month != "January" {
		t.Fatalf("exported = %+v", ex.exported)
	}
	if len(st.exported) != 1 || st.exported[0] != 7 {
		t.Fatalf("marked exported = %v", st.exported)
	}
}

func TestHandleSyncMessageAlreadyExported(t *testing.T) {
	row := pendingRow(7)
	row.SyncStatus = storage.SyncDone
	st := &fakeRecordStore{rows: map[int64]*storage.RecordRow{7: row}}
	ex := &fakeExporter{}
	w := NewExportWorker(st, ex, 10)

	if err := w.HandleSyncMessage(context.Background(), amqp.NewRecordSyncMessage(7, 1)); err != nil {
		t.Fatalf("HandleSyncMessage: %v", err)
	}
	if len(ex.exported) != 0 {
		t.Fatalf("already exported record must not be pushed again")
	}
}

func TestHandleSyncMessageExportFailure(t *testing.T) {
	st := &fakeRecordStore{rows: map[int64]*storage.RecordRow{7: pendingRow(7)}}
	ex := &fakeExporter{err: errors.New("quota exceeded")}
	w := NewExportWorker(st, ex, 10)

	if err := w.HandleSyncMessage(context.Background(), amqp.NewRecordSyncMessage(7, 1)); err == nil {
		t.Fatalf("expected error")
	}
	if len(st.errored) != 1 || st.errored[0] != 7 {
		t.Fatalf("expected export error mark, got %v", st.errored)
	}
}

func TestProcessPendingRecords(t *testing.T) {
	st := &fakeRecordStore{
		rows: map[int64]*storage.RecordRow{
			1: pendingRow(1),
			2: pendingRow(2),
		},
		pending: []storage.PendingExportRecord{{ID: 1, Version: 1}, {ID: 2, Version: 1}},
	}
	ex := &fakeExporter{}
	w := NewExportWorker(st, ex, 10)

	if err := w.ProcessPendingRecords(context.Background()); err != nil {
		t.Fatalf("ProcessPendingRecords: %v", err)
	}
	if len(ex.exported) != 2 {
		t.Fatalf("exported %d records, want 2", len(ex.exported))
	}
}

func TestProcessPendingRecordsEmpty(t *testing.T) {
	st := &fakeRecordStore{}
	w := NewExportWorker(st, &fakeExporter{}, 10)
	if err := w.ProcessPendingRecords(context.Background()); err != nil {
		t.Fatalf("ProcessPendingRecords: %v", err)
	}
}

func TestProcessPendingRecordsReportsFailures(t *testing.T) {
	st := &fakeRecordStore{
		rows:    map[int64]*storage.RecordRow{1: pendingRow(1)},
		pending: []storage.PendingExportRecord{{ID: 1, Version: 1}},
	}
	ex := &fakeExporter{err: errors.New("unreachable")}
	w := NewExportWorker(st, ex, 10)

	if err := w.ProcessPendingRecords(context.Background()); err == nil {
		t.Fatalf("expected aggregate failure")
	}
}
