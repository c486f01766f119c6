// Package worker moves stored records to the spreadsheet export.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"salesboard/internal/amqp"
	"salesboard/internal/storage"
	"salesboard/internal/store"
)

// RecordStore is the storage surface the worker needs: record lookup and
// export bookkeeping.
type RecordStore interface {
	GetRecord(ctx context.Context, id int64) (*storage.RecordRow, error)
	GetPendingExportRecords(ctx context.Context, limit int) ([]storage.PendingExportRecord, error)
	MarkExported(ctx context.Context, id int64) error
	MarkExportError(ctx context.Context, id int64) error
}

// ExportWorker pushes stored records to the configured spreadsheet. It is
// driven by AMQP messages, with a periodic catch-up pass for anything the
// queue missed.
type ExportWorker struct {
	store     RecordStore
	exporter  store.RecordExporter
	batchSize int
}

func NewExportWorker(recordStore RecordStore, exporter store.RecordExporter, batchSize int) *ExportWorker {
	return &ExportWorker{
		store:     recordStore,
		exporter:  exporter,
		batchSize: batchSize,
	}
}

// HandleSyncMessage processes a single record sync message from AMQP.
func (w *ExportWorker) HandleSyncMessage(ctx context.Context, msg *amqp.RecordSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message",
		"record_id", msg.ID,
		"version", msg.Version)
	return w.exportRecord(ctx, msg.ID)
}

// ProcessPendingRecords exports every record still marked pending, one
// batch at a time. Used on startup and by the periodic catch-up ticker.
func (w *ExportWorker) ProcessPendingRecords(ctx context.Context) error {
	pending, err := w.store.GetPendingExportRecords(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending export records: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending export records", "count", len(pending))

	var failed int
	for _, p := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.exportRecord(ctx, p.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to export pending record",
				"record_id", p.ID, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to export %d of %d pending records", failed, len(pending))
	}
	return nil
}

func (w *ExportWorker) exportRecord(ctx context.Context, id int64) error {
	row, err := w.store.GetRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("get record from storage: %w", err)
	}

	// A replaced dataset may leave stale messages behind; an already
	// exported row needs no second push.
	if row.SyncStatus == storage.SyncDone {
		slog.InfoContext(ctx, "Record already exported, skipping", "record_id", id)
		return nil
	}

	ref, err := w.exporter.ExportRecord(ctx, row.Record)
	if err != nil {
		if markErr := w.store.MarkExportError(ctx, id); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark export error",
				"record_id", id, "error", markErr)
		}
		return fmt.Errorf("export record: %w", err)
	}

	if err := w.store.MarkExported(ctx, id); err != nil {
		return fmt.Errorf("mark record exported: %w", err)
	}

	slog.InfoContext(ctx, "Record export complete",
		"record_id", id,
		"month", row.Record.Month,
		"sheets_ref", ref)
	return nil
}
