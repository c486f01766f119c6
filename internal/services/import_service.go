// Package services orchestrates dataset operations across storage and AMQP.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"salesboard/internal/core"
)

// DatasetStore persists whole datasets and reports the new row IDs.
type DatasetStore interface {
	ImportDataset(ctx context.Context, records []core.Record) ([]int64, error)
	Close() error
}

// SyncPublisher queues export requests for stored records.
type SyncPublisher interface {
	PublishRecordSync(ctx context.Context, id, version int64) error
	Close() error
}

// ImportService saves an imported dataset locally and queues each record
// for spreadsheet export. The local write is authoritative; publish
// failures are logged and retried later by the worker's catch-up pass.
type ImportService struct {
	store     DatasetStore
	publisher SyncPublisher
}

func NewImportService(store DatasetStore, publisher SyncPublisher) *ImportService {
	return &ImportService{
		store:     store,
		publisher: publisher,
	}
}

// ImportDataset replaces the stored dataset and publishes one sync message
// per record. Returns the number of imported rows.
func (s *ImportService) ImportDataset(ctx context.Context, records []core.Record) (int, error) {
	ids, err := s.store.ImportDataset(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("save dataset: %w", err)
	}

	if s.publisher == nil {
		slog.WarnContext(ctx, "AMQP publisher not available, skipping sync messages", "rows", len(ids))
		return len(ids), nil
	}

	for _, id := range ids {
		// Version 1 for a fresh import; the whole dataset is new rows.
		if err := s.publisher.PublishRecordSync(ctx, id, 1); err != nil {
			slog.ErrorContext(ctx, "Failed to publish sync message",
				"record_id", id, "error", err)
			// Don't fail the import - the dataset is saved locally and
			// the worker's periodic pass will pick the record up.
		}
	}

	return len(ids), nil
}

// Close closes both storage and AMQP connections.
func (s *ImportService) Close() error {
	var errs []error

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close import service: %v", errs)
	}
	return nil
}
