package adapters

import (
	"context"

	"salesboard/internal/core"
	"salesboard/internal/services"
	"salesboard/internal/storage"
)

// SQLiteAdapter composes the repository and the import service into the
// backend.Backend surface so the HTTP handlers stay backend-agnostic.
type SQLiteAdapter struct {
	storage *storage.SQLiteRepository
	service *services.ImportService
}

func NewSQLiteAdapter(storage *storage.SQLiteRepository, service *services.ImportService) *SQLiteAdapter {
	return &SQLiteAdapter{
		storage: storage,
		service: service,
	}
}

// ReplaceDataset implements store.DatasetWriter; imports go through the
// service so export messages get published.
func (a *SQLiteAdapter) ReplaceDataset(ctx context.Context, records []core.Record) (int, error) {
	return a.service.ImportDataset(ctx, records)
}

// ListRecords implements store.RecordLister.
func (a *SQLiteAdapter) ListRecords(ctx context.Context) ([]core.Record, error) {
	return a.storage.ListRecords(ctx)
}

// ReadTotals implements store.TotalsReader.
func (a *SQLiteAdapter) ReadTotals(ctx context.Context) (core.Totals, error) {
	return a.storage.ReadTotals(ctx)
}
