// Package store declares the outbound ports of the report pipeline.
package store

import (
	"context"

	"salesboard/internal/core"
)

type (
	// DatasetWriter replaces the stored dataset with a freshly parsed
	// one. Imports are atomic: either every record lands, in input
	// order, or none do.
	DatasetWriter interface {
		ReplaceDataset(ctx context.Context, records []core.Record) (rows int, err error)
	}

	// RecordLister returns the stored records in import order.
	RecordLister interface {
		ListRecords(ctx context.Context) ([]core.Record, error)
	}

	// TotalsReader computes the aggregate over the stored dataset.
	// Totals are derived fresh per call; they are never persisted.
	TotalsReader interface {
		ReadTotals(ctx context.Context) (core.Totals, error)
	}

	// RecordExporter pushes a single record to an external destination
	// and returns an opaque reference to the created row.
	RecordExporter interface {
		ExportRecord(ctx context.Context, r core.Record) (rowRef string, err error)
	}
)
