package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"salesboard/internal/core"

	_ "modernc.org/sqlite"
)

// Export sync states for a stored record.
const (
	SyncPending = "pending"
	SyncDone    = "synced"
	SyncError   = "error"
)

// RecordRow is a stored record together with its database bookkeeping.
type RecordRow struct {
	ID         int64
	Position   int64
	Record     core.Record
	SyncStatus string
	Version    int64
	CreatedAt  time.Time
}

// PendingExportRecord is the minimal data needed for export queue messages.
type PendingExportRecord struct {
	ID      int64
	Version int64
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ImportDataset replaces the stored dataset in a single transaction and
// returns the new row IDs in input order. A failed import leaves the
// previous dataset in place.
func (r *SQLiteRepository) ImportDataset(ctx context.Context, records []core.Record) ([]int64, error) {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("validate record %q: %w", rec.Month, err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return nil, fmt.Errorf("clear previous dataset: %w", err)
	}

	ids := make([]int64, 0, len(records))
	for i, rec := range records {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO records (position, month, sales, expenses, sync_status, version)
			 VALUES (?, ?, ?, ?, ?, 1)`,
			i, rec.Month, rec.Sales, rec.Expenses, SyncPending)
		if err != nil {
			return nil, fmt.Errorf("insert record %q: %w", rec.Month, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("record %q insert id: %w", rec.Month, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	slog.InfoContext(ctx, "Dataset imported to SQLite", "rows", len(ids))
	return ids, nil
}

// ReplaceDataset implements store.DatasetWriter.
func (r *SQLiteRepository) ReplaceDataset(ctx context.Context, records []core.Record) (int, error) {
	ids, err := r.ImportDataset(ctx, records)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// ListRecords implements store.RecordLister.
func (r *SQLiteRepository) ListRecords(ctx context.Context) ([]core.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT month, sales, expenses FROM records ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		var rec core.Record
		if err := rows.Scan(&rec.Month, &rec.Sales, &rec.Expenses); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// ReadTotals implements store.TotalsReader. Totals are computed fresh on
// every call; an empty table yields all zeros.
func (r *SQLiteRepository) ReadTotals(ctx context.Context) (core.Totals, error) {
	var t core.Totals
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(sales), 0), COALESCE(SUM(expenses), 0) FROM records`,
	).Scan(&t.Sales, &t.Expenses)
	if err != nil {
		return core.Totals{}, fmt.Errorf("read totals: %w", err)
	}
	t.Profit = t.Sales - t.Expenses
	return t, nil
}

// GetRecord retrieves a single stored record by ID.
func (r *SQLiteRepository) GetRecord(ctx context.Context, id int64) (*RecordRow, error) {
	var row RecordRow
	err := r.db.QueryRowContext(ctx,
		`SELECT id, position, month, sales, expenses, sync_status, version, created_at
		 FROM records WHERE id = ?`, id,
	).Scan(&row.ID, &row.Position, &row.Record.Month, &row.Record.Sales,
		&row.Record.Expenses, &row.SyncStatus, &row.Version, &row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get record by id: %w", err)
	}
	return &row, nil
}

// GetPendingExportRecords returns records awaiting export, oldest first.
func (r *SQLiteRepository) GetPendingExportRecords(ctx context.Context, limit int) ([]PendingExportRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, version FROM records WHERE sync_status = ? ORDER BY position LIMIT ?`,
		SyncPending, limit)
	if err != nil {
		return nil, fmt.Errorf("get pending export records: %w", err)
	}
	defer rows.Close()

	var pending []PendingExportRecord
	for rows.Next() {
		var p PendingExportRecord
		if err := rows.Scan(&p.ID, &p.Version); err != nil {
			return nil, fmt.Errorf("scan pending record: %w", err)
		}
		pending = append(pending, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending records: %w", err)
	}
	return pending, nil
}

// MarkExported marks a record as successfully exported.
func (r *SQLiteRepository) MarkExported(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE records SET sync_status = ? WHERE id = ?`, SyncDone, id); err != nil {
		return fmt.Errorf("mark record exported: %w", err)
	}
	slog.InfoContext(ctx, "Record marked as exported", "record_id", id)
	return nil
}

// MarkExportError marks a record as having failed export.
func (r *SQLiteRepository) MarkExportError(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE records SET sync_status = ? WHERE id = ?`, SyncError, id); err != nil {
		return fmt.Errorf("mark record export error: %w", err)
	}
	slog.WarnContext(ctx, "Record marked with export error", "record_id", id)
	return nil
}
