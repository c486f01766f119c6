package core

import (
	"errors"
	"strings"
)

type (
	// Record is one parsed data row: a month label and its two amounts.
	// Records are immutable once built and kept in input order; the
	// pipeline never reorders or deduplicates them.
	Record struct {
		Month    string
		Sales    int64
		Expenses int64
	}

	// Totals is the aggregate over a sequence of Records. Profit is
	// always Sales - Expenses and may be negative.
	Totals struct {
		Sales    int64
		Expenses int64
		Profit   int64
	}
)

var (
	ErrEmptyMonth     = errors.New("empty month label")
	ErrMonthTooLong   = errors.New("month label too long (max 50 characters)")
	ErrNegativeAmount = errors.New("negative amount")
)

// CalculateTotals sums sales and expenses across all records and derives
// profit. Pure and deterministic: it never mutates its input, touches no
// external state, and always succeeds (an empty slice yields all zeros).
func CalculateTotals(records []Record) Totals {
	var t Totals
	for _, r := range records {
		t.Sales += r.Sales
		t.Expenses += r.Expenses
	}
	t.Profit = t.Sales - t.Expenses
	return t
}

func (r Record) Validate() error {
	if len(strings.TrimSpace(r.Month)) == 0 {
		return ErrEmptyMonth
	}
	if len(r.Month) > 50 {
		return ErrMonthTooLong
	}
	if r.Sales < 0 || r.Expenses < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Profit returns the per-record margin.
func (r Record) Profit() int64 {
	return r.Sales - r.Expenses
}
