// Package dataset reads the monthly sales/expenses CSV format.
//
// The format is one header line (ignored, never validated) followed by data
// lines of the form `<month>,<sales>,<expenses>`. Fields may carry
// surrounding whitespace; blank lines are skipped. A single malformed line
// invalidates the whole parse: no partial dataset is ever returned.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"salesboard/internal/core"
	"salesboard/internal/log"
)

const fieldsPerLine = 3

// Parse reads records from r, discarding the first line as a header.
// It fails on the first malformed data line and returns no records in
// that case.
func Parse(r io.Reader) ([]core.Record, error) {
	sc := bufio.NewScanner(r)

	// Header line: discarded unconditionally. A reader with no lines at
	// all is treated the same as one with only a header.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, nil
	}

	var records []core.Record
	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return records, nil
}

func parseLine(line string) (core.Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldsPerLine {
		return core.Record{}, fmt.Errorf("expected %d comma-separated fields, got %d", fieldsPerLine, len(fields))
	}
	month := strings.TrimSpace(fields[0])
	sales, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return core.Record{}, fmt.Errorf("sales field %q: not an integer", strings.TrimSpace(fields[1]))
	}
	expenses, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return core.Record{}, fmt.Errorf("expenses field %q: not an integer", strings.TrimSpace(fields[2]))
	}
	return core.Record{Month: month, Sales: sales, Expenses: expenses}, nil
}

// Load opens and parses the CSV at path. Any failure (missing file,
// malformed line) is reported through the structured logger and yields an
// empty sequence; nothing propagates to the caller. Callers that need to
// distinguish "failed" from "legitimately empty" should use Parse.
func Load(path string) []core.Record {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("Failed to open dataset",
			log.FieldComponent, log.ComponentDataset,
			log.FieldDatasetPath, path,
			log.FieldError, err)
		return nil
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		slog.Error("Failed to parse dataset",
			log.FieldComponent, log.ComponentDataset,
			log.FieldDatasetPath, path,
			log.FieldError, err)
		return nil
	}
	return records
}
