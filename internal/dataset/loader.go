package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Validation error kinds. Callers match with errors.Is.
var (
	ErrNotFound      = errors.New("input file not found")
	ErrEmptyInput    = errors.New("input file is empty")
	ErrMissingColumn = errors.New("input missing required column")
)

// Table holds a parsed delimited input file. Header order and columns the
// pipeline does not inspect are preserved as-is in Rows.
type Table struct {
	Header []string
	Rows   [][]string
	// Closes is the parsed "close" column, aligned with Rows. Cells that
	// do not parse as numbers become NaN and never trigger a signal.
	Closes []float64
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Load reads a CSV file with a header row and validates that it is
// non-empty and carries a "close" column.
func Load(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: no data rows", ErrEmptyInput)
	}

	header := records[0]
	rows := records[1:]

	closeIdx := -1
	for i, name := range header {
		if name == "close" {
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		return nil, fmt.Errorf("%w: 'close'", ErrMissingColumn)
	}

	closes := make([]float64, len(rows))
	for i, row := range rows {
		closes[i] = math.NaN()
		if closeIdx < len(row) {
			if v, err := strconv.ParseFloat(row[closeIdx], 64); err == nil {
				closes[i] = v
			}
		}
	}

	return &Table{Header: header, Rows: rows, Closes: closes}, nil
}
