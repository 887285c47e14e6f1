// Package tabular reads spreadsheet-like files into a header plus typed rows.
//
// The first row of a sheet is the header. Cell text is converted with
// ParseValue, so numeric cells come back as int64 or float64 and empty cells
// as nil.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sentinel errors for tabular reading.
var (
	ErrNoHeader      = errors.New("missing header row")
	ErrSheetNotFound = errors.New("sheet not found")
)

// Sheet is a header and its data rows.
type Sheet struct {
	Columns []string
	Rows    [][]any
}

// ReadCSV reads delimited text. comma is the field separator (',' or '\t').
func ReadCSV(r io.Reader, comma rune) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading delimited data: %w", err)
	}
	return fromStrings(records)
}

// ReadXLSX reads one sheet of an Excel workbook. An empty sheet name selects
// the first sheet.
func ReadXLSX(path, sheet string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		sheet = list[0]
	} else if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return fromStrings(rows)
}

// fromStrings splits off the header and converts cells. Fully blank rows are
// skipped; excelize trims trailing empty cells, so rows may be short.
func fromStrings(records [][]string) (*Sheet, error) {
	if len(records) == 0 || isBlank(records[0]) {
		return nil, ErrNoHeader
	}

	columns := make([]string, len(records[0]))
	for i, name := range records[0] {
		columns[i] = strings.TrimSpace(name)
	}

	rows := make([][]any, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make([]any, len(rec))
		for i, cell := range rec {
			row[i] = ParseValue(cell)
		}
		rows = append(rows, row)
	}

	return &Sheet{Columns: columns, Rows: rows}, nil
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ParseValue converts cell text to int64, float64, bool or string.
// Empty text and non-finite numbers ("NaN", "inf") yield nil, which JSON
// carries as null and charts draw as a gap.
func ParseValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
