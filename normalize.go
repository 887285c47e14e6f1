package chart2html

import (
	"fmt"
	"reflect"
	"strings"
)

// Record is one row of data as a field name to value mapping.
type Record map[string]any

// Tabular is a table with named columns. Implementations are converted to
// one Record per row.
type Tabular interface {
	ColumnNames() []string
	NumRows() int
	Row(i int) []any
}

// Table is the stock Tabular implementation.
type Table struct {
	Columns []string
	Rows    [][]any
}

// NewTable creates a Table from column names and rows.
func NewTable(columns []string, rows [][]any) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// ColumnNames returns the column names in order.
func (t Table) ColumnNames() []string { return t.Columns }

// NumRows returns the number of data rows.
func (t Table) NumRows() int { return len(t.Rows) }

// Row returns row i.
func (t Table) Row(i int) []any { return t.Rows[i] }

// dataKind tags the shape of caller data.
type dataKind int

const (
	kindUnsupported dataKind = iota
	kindRecords
	kindMapping
	kindTabular
)

func (k dataKind) String() string {
	switch k {
	case kindRecords:
		return "records"
	case kindMapping:
		return "mapping"
	case kindTabular:
		return "tabular"
	default:
		return "unsupported"
	}
}

// classifyData resolves the shape of data by explicit type inspection.
// Any slice or array is a record sequence except text ([]byte); any map
// keyed by strings is a mapping.
func classifyData(data any) dataKind {
	switch data.(type) {
	case Tabular:
		return kindTabular
	case []byte:
		return kindUnsupported
	case []Record, []map[string]any, []any:
		return kindRecords
	case Record, map[string]any:
		return kindMapping
	}

	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return kindRecords
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			return kindMapping
		}
	}
	return kindUnsupported
}

// NormalizeData validates data and converts it to the form embedded as series
// data. Record sequences and mappings are returned unchanged; Tabular data
// becomes a []Record with one field per column, in row order.
//
// Empty data is an error for every shape: nil, an empty sequence or mapping,
// and a table without rows all return ErrEmptyData.
func NormalizeData(data any) (any, error) {
	if data == nil {
		return nil, ErrEmptyData
	}
	if v := reflect.ValueOf(data); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, ErrEmptyData
	}

	kind := classifyData(data)
	switch kind {
	case kindRecords, kindMapping:
		if reflect.ValueOf(data).Len() == 0 {
			return nil, fmt.Errorf("%w: empty %s", ErrEmptyData, kind)
		}
		return data, nil
	case kindTabular:
		return tableRecords(data.(Tabular))
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedDataType, data)
	}
}

// tableRecords converts t to records. Short rows are padded with nil; rows
// wider than the header are rejected.
func tableRecords(t Tabular) ([]Record, error) {
	columns := t.ColumnNames()
	if err := validateColumns(columns); err != nil {
		return nil, err
	}

	n := t.NumRows()
	if n == 0 {
		return nil, fmt.Errorf("%w: table has no rows", ErrEmptyData)
	}

	records := make([]Record, n)
	for i := range n {
		row := t.Row(i)
		if len(row) > len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values for %d columns", ErrInvalidTable, i, len(row), len(columns))
		}
		rec := make(Record, len(columns))
		for j, col := range columns {
			if j < len(row) {
				rec[col] = row[j]
			} else {
				rec[col] = nil
			}
		}
		records[i] = rec
	}
	return records, nil
}

func validateColumns(columns []string) error {
	if len(columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidTable)
	}
	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		if strings.TrimSpace(col) == "" {
			return fmt.Errorf("%w: column %d has no name", ErrInvalidTable, i)
		}
		if seen[col] {
			return fmt.Errorf("%w: duplicate column %q", ErrInvalidTable, col)
		}
		seen[col] = true
	}
	return nil
}
