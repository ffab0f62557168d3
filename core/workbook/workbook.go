package workbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when a requested sheet is absent from the
// workbook. The orchestrator treats this as fatal for required sheets.
var ErrSheetNotFound = errors.New("sheet not found")

// Source is an open spreadsheet workbook exposing named sheets.
type Source struct {
	path string
	file *excelize.File
}

// Open opens the workbook at path.
func Open(path string) (*Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Source{path: path, file: f}, nil
}

// Close releases the underlying workbook file.
func (s *Source) Close() error {
	return s.file.Close()
}

// Path returns the workbook file path.
func (s *Source) Path() string {
	return s.path
}

// SheetNames lists the sheets present in the workbook.
func (s *Source) SheetNames() []string {
	return s.file.GetSheetList()
}

// Sheet reads the named sheet in full. The first row is the header; every
// following row becomes a Row keyed by header name. Returns ErrSheetNotFound
// when the sheet is absent.
func (s *Source) Sheet(name string) (*Sheet, error) {
	if idx, err := s.file.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}

	raw, err := s.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}
	if len(raw) == 0 {
		return &Sheet{Name: name}, nil
	}

	columns := make([]string, 0, len(raw[0]))
	for _, h := range raw[0] {
		columns = append(columns, strings.TrimSpace(h))
	}

	rows := make([][]string, 0, len(raw)-1)
	for _, r := range raw[1:] {
		if isEmptyRow(r) {
			continue
		}
		rows = append(rows, r)
	}

	return &Sheet{Name: name, Columns: columns, rows: rows}, nil
}

// Sheet is one fully-read sheet: an ordered, finite, restartable sequence of
// rows.
type Sheet struct {
	// Name is the sheet name inside the workbook.
	Name string
	// Columns is the ordered header row.
	Columns []string
	rows    [][]string
}

// Len returns the number of data rows.
func (s *Sheet) Len() int {
	return len(s.rows)
}

// Rows materializes the data rows. Every header column is present in each
// Row; blank and missing cells are normalized to nil so consumers only need
// null checks, never existence checks. Each call yields fresh copies, so the
// sequence is restartable.
func (s *Sheet) Rows() []Row {
	out := make([]Row, 0, len(s.rows))
	for _, cells := range s.rows {
		row := make(Row, len(s.Columns))
		for i, col := range s.Columns {
			if col == "" {
				continue
			}
			var val any
			if i < len(cells) {
				if v := strings.TrimSpace(cells[i]); v != "" {
					val = v
				}
			}
			row[col] = val
		}
		out = append(out, row)
	}
	return out
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
