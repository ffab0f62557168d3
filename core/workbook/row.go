package workbook

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Row maps each header column of a sheet to its cell value: a string for a
// populated cell, nil for a blank one.
type Row map[string]any

// dateLayouts are the cell formats accepted for date columns, in order of
// preference. Excel serial numbers are handled separately.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006/01/02",
	"01-02-06",
	"1/2/06 15:04",
	"01/02/2006",
	time.RFC3339,
}

// Has reports whether the column holds a non-null value.
func (r Row) Has(col string) bool {
	v, ok := r[col]
	return ok && v != nil
}

// String returns the cell as a trimmed string.
func (r Row) String(col string) (string, bool) {
	v, ok := r[col]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// Int returns the cell as an int64. Cells formatted as floats ("5.0") are
// accepted as long as they are whole numbers.
func (r Row) Int(col string) (int64, bool) {
	s, ok := r.String(col)
	if !ok {
		return 0, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// Decimal returns the cell as an exact decimal value.
func (r Row) Decimal(col string) (decimal.Decimal, bool) {
	s, ok := r.String(col)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Date returns the cell as a time. Both textual dates and Excel serial
// numbers are accepted.
func (r Row) Date(col string) (time.Time, bool) {
	s, ok := r.String(col)
	if !ok {
		return time.Time{}, false
	}
	return ParseDate(s)
}

// ParseDate parses a date cell: any of the accepted textual layouts, or an
// Excel serial number.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Bool returns the cell as a bool ("1"/"true"/"yes" are true).
func (r Row) Bool(col string) (bool, bool) {
	s, ok := r.String(col)
	if !ok {
		return false, false
	}
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true, true
	case "0", "false", "no", "n":
		return false, true
	}
	return false, false
}
