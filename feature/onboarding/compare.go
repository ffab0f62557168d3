package onboarding

import (
	"strconv"
	"time"

	"school-onboarding/core/utils"
	"school-onboarding/core/workbook"

	"github.com/shopspring/decimal"
)

// valuesEqual compares a supplied field value against the stored one,
// tolerating the type drift between sheet cells, Go values, and what each
// driver hands back (int64 vs []byte vs string vs float64).
//
// Decimal values are compared with exact value equality, no floating
// tolerance. Dates are compared at day precision.
func valuesEqual(supplied, stored any) bool {
	if supplied == nil || stored == nil {
		return supplied == nil && stored == nil
	}

	if isDecimal(supplied) || isDecimal(stored) {
		da, aok := parseDecimal(supplied)
		db, bok := parseDecimal(stored)
		return aok && bok && da.Equal(db)
	}

	if isTime(supplied) || isTime(stored) {
		ta, aok := toDayTime(supplied)
		tb, bok := toDayTime(stored)
		return aok && bok && ta.Equal(tb)
	}

	if isBool(supplied) || isBool(stored) {
		return utils.ToBool(supplied) == utils.ToBool(stored)
	}

	if fa, aok := toFloat(supplied); aok {
		if fb, bok := toFloat(stored); bok {
			return fa == fb
		}
	}

	return utils.ToString(supplied) == utils.ToString(stored)
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isDecimal(v any) bool {
	switch v.(type) {
	case decimal.Decimal, *decimal.Decimal:
		return true
	}
	return false
}

func parseDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case *decimal.Decimal:
		if x == nil {
			return decimal.Decimal{}, false
		}
		return *x, true
	case string:
		d, err := decimal.NewFromString(x)
		return d, err == nil
	case []byte:
		d, err := decimal.NewFromString(string(x))
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(x), true
	case float32:
		return decimal.NewFromFloat32(x), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return decimal.NewFromInt(utils.ToInt64(x)), true
	}
	return decimal.Decimal{}, false
}

func isTime(v any) bool {
	switch v.(type) {
	case time.Time, *time.Time:
		return true
	}
	return false
}

func toDayTime(v any) (time.Time, bool) {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		t = *x
	case string:
		parsed, ok := workbook.ParseDate(x)
		if !ok {
			return time.Time{}, false
		}
		t = parsed
	case []byte:
		parsed, ok := workbook.ParseDate(string(x))
		if !ok {
			return time.Time{}, false
		}
		t = parsed
	default:
		return time.Time{}, false
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return float64(utils.ToInt64(x)), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(string(x), 64)
		return f, err == nil
	}
	return 0, false
}
