package service

import (
	"database/sql"
	"strconv"
	"time"
)

// The engine returns scalar cells whose Go type depends on the column type
// and the driver version. These helpers coerce cells into the shapes the
// payloads need, treating NULL as the zero value.

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case int:
		return float64(x)
	case string:
		f, _ := strconv.ParseFloat(x, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(x), 64)
		return f
	case sql.NullFloat64:
		if x.Valid {
			return x.Float64
		}
	}
	return 0
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int32:
		return int64(x)
	case int:
		return int64(x)
	case float64:
		return int64(x)
	case string:
		i, _ := strconv.ParseInt(x, 10, 64)
		return i
	case []byte:
		i, _ := strconv.ParseInt(string(x), 10, 64)
		return i
	case sql.NullInt64:
		if x.Valid {
			return x.Int64
		}
	}
	return 0
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case sql.NullString:
		if x.Valid {
			return x.String
		}
	}
	return ""
}

// monthLabel truncates a month cell to "YYYY-MM". Date columns arrive as
// time.Time; pre-formatted cells arrive as strings.
func monthLabel(v any) string {
	switch x := v.(type) {
	case time.Time:
		return x.Format("2006-01")
	case string:
		if len(x) >= 7 {
			return x[:7]
		}
	case []byte:
		if len(x) >= 7 {
			return string(x[:7])
		}
	}
	return ""
}
