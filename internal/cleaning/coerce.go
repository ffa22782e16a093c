package cleaning

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing date cells. Excel exports
// deliver dates in several display formats depending on the cell style.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
	time.RFC3339,
}

// coerceFloat converts a cell value to float64. Numeric text may carry
// thousands separators. Returns ok=false for anything unparseable,
// which callers treat as a null cell.
func coerceFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// coerceDate converts a cell value to a date. Time-of-day components are
// truncated. Returns ok=false for anything unparseable.
func coerceDate(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v.Truncate(24 * time.Hour), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Truncate(24 * time.Hour), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// keyString renders a key cell as a stable string for deduplication.
// Returns ok=false when the cell is null or blank, meaning the row has
// no usable key.
func keyString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}

// isNull reports whether the cell is null or blank text.
func isNull(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
