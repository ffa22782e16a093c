package validation

import (
	"strconv"
	"strings"
	"time"

	"ecomclean/pkg/contracts/domain"
)

// rowKey renders a key cell as a comparable string. Null and blank cells
// have no key.
func rowKey(row domain.Row, column string) (string, bool) {
	switch v := row[column].(type) {
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

// keySet collects the distinct non-null keys of a column.
func keySet(t *domain.Table, column string) map[string]bool {
	set := make(map[string]bool, t.Len())
	for _, row := range t.Rows {
		if key, ok := rowKey(row, column); ok {
			set[key] = true
		}
	}
	return set
}

// dateRange returns the earliest and latest date in a column, ignoring
// cells that are not dates.
func dateRange(t *domain.Table, column string) (first, last time.Time, found bool) {
	for _, row := range t.Rows {
		date, ok := row[column].(time.Time)
		if !ok {
			continue
		}
		if !found || date.Before(first) {
			first = date
		}
		if !found || date.After(last) {
			last = date
		}
		found = true
	}
	return first, last, found
}
