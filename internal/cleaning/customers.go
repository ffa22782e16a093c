package cleaning

import (
	"ecomclean/pkg/contracts/domain"
)

// CustomerStats reports what the customer cleaner did, for caller-side
// logging. The cleaner itself performs no I/O.
type CustomerStats struct {
	InitialRows int `json:"initial_rows"`
	Duplicates  int `json:"duplicates"`
	Dropped     int `json:"dropped"`
	FinalRows   int `json:"final_rows"`
}

// CustomerCleaner deduplicates and normalizes the customers table.
type CustomerCleaner struct {
	rules *Rules
}

// NewCustomerCleaner creates a customer cleaner with the given rules.
func NewCustomerCleaner(rules *Rules) *CustomerCleaner {
	if rules == nil {
		rules = DefaultRules()
	}
	return &CustomerCleaner{rules: rules}
}

// Clean returns a cleaned copy of the customers table. The input is never
// mutated. Malformed values are coerced to null and filtered, never
// raised as errors.
func (c *CustomerCleaner) Clean(customers *domain.Table) (*domain.Table, CustomerStats) {
	stats := CustomerStats{InitialRows: customers.Len()}
	out := customers.Clone()

	// Stable dedup by customer_id, keep first occurrence.
	out.Rows, stats.Duplicates = dedupRows(out.Rows, "customer_id")

	segmentMissing := !out.HasColumn("customer_segment")
	if segmentMissing {
		out.AddColumn("customer_segment")
	}

	kept := out.Rows[:0]
	for _, row := range out.Rows {
		row["channel"] = Canonicalize(row["channel"], c.rules.CustomerChannels)

		if date, ok := coerceDate(row["registration_date"]); ok {
			row["registration_date"] = date
		} else {
			row["registration_date"] = nil
		}

		if isNull(row["customer_id"]) || row["registration_date"] == nil {
			stats.Dropped++
			continue
		}

		// Default segment only when the input schema lacked the column;
		// existing values are never overwritten.
		if segmentMissing {
			row["customer_segment"] = "Standard"
		}
		kept = append(kept, row)
	}
	out.Rows = kept
	stats.FinalRows = len(kept)

	return out, stats
}

// dedupRows removes rows whose key column repeats an earlier row's key,
// preserving original order. Rows with null or blank keys are kept as-is;
// cleaners that require the key drop them in their non-null filter.
func dedupRows(rows []domain.Row, keyColumn string) ([]domain.Row, int) {
	seen := make(map[string]bool, len(rows))
	kept := rows[:0]
	removed := 0
	for _, row := range rows {
		key, ok := keyString(row[keyColumn])
		if ok {
			if seen[key] {
				removed++
				continue
			}
			seen[key] = true
		}
		kept = append(kept, row)
	}
	return kept, removed
}
