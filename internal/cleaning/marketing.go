package cleaning

import (
	"ecomclean/pkg/contracts/domain"
)

// MarketingStats reports what the marketing cleaner did.
type MarketingStats struct {
	InitialRows int `json:"initial_rows"`
	Dropped     int `json:"dropped"`
	FinalRows   int `json:"final_rows"`
}

// MarketingCleaner normalizes marketing-spend rows. Marketing rows carry
// no unique key, so no deduplication is performed.
type MarketingCleaner struct{}

// NewMarketingCleaner creates a marketing cleaner.
func NewMarketingCleaner() *MarketingCleaner {
	return &MarketingCleaner{}
}

// Clean returns a cleaned copy of the marketing table. The input is never
// mutated.
func (c *MarketingCleaner) Clean(marketing *domain.Table) (*domain.Table, MarketingStats) {
	stats := MarketingStats{InitialRows: marketing.Len()}
	out := marketing.Clone()

	hasMonth := out.HasColumn("month")
	var numericCols []string
	for _, col := range []string{"ad_spend", "cac"} {
		if out.HasColumn(col) {
			numericCols = append(numericCols, col)
		}
	}

	kept := out.Rows[:0]
	for _, row := range out.Rows {
		if hasMonth {
			if date, ok := coerceDate(row["month"]); ok {
				row["month"] = date
			} else {
				row["month"] = nil
			}
		}

		for _, col := range numericCols {
			if f, ok := coerceFloat(row[col]); ok {
				row[col] = f
			} else {
				row[col] = nil
			}
		}

		if isNull(row["channel"]) {
			stats.Dropped++
			continue
		}
		kept = append(kept, row)
	}
	out.Rows = kept
	stats.FinalRows = len(kept)

	return out, stats
}
