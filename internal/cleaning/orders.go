package cleaning

import (
	"ecomclean/pkg/contracts/domain"
)

// OrderStats reports what the order cleaner did. HighValueOrders is a
// review flag only; flagged rows stay in the output.
type OrderStats struct {
	InitialRows     int `json:"initial_rows"`
	Duplicates      int `json:"duplicates"`
	Dropped         int `json:"dropped"`
	InvalidOrders   int `json:"invalid_orders"`
	HighValueOrders int `json:"high_value_orders"`
	FinalRows       int `json:"final_rows"`
}

// numericColumns are coerced to numbers when present. Only revenue and
// cogs are schema-required; quantity and price may be absent and then
// behave as null-valued.
var numericOrderColumns = []string{"quantity", "price", "revenue", "cogs"}

// OrderCleaner deduplicates, normalizes and recomputes the orders table.
type OrderCleaner struct {
	rules *Rules
}

// NewOrderCleaner creates an order cleaner with the given rules.
func NewOrderCleaner(rules *Rules) *OrderCleaner {
	if rules == nil {
		rules = DefaultRules()
	}
	return &OrderCleaner{rules: rules}
}

// Clean returns a cleaned copy of the orders table. A missing revenue or
// cogs column is a contract violation and fails fast with a SchemaError
// before any row is touched. All other malformed input degrades to null
// cells that the row filters remove and count.
func (c *OrderCleaner) Clean(orders *domain.Table) (*domain.Table, OrderStats, error) {
	for _, required := range []string{"revenue", "cogs"} {
		if !orders.HasColumn(required) {
			return nil, OrderStats{}, &SchemaError{Table: orders.Name, Column: required}
		}
	}

	stats := OrderStats{InitialRows: orders.Len()}
	out := orders.Clone()

	out.Rows, stats.Duplicates = dedupRows(out.Rows, "order_id")

	hasChannel := out.HasColumn("channel")
	var numericCols []string
	for _, col := range numericOrderColumns {
		if out.HasColumn(col) {
			numericCols = append(numericCols, col)
		}
	}
	out.AddColumn("gross_profit")
	out.AddColumn("order_month")

	kept := out.Rows[:0]
	for _, row := range out.Rows {
		date, dateOK := coerceDate(row["order_date"])
		if dateOK {
			row["order_date"] = date
		} else {
			row["order_date"] = nil
		}

		if isNull(row["order_id"]) || isNull(row["customer_id"]) || !dateOK {
			stats.Dropped++
			continue
		}

		for _, col := range numericCols {
			if f, ok := coerceFloat(row[col]); ok {
				row[col] = f
			} else {
				row[col] = nil
			}
		}

		// Positivity filter. Null revenue or quantity fails the test and
		// the row is removed with the invalid orders.
		revenue, revOK := row["revenue"].(float64)
		quantity, qtyOK := row["quantity"].(float64)
		if !revOK || !qtyOK || revenue <= 0 || quantity <= 0 {
			stats.InvalidOrders++
			continue
		}

		// Gross profit is always recomputed; input-supplied figures are
		// never trusted. Null cogs yields null profit.
		if cogs, ok := row["cogs"].(float64); ok {
			row["gross_profit"] = revenue - cogs
		} else {
			row["gross_profit"] = nil
		}

		if hasChannel {
			row["channel"] = Canonicalize(row["channel"], c.rules.OrderChannels)
		}

		if revenue > c.rules.HighValueThreshold {
			stats.HighValueOrders++
		}

		row["order_month"] = date.Format("2006-01")
		kept = append(kept, row)
	}
	out.Rows = kept
	stats.FinalRows = len(kept)

	return out, stats, nil
}
