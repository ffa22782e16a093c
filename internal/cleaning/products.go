package cleaning

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ecomclean/pkg/contracts/domain"
)

// ProductStats reports what the product cleaner did.
type ProductStats struct {
	InitialRows int `json:"initial_rows"`
	Duplicates  int `json:"duplicates"`
	FinalRows   int `json:"final_rows"`
}

// ProductCleaner deduplicates and normalizes the products table.
// Products are never dropped: a product with an unparseable price keeps
// its row with a null price.
type ProductCleaner struct{}

// NewProductCleaner creates a product cleaner.
func NewProductCleaner() *ProductCleaner {
	return &ProductCleaner{}
}

// Clean returns a cleaned copy of the products table. The input is never
// mutated.
func (c *ProductCleaner) Clean(products *domain.Table) (*domain.Table, ProductStats) {
	stats := ProductStats{InitialRows: products.Len()}
	out := products.Clone()

	out.Rows, stats.Duplicates = dedupRows(out.Rows, "product_id")

	// Casers carry transformer state, so build one per call.
	titler := cases.Title(language.English)
	hasPrice := out.HasColumn("price")
	for _, row := range out.Rows {
		if category, ok := row["category"].(string); ok {
			row["category"] = titler.String(strings.TrimSpace(category))
		}
		if hasPrice {
			if f, ok := coerceFloat(row["price"]); ok {
				row["price"] = f
			} else {
				row["price"] = nil
			}
		}
	}
	stats.FinalRows = len(out.Rows)

	return out, stats
}
