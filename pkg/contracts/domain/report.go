package domain

import (
	"time"
)

// Severity tags a validation finding.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is a single result from the consistency validator. Warnings
// carry the number of offending rows or keys.
type Finding struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Count    int      `json:"count,omitempty"`
}

// Check identifiers, in report order.
const (
	CheckCustomerRefs = "customer_references"
	CheckProductRefs  = "product_references"
	CheckArithmetic   = "revenue_arithmetic"
	CheckDateRange    = "date_range"
	CheckSummary      = "summary"
)

// SummaryStats holds the informational totals reported after validation.
type SummaryStats struct {
	Customers     int       `json:"customers"`
	Orders        int       `json:"orders"`
	Products      int       `json:"products"`
	TotalRevenue  float64   `json:"total_revenue"`
	AvgOrderValue float64   `json:"avg_order_value"`
	DateFrom      time.Time `json:"date_from"`
	DateTo        time.Time `json:"date_to"`
}

// ValidationReport is the ordered set of findings from cross-checking the
// cleaned tables, plus summary statistics. An empty report means
// validation was skipped.
type ValidationReport struct {
	Findings []Finding    `json:"findings"`
	Summary  SummaryStats `json:"summary"`
}

// Warnings returns the number of warning findings.
func (r *ValidationReport) Warnings() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the report contains no findings.
func (r *ValidationReport) IsEmpty() bool {
	return r == nil || len(r.Findings) == 0
}
