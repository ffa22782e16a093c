// Package validation cross-checks the cleaned tables for referential and
// arithmetic integrity. Checks are independent and non-blocking: every
// check runs, findings accumulate, inputs are never mutated and the
// pipeline is never halted.
package validation

import (
	"fmt"
	"math"

	"ecomclean/internal/cleaning"
	"ecomclean/pkg/contracts/domain"
)

// ConsistencyValidator audits cleaned customers, orders and products.
type ConsistencyValidator struct {
	rules *cleaning.Rules
}

// NewConsistencyValidator creates a validator with the given rules.
func NewConsistencyValidator(rules *cleaning.Rules) *ConsistencyValidator {
	if rules == nil {
		rules = cleaning.DefaultRules()
	}
	return &ConsistencyValidator{rules: rules}
}

// Validate runs all consistency checks. Customers and orders must be the
// cleaned tables; products may be empty when the sheet was absent.
func (v *ConsistencyValidator) Validate(customers, orders, products *domain.Table) *domain.ValidationReport {
	report := &domain.ValidationReport{}

	v.checkCustomerReferences(report, customers, orders)
	v.checkProductReferences(report, orders, products)
	v.checkArithmetic(report, orders)
	v.checkDateRange(report, orders)
	v.summarize(report, customers, orders, products)

	return report
}

// checkCustomerReferences reports order customer_ids absent from the
// customers table. The reference is soft: violations are counted, never
// rejected.
func (v *ConsistencyValidator) checkCustomerReferences(report *domain.ValidationReport, customers, orders *domain.Table) {
	known := keySet(customers, "customer_id")
	missing := map[string]bool{}
	for _, row := range orders.Rows {
		if key, ok := rowKey(row, "customer_id"); ok && !known[key] {
			missing[key] = true
		}
	}
	if len(missing) > 0 {
		report.Findings = append(report.Findings, domain.Finding{
			Check:    domain.CheckCustomerRefs,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("%d customers in orders not found in customers table", len(missing)),
			Count:    len(missing),
		})
		return
	}
	report.Findings = append(report.Findings, domain.Finding{
		Check:    domain.CheckCustomerRefs,
		Severity: domain.SeverityOK,
		Message:  "all order customers exist in customers table",
	})
}

// checkProductReferences runs only when orders carry a product_id column
// and the products table is non-empty.
func (v *ConsistencyValidator) checkProductReferences(report *domain.ValidationReport, orders, products *domain.Table) {
	if !orders.HasColumn("product_id") || products.IsEmpty() {
		return
	}
	known := keySet(products, "product_id")
	missing := map[string]bool{}
	for _, row := range orders.Rows {
		if key, ok := rowKey(row, "product_id"); ok && !known[key] {
			missing[key] = true
		}
	}
	if len(missing) > 0 {
		report.Findings = append(report.Findings, domain.Finding{
			Check:    domain.CheckProductRefs,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("%d products in orders not found in products table", len(missing)),
			Count:    len(missing),
		})
		return
	}
	report.Findings = append(report.Findings, domain.Finding{
		Check:    domain.CheckProductRefs,
		Severity: domain.SeverityOK,
		Message:  "all order products exist in products table",
	})
}

// checkArithmetic re-audits the raw revenue = price * quantity relation
// within tolerance. This is a consistency audit of the cleaned data, not
// a repair; rows with null terms are not comparable and are skipped.
func (v *ConsistencyValidator) checkArithmetic(report *domain.ValidationReport, orders *domain.Table) {
	mismatches := 0
	for _, row := range orders.Rows {
		revenue, rok := row["revenue"].(float64)
		price, pok := row["price"].(float64)
		quantity, qok := row["quantity"].(float64)
		if !rok || !pok || !qok {
			continue
		}
		if math.Abs(revenue-price*quantity) > v.rules.RevenueTolerance {
			mismatches++
		}
	}
	if mismatches > 0 {
		report.Findings = append(report.Findings, domain.Finding{
			Check:    domain.CheckArithmetic,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("%d orders have revenue calculation mismatches", mismatches),
			Count:    mismatches,
		})
		return
	}
	report.Findings = append(report.Findings, domain.Finding{
		Check:    domain.CheckArithmetic,
		Severity: domain.SeverityOK,
		Message:  "revenue calculations validated",
	})
}

// checkDateRange reports the min/max order date for human review.
func (v *ConsistencyValidator) checkDateRange(report *domain.ValidationReport, orders *domain.Table) {
	first, last, found := dateRange(orders, "order_date")
	if !found {
		return
	}
	report.Summary.DateFrom = first
	report.Summary.DateTo = last
	report.Findings = append(report.Findings, domain.Finding{
		Check:    domain.CheckDateRange,
		Severity: domain.SeverityInfo,
		Message:  fmt.Sprintf("date range: %s to %s", first.Format("2006-01-02"), last.Format("2006-01-02")),
	})
}

// summarize records row counts and revenue totals.
func (v *ConsistencyValidator) summarize(report *domain.ValidationReport, customers, orders, products *domain.Table) {
	report.Summary.Customers = customers.Len()
	report.Summary.Orders = orders.Len()
	report.Summary.Products = products.Len()

	total := 0.0
	counted := 0
	for _, row := range orders.Rows {
		if revenue, ok := row["revenue"].(float64); ok {
			total += revenue
			counted++
		}
	}
	report.Summary.TotalRevenue = total
	if counted > 0 {
		report.Summary.AvgOrderValue = total / float64(counted)
	}

	report.Findings = append(report.Findings, domain.Finding{
		Check:    domain.CheckSummary,
		Severity: domain.SeverityInfo,
		Message: fmt.Sprintf("%d customers, %d orders, %d products, total revenue %.2f, average order value %.2f",
			report.Summary.Customers, report.Summary.Orders, report.Summary.Products,
			report.Summary.TotalRevenue, report.Summary.AvgOrderValue),
	})
}
