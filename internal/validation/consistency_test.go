package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomclean/internal/cleaning"
	"ecomclean/pkg/contracts/domain"
)

func findingByCheck(report *domain.ValidationReport, check string) (domain.Finding, bool) {
	for _, f := range report.Findings {
		if f.Check == check {
			return f, true
		}
	}
	return domain.Finding{}, false
}

func testCustomers(ids ...string) *domain.Table {
	t := domain.NewTable(domain.TableCustomers, "customer_id")
	for _, id := range ids {
		t.AppendRow(domain.Row{"customer_id": id})
	}
	return t
}

func testOrders(rows ...domain.Row) *domain.Table {
	t := domain.NewTable(domain.TableOrders,
		"order_id", "customer_id", "product_id", "order_date", "quantity", "price", "revenue")
	t.Rows = rows
	return t
}

func TestConsistencyValidator_CustomerReferences(t *testing.T) {
	validator := NewConsistencyValidator(cleaning.DefaultRules())

	t.Run("missing customer reported with count", func(t *testing.T) {
		customers := testCustomers("C1")
		orders := testOrders(
			domain.Row{"order_id": "O1", "customer_id": "C1"},
			domain.Row{"order_id": "O2", "customer_id": "C2"},
		)
		report := validator.Validate(customers, orders, domain.NewTable(domain.TableProducts))

		finding, ok := findingByCheck(report, domain.CheckCustomerRefs)
		require.True(t, ok)
		assert.Equal(t, domain.SeverityWarning, finding.Severity)
		assert.Equal(t, 1, finding.Count)
	})

	t.Run("all references resolve", func(t *testing.T) {
		customers := testCustomers("C1", "C2")
		orders := testOrders(
			domain.Row{"order_id": "O1", "customer_id": "C1"},
			domain.Row{"order_id": "O2", "customer_id": "C2"},
		)
		report := validator.Validate(customers, orders, domain.NewTable(domain.TableProducts))

		finding, ok := findingByCheck(report, domain.CheckCustomerRefs)
		require.True(t, ok)
		assert.Equal(t, domain.SeverityOK, finding.Severity)
	})
}

func TestConsistencyValidator_ProductReferences(t *testing.T) {
	validator := NewConsistencyValidator(cleaning.DefaultRules())

	t.Run("skipped when products table empty", func(t *testing.T) {
		report := validator.Validate(
			testCustomers("C1"),
			testOrders(domain.Row{"order_id": "O1", "customer_id": "C1", "product_id": "P9"}),
			domain.NewTable(domain.TableProducts))

		_, ok := findingByCheck(report, domain.CheckProductRefs)
		assert.False(t, ok)
	})

	t.Run("skipped when orders lack product_id column", func(t *testing.T) {
		orders := domain.NewTable(domain.TableOrders, "order_id", "customer_id")
		orders.AppendRow(domain.Row{"order_id": "O1", "customer_id": "C1"})
		products := domain.NewTable(domain.TableProducts, "product_id")
		products.AppendRow(domain.Row{"product_id": "P1"})

		report := validator.Validate(testCustomers("C1"), orders, products)

		_, ok := findingByCheck(report, domain.CheckProductRefs)
		assert.False(t, ok)
	})

	t.Run("missing products counted, null product ids ignored", func(t *testing.T) {
		orders := testOrders(
			domain.Row{"order_id": "O1", "customer_id": "C1", "product_id": "P1"},
			domain.Row{"order_id": "O2", "customer_id": "C1", "product_id": "P9"},
			domain.Row{"order_id": "O3", "customer_id": "C1", "product_id": nil},
		)
		products := domain.NewTable(domain.TableProducts, "product_id")
		products.AppendRow(domain.Row{"product_id": "P1"})

		report := validator.Validate(testCustomers("C1"), orders, products)

		finding, ok := findingByCheck(report, domain.CheckProductRefs)
		require.True(t, ok)
		assert.Equal(t, domain.SeverityWarning, finding.Severity)
		assert.Equal(t, 1, finding.Count)
	})
}

func TestConsistencyValidator_Arithmetic(t *testing.T) {
	validator := NewConsistencyValidator(cleaning.DefaultRules())

	t.Run("mismatch beyond tolerance counted", func(t *testing.T) {
		orders := testOrders(
			// |30.02 - 30| = 0.02 > 0.01, counted
			domain.Row{"order_id": "O1", "customer_id": "C1", "price": 10.0, "quantity": 3.0, "revenue": 30.02},
			// |30.004 - 30| = 0.004 <= 0.01, within tolerance
			domain.Row{"order_id": "O2", "customer_id": "C1", "price": 10.0, "quantity": 3.0, "revenue": 30.004},
			// null price is not comparable, skipped
			domain.Row{"order_id": "O3", "customer_id": "C1", "price": nil, "quantity": 3.0, "revenue": 30.0},
		)
		report := validator.Validate(testCustomers("C1"), orders, domain.NewTable(domain.TableProducts))

		finding, ok := findingByCheck(report, domain.CheckArithmetic)
		require.True(t, ok)
		assert.Equal(t, domain.SeverityWarning, finding.Severity)
		assert.Equal(t, 1, finding.Count)
	})

	t.Run("clean data passes", func(t *testing.T) {
		orders := testOrders(
			domain.Row{"order_id": "O1", "customer_id": "C1", "price": 10.0, "quantity": 3.0, "revenue": 30.0},
		)
		report := validator.Validate(testCustomers("C1"), orders, domain.NewTable(domain.TableProducts))

		finding, ok := findingByCheck(report, domain.CheckArithmetic)
		require.True(t, ok)
		assert.Equal(t, domain.SeverityOK, finding.Severity)
	})
}

func TestConsistencyValidator_DateRangeAndSummary(t *testing.T) {
	validator := NewConsistencyValidator(cleaning.DefaultRules())

	customers := testCustomers("C1", "C2")
	orders := testOrders(
		domain.Row{"order_id": "O1", "customer_id": "C1", "price": 10.0, "quantity": 1.0, "revenue": 10.0,
			"order_date": time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)},
		domain.Row{"order_id": "O2", "customer_id": "C2", "price": 20.0, "quantity": 1.0, "revenue": 20.0,
			"order_date": time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC)},
	)
	products := domain.NewTable(domain.TableProducts, "product_id")
	products.AppendRow(domain.Row{"product_id": "P1"})

	report := validator.Validate(customers, orders, products)

	dateFinding, ok := findingByCheck(report, domain.CheckDateRange)
	require.True(t, ok)
	assert.Equal(t, domain.SeverityInfo, dateFinding.Severity)
	assert.Contains(t, dateFinding.Message, "2025-05-03")
	assert.Contains(t, dateFinding.Message, "2025-10-30")

	assert.Equal(t, 2, report.Summary.Customers)
	assert.Equal(t, 2, report.Summary.Orders)
	assert.Equal(t, 1, report.Summary.Products)
	assert.Equal(t, 30.0, report.Summary.TotalRevenue)
	assert.Equal(t, 15.0, report.Summary.AvgOrderValue)
	assert.Equal(t, time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC), report.Summary.DateFrom)
	assert.Equal(t, time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC), report.Summary.DateTo)

	_, ok = findingByCheck(report, domain.CheckSummary)
	assert.True(t, ok)
}

func TestConsistencyValidator_DoesNotMutateInputs(t *testing.T) {
	validator := NewConsistencyValidator(cleaning.DefaultRules())

	orders := testOrders(
		domain.Row{"order_id": "O1", "customer_id": "C9", "price": 10.0, "quantity": 3.0, "revenue": 30.02},
	)
	before := orders.Clone()

	_ = validator.Validate(testCustomers("C1"), orders, domain.NewTable(domain.TableProducts))

	assert.Equal(t, before, orders)
}

func TestConsistencyValidator_FindingOrder(t *testing.T) {
	validator := NewConsistencyValidator(cleaning.DefaultRules())

	orders := testOrders(
		domain.Row{"order_id": "O1", "customer_id": "C1", "product_id": "P1",
			"price": 10.0, "quantity": 1.0, "revenue": 10.0,
			"order_date": time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	)
	products := domain.NewTable(domain.TableProducts, "product_id")
	products.AppendRow(domain.Row{"product_id": "P1"})

	report := validator.Validate(testCustomers("C1"), orders, products)

	checks := make([]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		checks = append(checks, f.Check)
	}
	assert.Equal(t, []string{
		domain.CheckCustomerRefs,
		domain.CheckProductRefs,
		domain.CheckArithmetic,
		domain.CheckDateRange,
		domain.CheckSummary,
	}, checks)
}
