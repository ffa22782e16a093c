// Package pipeline sequences the per-table cleaners and the consistency
// validator over whatever subset of tables the workbook supplied.
package pipeline

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"ecomclean/internal/cleaning"
	"ecomclean/internal/validation"
	"ecomclean/pkg/contracts/domain"
)

// Result bundles the outputs of one pipeline run. Tables holds only the
// tables that were present in the input and whose cleaner succeeded.
// Errors carries per-table failures; a failed table never blocks its
// siblings. Report is empty when validation was skipped.
type Result struct {
	Tables map[string]*domain.Table
	Report *domain.ValidationReport
	Stats  RunStats
	Errors *ErrorList
}

// RunStats aggregates the cleaner counters for caller-side logging.
type RunStats struct {
	Customers *cleaning.CustomerStats  `json:"customers,omitempty"`
	Orders    *cleaning.OrderStats     `json:"orders,omitempty"`
	Products  *cleaning.ProductStats   `json:"products,omitempty"`
	Marketing *cleaning.MarketingStats `json:"marketing,omitempty"`
}

// Orchestrator runs the cleaning-and-validation pipeline.
type Orchestrator struct {
	rules     *cleaning.Rules
	customers *cleaning.CustomerCleaner
	orders    *cleaning.OrderCleaner
	products  *cleaning.ProductCleaner
	marketing *cleaning.MarketingCleaner
	validator *validation.ConsistencyValidator
	logger    *slog.Logger
}

// NewOrchestrator creates an orchestrator. A nil rules value selects the
// default normalization rules; a nil logger selects slog.Default.
func NewOrchestrator(rules *cleaning.Rules, logger *slog.Logger) *Orchestrator {
	if rules == nil {
		rules = cleaning.DefaultRules()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		rules:     rules,
		customers: cleaning.NewCustomerCleaner(rules),
		orders:    cleaning.NewOrderCleaner(rules),
		products:  cleaning.NewProductCleaner(),
		marketing: cleaning.NewMarketingCleaner(),
		validator: validation.NewConsistencyValidator(rules),
		logger:    logger,
	}
}

// Run cleans every known table present in raw and validates the result.
// Absent tables are simply omitted from the output. Validation runs only
// when both cleaned customers and cleaned orders exist; otherwise the
// returned report is empty.
//
// The four cleaners are independent, so they run concurrently; each
// branch reads only its own input table and writes only its own result
// slot. Cleaner failures are collected per table, never propagated
// through the group.
func (o *Orchestrator) Run(ctx context.Context, raw map[string]*domain.Table) *Result {
	result := &Result{
		Tables: make(map[string]*domain.Table, len(raw)),
		Report: &domain.ValidationReport{},
		Errors: &ErrorList{},
	}

	var (
		customers, orders, products, marketing *domain.Table
		ordersErr                              error
	)

	g, _ := errgroup.WithContext(ctx)
	if t, ok := raw[domain.TableCustomers]; ok {
		g.Go(func() error {
			var stats cleaning.CustomerStats
			customers, stats = o.customers.Clean(t)
			result.Stats.Customers = &stats
			return nil
		})
	}
	if t, ok := raw[domain.TableOrders]; ok {
		g.Go(func() error {
			var stats cleaning.OrderStats
			orders, stats, ordersErr = o.orders.Clean(t)
			if ordersErr == nil {
				result.Stats.Orders = &stats
			}
			return nil
		})
	}
	if t, ok := raw[domain.TableProducts]; ok {
		g.Go(func() error {
			var stats cleaning.ProductStats
			products, stats = o.products.Clean(t)
			result.Stats.Products = &stats
			return nil
		})
	}
	if t, ok := raw[domain.TableMarketing]; ok {
		g.Go(func() error {
			var stats cleaning.MarketingStats
			marketing, stats = o.marketing.Clean(t)
			result.Stats.Marketing = &stats
			return nil
		})
	}
	// Branches never return errors; failures are collected per table below.
	_ = g.Wait()

	if customers != nil {
		result.Tables[domain.TableCustomers] = customers
		o.logCustomerStats(result.Stats.Customers)
	}
	if ordersErr != nil {
		result.Errors.Add(WrapTableError(domain.TableOrders, ordersErr))
		o.logger.Error("orders cleaning failed", slog.String("error", ordersErr.Error()))
	} else if orders != nil {
		result.Tables[domain.TableOrders] = orders
		o.logOrderStats(result.Stats.Orders)
	}
	if products != nil {
		result.Tables[domain.TableProducts] = products
		o.logProductStats(result.Stats.Products)
	}
	if marketing != nil {
		result.Tables[domain.TableMarketing] = marketing
		o.logMarketingStats(result.Stats.Marketing)
	}

	// Validation needs both cleaned customers and cleaned orders; products
	// is optional and substituted with an empty table when absent.
	if customers != nil && orders != nil {
		if products == nil {
			products = domain.NewTable(domain.TableProducts)
		}
		result.Report = o.validator.Validate(customers, orders, products)
		o.logger.Info("consistency validation complete",
			slog.Int("findings", len(result.Report.Findings)),
			slog.Int("warnings", result.Report.Warnings()))
	} else {
		o.logger.Info("consistency validation skipped",
			slog.Bool("customers_present", customers != nil),
			slog.Bool("orders_present", orders != nil))
	}

	return result
}

func (o *Orchestrator) logCustomerStats(stats *cleaning.CustomerStats) {
	o.logger.Info("customers cleaned",
		slog.Int("initial_rows", stats.InitialRows),
		slog.Int("duplicates_removed", stats.Duplicates),
		slog.Int("dropped_missing_data", stats.Dropped),
		slog.Int("final_rows", stats.FinalRows))
}

func (o *Orchestrator) logOrderStats(stats *cleaning.OrderStats) {
	o.logger.Info("orders cleaned",
		slog.Int("initial_rows", stats.InitialRows),
		slog.Int("duplicates_removed", stats.Duplicates),
		slog.Int("dropped_missing_data", stats.Dropped),
		slog.Int("invalid_orders_removed", stats.InvalidOrders),
		slog.Int("final_rows", stats.FinalRows))
	if stats.HighValueOrders > 0 {
		o.logger.Warn("high-value orders flagged for review",
			slog.Int("count", stats.HighValueOrders))
	}
}

func (o *Orchestrator) logProductStats(stats *cleaning.ProductStats) {
	o.logger.Info("products cleaned",
		slog.Int("initial_rows", stats.InitialRows),
		slog.Int("duplicates_removed", stats.Duplicates),
		slog.Int("final_rows", stats.FinalRows))
}

func (o *Orchestrator) logMarketingStats(stats *cleaning.MarketingStats) {
	o.logger.Info("marketing cleaned",
		slog.Int("initial_rows", stats.InitialRows),
		slog.Int("dropped_missing_channel", stats.Dropped),
		slog.Int("final_rows", stats.FinalRows))
}
