package exporter

import (
	"fmt"
	"io"

	"ecomclean/internal/pipeline"
	"ecomclean/pkg/contracts/domain"
)

// ConsoleRenderer writes the human-readable run summary the way the
// pipeline's operators expect it on stdout. Report content belongs to
// the core's contract; this layer only owns the formatting.
type ConsoleRenderer struct {
	out io.Writer
}

// NewConsoleRenderer creates a renderer writing to out.
func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out}
}

// Render prints per-table cleaning stats, validator findings and any
// per-table failures.
func (r *ConsoleRenderer) Render(result *pipeline.Result) {
	fmt.Fprintln(r.out, "Cleaning summary")
	fmt.Fprintln(r.out, "----------------")
	r.renderStats(result.Stats)

	if result.Errors.HasErrors() {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "Failures")
		for _, err := range result.Errors.Errors {
			fmt.Fprintf(r.out, "  ✗ %s\n", err.Error())
		}
	}

	if result.Report.IsEmpty() {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "Validation skipped (customers and orders both required)")
		return
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Validation")
	for _, finding := range result.Report.Findings {
		fmt.Fprintf(r.out, "  %s %s\n", marker(finding.Severity), finding.Message)
	}
}

func (r *ConsoleRenderer) renderStats(stats pipeline.RunStats) {
	if s := stats.Customers; s != nil {
		fmt.Fprintf(r.out, "  customers: %d -> %d rows (%d duplicates, %d dropped)\n",
			s.InitialRows, s.FinalRows, s.Duplicates, s.Dropped)
	}
	if s := stats.Orders; s != nil {
		fmt.Fprintf(r.out, "  orders: %d -> %d rows (%d duplicates, %d dropped, %d invalid)\n",
			s.InitialRows, s.FinalRows, s.Duplicates, s.Dropped, s.InvalidOrders)
		if s.HighValueOrders > 0 {
			fmt.Fprintf(r.out, "  ⚠ %d orders above the high-value threshold flagged for review\n",
				s.HighValueOrders)
		}
	}
	if s := stats.Products; s != nil {
		fmt.Fprintf(r.out, "  products: %d -> %d rows (%d duplicates)\n",
			s.InitialRows, s.FinalRows, s.Duplicates)
	}
	if s := stats.Marketing; s != nil {
		fmt.Fprintf(r.out, "  marketing: %d -> %d rows (%d dropped)\n",
			s.InitialRows, s.FinalRows, s.Dropped)
	}
}

func marker(severity domain.Severity) string {
	switch severity {
	case domain.SeverityWarning:
		return "⚠"
	case domain.SeverityInfo:
		return "·"
	default:
		return "✓"
	}
}
