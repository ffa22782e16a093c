package workbook

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"ecomclean/pkg/contracts/domain"
)

// Write saves the tables to an .xlsx workbook, one sheet per table, in
// the given sheet order. Tables missing from the map are skipped.
func Write(path string, tables map[string]*domain.Table, order []string) error {
	f := excelize.NewFile()
	defer f.Close()

	written := 0
	for _, name := range order {
		table, ok := tables[name]
		if !ok {
			continue
		}
		if err := writeSheet(f, table); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", name, err)
		}
		written++
		slog.Info("Wrote sheet", slog.String("sheet", name), slog.Int("rows", table.Len()))
	}
	if written == 0 {
		return fmt.Errorf("no tables to write")
	}

	// The first written sheet replaces the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, table *domain.Table) error {
	if _, err := f.NewSheet(table.Name); err != nil {
		return err
	}

	header := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(table.Name, "A1", &header); err != nil {
		return err
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, len(table.Columns))
		for j, col := range table.Columns {
			cells[j] = cellValue(row[col])
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(table.Name, addr, &cells); err != nil {
			return err
		}
	}
	return nil
}

// cellValue converts a table cell to something excelize can serialize.
// Dates are written in ISO form so a re-imported workbook parses cleanly.
func cellValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return val
	}
}
