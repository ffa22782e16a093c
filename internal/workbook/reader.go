// Package workbook loads a multi-sheet Excel export into named tables
// and writes cleaned tables back. The pipeline core never touches files;
// this package is its I/O boundary.
package workbook

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"ecomclean/pkg/contracts/domain"
)

// Load reads every sheet of an .xlsx workbook into a named table. The
// first row of each sheet is the header; blank cells become null values.
// Sheets without a header row are skipped.
func Load(path string) (map[string]*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	tables := make(map[string]*domain.Table)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		table, ok := sheetToTable(sheet, rows)
		if !ok {
			slog.Warn("Skipping sheet without header row", slog.String("sheet", sheet))
			continue
		}
		tables[sheet] = table
		slog.Info("Loaded sheet",
			slog.String("sheet", sheet),
			slog.Int("rows", table.Len()),
			slog.Int("columns", len(table.Columns)))
	}
	return tables, nil
}

// sheetToTable converts raw sheet rows into a table. Rows shorter than
// the header are padded with nulls; cells beyond the header are ignored.
func sheetToTable(name string, rows [][]string) (*domain.Table, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	header := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		header = append(header, strings.TrimSpace(cell))
	}
	if len(header) == 0 {
		return nil, false
	}

	table := domain.NewTable(name, header...)
	for _, raw := range rows[1:] {
		row := make(domain.Row, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(raw) && strings.TrimSpace(raw[i]) != "" {
				row[col] = raw[i]
			} else {
				row[col] = nil
			}
		}
		table.AppendRow(row)
	}
	return table, true
}
