// Package exporter renders cleaned tables and validation reports for
// consumption outside the pipeline: CSV side-exports and the console
// summary.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ecomclean/pkg/contracts/domain"
)

// CSVWriter exports cleaned tables as CSV files, one per table.
type CSVWriter struct {
	dir string
}

// NewCSVWriter creates a CSV writer targeting the given directory.
func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir: dir}
}

// ExportTables writes each table in order to <dir>/<name>.csv. Files are
// prefixed with a UTF-8 BOM so Excel opens them correctly.
func (w *CSVWriter) ExportTables(tables map[string]*domain.Table, order []string) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	for _, name := range order {
		table, ok := tables[name]
		if !ok {
			continue
		}
		path := filepath.Join(w.dir, name+".csv")
		if err := w.writeTable(path, table); err != nil {
			return fmt.Errorf("failed to export %q: %w", name, err)
		}
		slog.Info("Exported CSV",
			slog.String("table", name),
			slog.String("path", path),
			slog.Int("rows", table.Len()))
	}
	return nil
}

func (w *CSVWriter) writeTable(path string, table *domain.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// UTF-8 BOM helps Excel recognize the encoding.
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(table.Columns); err != nil {
		return err
	}
	for _, row := range table.Rows {
		record := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			record[i] = formatCell(row[col])
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}
