// Command cleaner ingests a multi-sheet e-commerce workbook, repairs
// data-quality defects, cross-validates the tables and writes a cleaned
// workbook plus a console summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ecomclean/internal/cleaning"
	"ecomclean/internal/config"
	"ecomclean/internal/exporter"
	"ecomclean/internal/infrastructure"
	"ecomclean/internal/pipeline"
	"ecomclean/internal/workbook"
	"ecomclean/pkg/contracts"
	"ecomclean/pkg/contracts/domain"
)

func main() {
	inPath := flag.String("in", "", "input workbook (.xlsx)")
	outPath := flag.String("out", "", "output workbook (defaults to cleaned_data.xlsx)")
	csvDir := flag.String("csv-dir", "", "optional directory for per-table CSV exports")
	configPath := flag.String("config", "ecomclean.yaml", "optional YAML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *inPath != "" {
		cfg.Paths.Input = *inPath
	}
	if *outPath != "" {
		cfg.Paths.Output = *outPath
	}
	if *csvDir != "" {
		cfg.Paths.CSVDir = *csvDir
	}
	if cfg.Paths.Input == "" {
		slog.Error("No input workbook given, use -in")
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	logger.Info("Starting workbook cleaning",
		slog.String("input", cfg.Paths.Input),
		slog.String("output", cfg.Paths.Output))

	tables, err := workbook.Load(cfg.Paths.Input)
	if err != nil {
		logger.Error("Failed to load workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rules := cleaning.DefaultRules()
	rules.RevenueTolerance = cfg.Cleaning.RevenueTolerance
	rules.HighValueThreshold = cfg.Cleaning.HighValueThreshold

	orchestrator := pipeline.NewOrchestrator(rules, logger)
	result := orchestrator.Run(context.Background(), tables)

	exporter.NewConsoleRenderer(os.Stdout).Render(result)

	if len(result.Tables) == 0 {
		logger.Error("No table could be cleaned")
		os.Exit(1)
	}

	if err := workbook.Write(cfg.Paths.Output, result.Tables, domain.KnownTables); err != nil {
		logger.Error("Failed to write cleaned workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Cleaned workbook written", slog.String("path", cfg.Paths.Output))

	if cfg.Paths.CSVDir != "" {
		writer := exporter.NewCSVWriter(cfg.Paths.CSVDir)
		if err := writer.ExportTables(result.Tables, domain.KnownTables); err != nil {
			logger.Error("CSV export failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("Processing complete",
		slog.Int("tables_cleaned", len(result.Tables)),
		slog.Int("table_failures", len(result.Errors.Errors)),
		slog.Int("validation_warnings", result.Report.Warnings()))
}
