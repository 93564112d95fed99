package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gpirscli/internal/config"
	"gpirscli/internal/exporter"
	"gpirscli/internal/infrastructure"
	"gpirscli/internal/services"
)

func main() {
	inDir := flag.String("in", "", "input directory of .txt shortage reports (defaults to data/inbox relative to executable)")
	outDir := flag.String("out", "", "output directory for the generated report (defaults to data/reports relative to executable)")
	overrideDate := flag.String("date", "", "override Date Rcvd for every record (YYYY-MM-DD)")
	asCSV := flag.Bool("csv", false, "write a UTF-8 BOM CSV alongside the workbook")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inDir == "" {
		*inDir = paths.InboxDir
	}
	if *outDir == "" {
		*outDir = paths.ReportsDir
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.GetLogPath("converter.log"),
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *overrideDate == "" && !cfg.Conversion.UseHeaderDate {
		*overrideDate = cfg.Conversion.OverrideDate
	}
	if *overrideDate != "" {
		if _, err := time.Parse("2006-01-02", *overrideDate); err != nil {
			logger.Error("Invalid override date, expected YYYY-MM-DD",
				slog.String("date", *overrideDate))
			os.Exit(1)
		}
	}

	logger.Info("Starting shortage report conversion",
		slog.String("input_dir", *inDir),
		slog.String("output_dir", *outDir),
		slog.String("override_date", *overrideDate))

	inputs, err := collectInputs(*inDir)
	if err != nil {
		logger.Error("Failed to read input directory", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(inputs) == 0 {
		logger.Error("No .txt reports found", slog.String("input_dir", *inDir))
		os.Exit(1)
	}

	ctx := context.Background()
	service := services.NewConvertService(logger, nil, nil)

	result, err := service.Convert(ctx, inputs, services.ConvertOptions{OverrideDate: *overrideDate})
	if err != nil {
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, failure := range result.Failures {
		logger.Warn("Document skipped",
			slog.String("name", failure.Name),
			slog.String("error", failure.Error))
	}
	for _, doc := range result.Documents {
		logger.Info("Document converted",
			slog.String("name", doc.Name),
			slog.String("badge", doc.Badge),
			slog.String("date_rcvd", doc.DateRcvd),
			slog.Int("records", doc.Records))
	}

	outPath := filepath.Join(*outDir, result.Filename)
	if err := exporter.WriteWorkbook(outPath, result.Records); err != nil {
		logger.Error("Failed to write workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *asCSV {
		csvPath := strings.TrimSuffix(outPath, ".xlsx") + ".csv"
		writer := exporter.NewCSVWriter()
		if err := writer.WriteRecords(csvPath, result.Records); err != nil {
			logger.Error("Failed to write CSV", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("CSV written", slog.String("path", csvPath))
	}

	logger.Info("Conversion complete",
		slog.String("output", outPath),
		slog.Int("documents", len(result.Documents)),
		slog.Int("skipped", len(result.Failures)),
		slog.Int("records", len(result.Records)))
	fmt.Printf("Wrote %d records from %d document(s) to %s\n",
		len(result.Records), len(result.Documents), outPath)
}

// collectInputs reads every .txt file in dir, sorted by name so batch
// order and the merged record order stay deterministic across runs.
func collectInputs(dir string) ([]services.DocumentInput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	inputs := make([]services.DocumentInput, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		inputs = append(inputs, services.DocumentInput{Name: name, Data: data})
	}

	return inputs, nil
}
