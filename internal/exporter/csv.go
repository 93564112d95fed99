package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gpirscli/pkg/contracts/domain"
)

// CSVWriter provides CSV export for shortage record sets.
type CSVWriter struct{}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	slog.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// WriteRecords writes a shortage record set as CSV in the fixed export
// column order.
func (w *CSVWriter) WriteRecords(filePath string, records []domain.ShortageRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row())
	}
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   domain.ShortageColumns,
		Records:   rows,
		BOMPrefix: true,
	})
}
