package exporter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"gpirscli/pkg/contracts/domain"
)

// DetailSheet is the single sheet the shortage workbook carries.
const DetailSheet = "Detail"

// BuildWorkbook builds the shortage workbook in memory: one Detail sheet,
// header row in the fixed column order, one row per record. Numeric fields
// are written as numbers; null values stay blank cells.
func BuildWorkbook(records []domain.ShortageRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), DetailSheet); err != nil {
		return nil, fmt.Errorf("failed to name detail sheet: %w", err)
	}

	header := make([]interface{}, len(domain.ShortageColumns))
	for i, col := range domain.ShortageColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(DetailSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to locate row %d: %w", i+2, err)
		}
		row := []interface{}{
			r.Line,
			r.DateRcvd,
			r.PartPrefix,
			r.PartBase,
			r.PartSuffix,
			r.Description,
			numericCell(r.Quantity),
			r.UOM,
			numericCell(r.UnitPrice),
			numericCell(r.TotalPrice),
			r.TAMS,
			r.TicketNumber,
			r.AdditionalInfo,
			r.SourceDoc,
		}
		if err := f.SetSheetRow(DetailSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write record row %d: %w", i, err)
		}
	}

	return f, nil
}

// WriteWorkbook writes the shortage workbook to disk, creating the parent
// directory when needed.
func WriteWorkbook(path string, records []domain.ShortageRecord) error {
	f, err := BuildWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("workbook written",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return nil
}

// StreamWorkbook serializes the workbook to a writer, for HTTP downloads.
func StreamWorkbook(w io.Writer, records []domain.ShortageRecord) error {
	f, err := BuildWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to stream workbook: %w", err)
	}
	return nil
}

// numericCell maps a nullable decimal onto the value excelize writes:
// a float for valid numbers, nil for a blank cell.
func numericCell(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	v, _ := d.Decimal.Float64()
	return v
}
