package dataprocessing

import (
	"github.com/shopspring/decimal"

	"gpirscli/pkg/contracts/domain"
)

// CoerceNumeric converts a quantity or price token to a decimal. A token
// that is not a valid number yields a null value, never an error.
func CoerceNumeric(tok string) decimal.NullDecimal {
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// Assemble turns the raw entries of one document into finished records:
// numeric fields are coerced (failures become nulls) and every record is
// tagged with the document's identifier and received date.
func Assemble(entries []rawEntry, meta domain.DocumentMetadata) []domain.ShortageRecord {
	records := make([]domain.ShortageRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, domain.ShortageRecord{
			Line:           e.Line,
			DateRcvd:       meta.DateRcvd,
			PartPrefix:     e.PartPrefix,
			PartBase:       e.PartBase,
			PartSuffix:     e.PartSuffix,
			Description:    e.Description,
			Quantity:       CoerceNumeric(e.Quantity),
			UOM:            e.UOM,
			UnitPrice:      CoerceNumeric(e.UnitPrice),
			TotalPrice:     CoerceNumeric(e.TotalPrice),
			TAMS:           e.TAMS,
			TicketNumber:   e.TicketNumber,
			AdditionalInfo: e.AdditionalInfo,
			SourceDoc:      meta.DocNo,
		})
	}
	return records
}

// Merge concatenates the record sets of multiple documents, preserving
// per-document order. No deduplication and no cross-document sorting.
func Merge(batches ...[]domain.ShortageRecord) []domain.ShortageRecord {
	var total int
	for _, b := range batches {
		total += len(b)
	}
	merged := make([]domain.ShortageRecord, 0, total)
	for _, b := range batches {
		merged = append(merged, b...)
	}
	return merged
}
