package domain

import (
	"github.com/shopspring/decimal"
)

// ShortageRecord represents one recognized two-line entry from a GPIRS
// shortage report. Quantity, UnitPrice and TotalPrice carry an explicit
// null when the source token is not a valid number.
type ShortageRecord struct {
	Line           string              `json:"line"`
	DateRcvd       string              `json:"date_rcvd"`
	PartPrefix     string              `json:"part_prefix"`
	PartBase       string              `json:"part_base"`
	PartSuffix     string              `json:"part_suffix"`
	Description    string              `json:"description"`
	Quantity       decimal.NullDecimal `json:"quantity"`
	UOM            string              `json:"uom"`
	UnitPrice      decimal.NullDecimal `json:"unit_price"`
	TotalPrice     decimal.NullDecimal `json:"total_price"`
	TAMS           string              `json:"tams"`
	TicketNumber   string              `json:"ticket_number"`
	AdditionalInfo string              `json:"additional_info"`
	SourceDoc      string              `json:"source_doc,omitempty"`
}

// DocumentMetadata identifies the source shortage report a set of records
// came from. It is derived once per document and never mutated.
type DocumentMetadata struct {
	DocNo    string `json:"doc_no"`
	DateRcvd string `json:"date_rcvd"`
}

// ShortageColumns is the fixed export column order. Ticket Number is
// second-from-last among the detail fields and Additional Info last,
// with Source Doc appended after them.
var ShortageColumns = []string{
	"Line",
	"Date Rcvd",
	"Part Prefix",
	"Part Base",
	"Part Suffix",
	"Description",
	"Quantity",
	"UOM",
	"Unit Price ($)",
	"Total Price",
	"TAMS",
	"Ticket Number",
	"Additional Info",
	"Source Doc",
}

// Row flattens the record into export column order. Null numerics become
// empty strings so spreadsheet cells stay blank rather than showing a
// sentinel.
func (r ShortageRecord) Row() []string {
	return []string{
		r.Line,
		r.DateRcvd,
		r.PartPrefix,
		r.PartBase,
		r.PartSuffix,
		r.Description,
		formatNullDecimal(r.Quantity),
		r.UOM,
		formatNullDecimal(r.UnitPrice),
		formatNullDecimal(r.TotalPrice),
		r.TAMS,
		r.TicketNumber,
		r.AdditionalInfo,
		r.SourceDoc,
	}
}

func formatNullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
