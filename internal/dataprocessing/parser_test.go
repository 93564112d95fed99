package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpirscli/pkg/contracts/domain"
)

var testMeta = domain.DocumentMetadata{DocNo: "AB_12-34", DateRcvd: "2024-03-05"}

func TestParseDocumentExtractsRecord(t *testing.T) {
	txt := "GPIRS SHORTAGE REPORT\n" +
		"12 AB 1234 C 10 EA 5.00 50.00\n" +
		"T987 Widget kit I V TAMS1 . X\n" +
		"end of report\n"

	records := ParseDocument(txt, testMeta)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "12", r.Line)
	assert.Equal(t, "2024-03-05", r.DateRcvd)
	assert.Equal(t, "AB", r.PartPrefix)
	assert.Equal(t, "1234", r.PartBase)
	assert.Equal(t, "C", r.PartSuffix)
	assert.Equal(t, "Widget kit", r.Description)
	assert.Equal(t, "EA", r.UOM)
	assert.Equal(t, "TAMS1", r.TAMS)
	assert.Equal(t, "T987", r.TicketNumber)
	assert.Equal(t, "X", r.AdditionalInfo)
	assert.Equal(t, "AB_12-34", r.SourceDoc)

	require.True(t, r.Quantity.Valid)
	assert.Equal(t, "10", r.Quantity.Decimal.String())
	require.True(t, r.UnitPrice.Valid)
	assert.Equal(t, "5.00", r.UnitPrice.Decimal.String())
	require.True(t, r.TotalPrice.Valid)
	assert.Equal(t, "50.00", r.TotalPrice.Decimal.String())
}

func TestParseDocumentSMarkerVariant(t *testing.T) {
	txt := "12 AB 1234 C 10 EA 5.00 50.00\n" +
		"T987 Widget kit S V TAMS1 . X\n"

	records := ParseDocument(txt, testMeta)
	require.Len(t, records, 1)
	assert.Equal(t, "Widget kit", records[0].Description)
	assert.Equal(t, "TAMS1", records[0].TAMS)
}

func TestParseDocumentNoQualifyingMarker(t *testing.T) {
	// "I" never followed by "V" and no "S" token at all.
	txt := "12 AB 1234 C 10 EA 5.00 50.00\n" +
		"T987 Widget kit I TAMS1 . X\n"

	records := ParseDocument(txt, testMeta)
	assert.Empty(t, records)
}

func TestParseEntriesRejectedPairAdvancesByOne(t *testing.T) {
	// The first detail line has no marker, but it is itself a valid header
	// for the line after it. Single-line advance must reconsider it.
	lines := []string{
		"12 AB 1234 C 10 EA 5.00 50.00",
		"13 CD 5678 D 2 EA 1.00 2.00",
		"T111 Spare bolt I V TAMS9 .",
	}

	entries := parseEntries(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "13", entries[0].Line)
	assert.Equal(t, "T111", entries[0].TicketNumber)
}

func TestParseEntriesSkipsNonNumericHeaders(t *testing.T) {
	lines := []string{
		"Page 1 of 3",
		"PART LISTING",
		"12 AB 1234 C 10 EA 5.00 50.00",
		"T987 Widget kit I V TAMS1",
		"-- footer --",
	}

	entries := parseEntries(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "12", entries[0].Line)
}

func TestParseEntriesLastFourTokensRule(t *testing.T) {
	// Long part description between the suffix and the pricing block: the
	// final four header tokens are still quantity, UOM and the two prices.
	lines := []string{
		"7 XY 9999 B heavy duty retaining clip assy 4 EA 2.50 10.00",
		"T555 Clip S V TAMS7 . . Y",
	}

	entries := parseEntries(lines)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "4", e.Quantity)
	assert.Equal(t, "EA", e.UOM)
	assert.Equal(t, "2.50", e.UnitPrice)
	assert.Equal(t, "10.00", e.TotalPrice)
	assert.Equal(t, "Y", e.AdditionalInfo)
}

func TestParseEntriesMarkerAtIndexOne(t *testing.T) {
	// No description tokens between the ticket and the marker.
	lines := []string{
		"3 AA 1111 A 1 EA 9.99 9.99",
		"T001 I V TAMS2 .",
	}

	entries := parseEntries(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Description)
	assert.Equal(t, "TAMS2", entries[0].TAMS)
	assert.Equal(t, "", entries[0].AdditionalInfo)
}

func TestParseEntriesTAMSOutOfRange(t *testing.T) {
	// Marker's V companion is the final token, so the TAMS offset is past
	// the end of the line.
	lines := []string{
		"3 AA 1111 A 1 EA 9.99 9.99",
		"T001 part one two I V",
	}

	entries := parseEntries(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].TAMS)
	assert.Equal(t, "", entries[0].AdditionalInfo)
}

func TestParseEntriesPlaceholderOnlyTail(t *testing.T) {
	lines := []string{
		"3 AA 1111 A 1 EA 9.99 9.99",
		"T001 gasket I V TAMS3 . . .",
	}

	entries := parseEntries(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].AdditionalInfo)
}

func TestParseEntriesShortDetailRejected(t *testing.T) {
	lines := []string{
		"3 AA 1111 A 1 EA 9.99 9.99",
		"T001 I V",
	}

	assert.Empty(t, parseEntries(lines))
}

func TestParseDocumentEmptyInput(t *testing.T) {
	assert.Empty(t, ParseDocument("", testMeta))
	assert.Empty(t, ParseDocument("\n\n\n", testMeta))
	assert.Empty(t, ParseDocument("just one line", testMeta))
}

func TestAllDigits(t *testing.T) {
	assert.True(t, allDigits("12"))
	assert.True(t, allDigits("0"))
	assert.False(t, allDigits(""))
	assert.False(t, allDigits("12a"))
	assert.False(t, allDigits("T987"))
	assert.False(t, allDigits("1.5"))
}
