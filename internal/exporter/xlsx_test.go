package exporter

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gpirscli/internal/dataprocessing"
	"gpirscli/pkg/contracts/domain"
)

func sampleRecords() []domain.ShortageRecord {
	return []domain.ShortageRecord{
		{
			Line: "12", DateRcvd: "2024-03-05",
			PartPrefix: "AB", PartBase: "1234", PartSuffix: "C",
			Description: "Widget kit",
			Quantity:    dataprocessing.CoerceNumeric("10"),
			UOM:         "EA",
			UnitPrice:   dataprocessing.CoerceNumeric("5.00"),
			TotalPrice:  dataprocessing.CoerceNumeric("50.00"),
			TAMS:        "TAMS1", TicketNumber: "T987",
			AdditionalInfo: "X", SourceDoc: "DOC_1",
		},
		{
			Line: "13", DateRcvd: "2024-03-05",
			PartPrefix: "CD", PartBase: "5678", PartSuffix: "D",
			Quantity:     dataprocessing.CoerceNumeric("bad"), // null cell
			UOM:          "EA",
			TicketNumber: "T988", SourceDoc: "DOC_1",
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "shortage_report_DOC_1_2024-03-05.xlsx")
	require.NoError(t, WriteWorkbook(path, sampleRecords()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DetailSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, domain.ShortageColumns, rows[0])

	assert.Equal(t, "12", rows[1][0])
	assert.Equal(t, "Widget kit", rows[1][5])
	assert.Equal(t, "10", rows[1][6])
	assert.Equal(t, "5", rows[1][8])
	assert.Equal(t, "50", rows[1][9])
	assert.Equal(t, "T987", rows[1][11])

	// Null quantity stays an empty cell.
	assert.Equal(t, "", rows[2][6])
}

func TestWriteWorkbookEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteWorkbook(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DetailSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
	assert.Equal(t, domain.ShortageColumns, rows[0])
}

func TestStreamWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, StreamWorkbook(&buf, sampleRecords()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DetailSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
