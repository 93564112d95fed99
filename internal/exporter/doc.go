// Package exporter serializes assembled shortage records to spreadsheet
// artifacts: a single-sheet .xlsx workbook (the primary output) and a
// UTF-8-BOM csv for copy/paste workflows. It also owns the export filename
// convention shortage_report_<DOC>_<DATE>.xlsx.
package exporter
