package exporter

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// MultiDocLabel replaces the document part of the export filename when the
// batch spans more than one distinct document.
const MultiDocLabel = "MULTI"

// ExportFilename builds the workbook filename for a batch:
// shortage_report_<DOC>_<DATE>.xlsx. DOC is the single shared document
// badge, or MULTI when the badges differ. DATE is the operator override
// when one was supplied, else the comma-joined sorted set of distinct
// per-document dates, else the run date.
func ExportFilename(badges, dates []string, overrideDate string, now time.Time) string {
	docPart := MultiDocLabel
	if unique := sortedUnique(badges); len(unique) == 1 {
		docPart = unique[0]
	}

	datePart := overrideDate
	if datePart == "" {
		if unique := sortedUnique(dates); len(unique) > 0 {
			datePart = strings.Join(unique, ",")
		} else {
			datePart = now.Format("2006-01-02")
		}
	}

	return fmt.Sprintf("shortage_report_%s_%s.xlsx", docPart, datePart)
}

func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var unique []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	sort.Strings(unique)
	return unique
}
