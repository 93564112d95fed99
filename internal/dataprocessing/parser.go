package dataprocessing

import (
	"log/slog"
	"strings"

	"gpirscli/pkg/contracts/domain"
)

// rawEntry holds the still-textual fields of one recognized header/detail
// pair. Numeric coercion happens in the assembler so a bad token degrades
// to a null value instead of rejecting the record.
type rawEntry struct {
	Line           string
	PartPrefix     string
	PartBase       string
	PartSuffix     string
	Description    string
	Quantity       string
	UOM            string
	UnitPrice      string
	TotalPrice     string
	TAMS           string
	TicketNumber   string
	AdditionalInfo string
}

// ParseDocument scans cleaned report text for two-line shortage entries and
// assembles one record per recognized pair, each tagged with the document's
// metadata. Malformed regions are skipped a line at a time; the scan never
// fails.
func ParseDocument(txt string, meta domain.DocumentMetadata) []domain.ShortageRecord {
	lines := cleanLines(txt)
	entries := parseEntries(lines)

	slog.Debug("document scan complete",
		slog.String("doc_no", meta.DocNo),
		slog.Int("lines", len(lines)),
		slog.Int("entries", len(entries)))

	return Assemble(entries, meta)
}

// cleanLines strips whitespace and form feeds and drops blank lines, so the
// pairing scan only ever sees content lines.
func cleanLines(txt string) []string {
	var lines []string
	for _, ln := range strings.Split(txt, "\n") {
		ln = strings.ReplaceAll(strings.TrimSpace(ln), "\x0c", "")
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// parseEntries drives the two-line sliding scan. A candidate header (first
// token all digits) is paired with the following detail line only when the
// structural checks hold; any rejection advances the cursor by a single
// line so a header-looking line is reconsidered on its own, while an
// accepted pair consumes both lines.
func parseEntries(lines []string) []rawEntry {
	var entries []rawEntry

	i := 0
	for i < len(lines)-1 {
		header := Tokenize(lines[i])
		if len(header) == 0 || !allDigits(header[0]) {
			i++
			continue
		}

		detail := Tokenize(lines[i+1])
		if len(header) < 8 || len(detail) < 5 || !isTicketToken(detail[0]) {
			i++
			continue
		}

		markerIdx, ok := FindMarkerIndex(detail)
		if !ok {
			i++
			continue
		}

		entries = append(entries, extractEntry(header, detail, markerIdx))
		i += 2
	}

	return entries
}

// extractEntry pulls the fixed and variable-width fields out of an accepted
// header/detail pair. Quantity, UOM and the two prices are always the final
// four header tokens regardless of how many description tokens precede
// them.
func extractEntry(header, detail []string, markerIdx int) rawEntry {
	n := len(header)

	// TAMS sits immediately after the marker's required "V" companion.
	tamsIdx := markerIdx + 2
	tams := ""
	if tamsIdx < len(detail) {
		tams = detail[tamsIdx]
	}

	// Additional info is the last non-placeholder token after the TAMS
	// position; "." tokens are column placeholders in the report layout.
	additional := ""
	if tamsIdx+1 < len(detail) {
		for _, tok := range detail[tamsIdx+1:] {
			if tok != "." {
				additional = tok
			}
		}
	}

	return rawEntry{
		Line:           header[0],
		PartPrefix:     header[1],
		PartBase:       header[2],
		PartSuffix:     header[3],
		Description:    strings.Join(detail[1:markerIdx], " "),
		Quantity:       header[n-4],
		UOM:            header[n-3],
		UnitPrice:      header[n-2],
		TotalPrice:     header[n-1],
		TAMS:           tams,
		TicketNumber:   detail[0],
		AdditionalInfo: additional,
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isTicketToken reports whether a detail line opens with a ticket number:
// a run of digits with an optional leading letter prefix (T987, 12044).
func isTicketToken(s string) bool {
	i := 0
	for i < len(s) && ((s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z')) {
		i++
	}
	return allDigits(s[i:])
}
