package dataprocessing

import (
	"regexp"
	"strings"
	"time"

	"gpirscli/pkg/contracts/domain"
)

const dateLayout = "2006-01-02"

var (
	docNoPattern    = regexp.MustCompile(`(?i)Shipping\s+Document\s+No:\s*([A-Za-z0-9\-_/]+)`)
	docNoSanitizer  = regexp.MustCompile(`[^A-Za-z0-9\-_]`)
	datePatternTail = `\s*([0-9]{4}[/-][0-9]{2}[/-][0-9]{2}|[0-9]{2}/[0-9]{2}/[0-9]{4})`

	// dateLayouts are the accepted textual date forms, tried in order.
	// Day-first is attempted before month-first for ambiguous values.
	dateLayouts = []string{"2006/01/02", "2006-01-02", "02/01/2006", "01/02/2006"}

	// dateExtractors is the priority-ordered fallback chain: each pattern
	// is tried in turn until one yields a parseable date.
	dateExtractors = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Received\s+Date:` + datePatternTail),
		regexp.MustCompile(`(?i)Date\s+Created:` + datePatternTail),
	}
)

// ExtractDocNo pulls the shipping document identifier out of the full
// document text and sanitizes it to a filename-safe alphabet (slashes and
// other punctuation become underscores, hyphens survive). Returns an empty
// string when no identifier is present.
func ExtractDocNo(txt string) string {
	m := docNoPattern.FindStringSubmatch(txt)
	if m == nil {
		return ""
	}
	return docNoSanitizer.ReplaceAllString(strings.TrimSpace(m[1]), "_")
}

// NormalizeDate parses a date token in one of the four accepted layouts and
// reports it as YYYY-MM-DD. The second return is false when no layout
// matches.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), true
		}
	}
	return "", false
}

// ExtractDate resolves the received date for a document: the Received Date
// header, then the Date Created header, then the supplied fallback time.
// Each tier is consulted only when the one before it failed to produce a
// valid date.
func ExtractDate(txt string, now time.Time) string {
	for _, pattern := range dateExtractors {
		m := pattern.FindStringSubmatch(txt)
		if m == nil {
			continue
		}
		if d, ok := NormalizeDate(m[1]); ok {
			return d
		}
	}
	return now.Format(dateLayout)
}

// ExtractMetadata derives the per-document metadata applied to every record
// the document produces.
func ExtractMetadata(txt string, now time.Time) domain.DocumentMetadata {
	return domain.DocumentMetadata{
		DocNo:    ExtractDocNo(txt),
		DateRcvd: ExtractDate(txt, now),
	}
}
