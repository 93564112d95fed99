package dataprocessing

import (
	"strings"
)

// Tokenize splits one report line into whitespace-separated tokens. Form
// feed characters (page breaks in GPIRS output) are treated as spaces.
// An empty or all-whitespace line yields an empty slice.
func Tokenize(line string) []string {
	line = strings.ReplaceAll(line, "\x0c", " ")
	return strings.Fields(line)
}
