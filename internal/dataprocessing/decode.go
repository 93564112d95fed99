package dataprocessing

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeDocument converts raw report bytes to text. Encodings are tried in
// order: UTF-8 with BOM, plain UTF-8, Latin-1. The first that decodes wins.
func DecodeDocument(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, utf8BOM) {
		stripped := raw[len(utf8BOM):]
		if utf8.Valid(stripped) {
			return string(stripped), nil
		}
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	txt, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode document: %w", err)
	}
	return string(txt), nil
}
