package dataprocessing

// markerTokens are the variant codes GPIRS emits between the description
// and the TAMS fields. Only an occurrence immediately followed by "V" is
// the structural marker; the same letters can appear as ordinary content
// elsewhere in the line.
var markerTokens = []string{"I", "S"}

// FindMarkerIndex locates the marker token in a detail line: the first "I",
// or failing that the first "S", qualifies only when the next token is
// exactly "V". Returns the marker's index and true, or -1 and false when
// neither candidate qualifies.
func FindMarkerIndex(tokens []string) (int, bool) {
	for _, marker := range markerTokens {
		for idx, tok := range tokens {
			if tok != marker {
				continue
			}
			if idx+1 < len(tokens) && tokens[idx+1] == "V" {
				return idx, true
			}
			break // only the first occurrence of each candidate counts
		}
	}
	return -1, false
}
