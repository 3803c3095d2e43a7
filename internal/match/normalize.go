package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a name for fuzzy matching: word separators are
// dropped and case is ignored, dots are kept. "sampleRate", "Sample_Rate"
// and "sample-rate" all become "samplerate".
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if !isWordBreak(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// SnakeCase rewrites every dot-separated segment of name as lower snake case.
//   - "sampleRate" -> "sample_rate"
//   - "Station.DataLogger.ID" -> "station.data_logger.id"
//   - "run-ID" -> "run_id"
func SnakeCase(name string) string {
	segments := strings.Split(name, ".")
	for i, seg := range segments {
		segments[i] = strings.Join(TokenizeIdent(seg), "_")
	}

	return strings.Join(segments, ".")
}

// TokenizeIdent splits an identifier into lowercase words at separators and
// case changes: "DataLoggerID" -> [data logger id].
func TokenizeIdent(s string) []string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return words
}

// splitWords keeps the original case: "XMLRecord" -> [XML Record].
func splitWords(s string) []string {
	var words []string

	runes := []rune(s)
	start := -1

	flush := func(end int) {
		if start >= 0 {
			words = append(words, string(runes[start:end]))
			start = -1
		}
	}

	for i, r := range runes {
		switch {
		case isWordBreak(r):
			flush(i)
		case start < 0:
			start = i
		case startsWord(runes, i):
			flush(i)
			start = i
		}
	}

	flush(len(runes))

	return words
}

// startsWord reports an upper-case rune that opens a word inside a run:
// "sample|Rate", and "XML|Record" where the next rune is lower case.
func startsWord(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func isWordBreak(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
