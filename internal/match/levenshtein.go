package match

import "unicode/utf8"

// Levenshtein returns the number of single-rune insertions, deletions or
// substitutions needed to turn a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// row over the shorter operand
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j, cb := range rb {
		diag := row[0]
		row[0] = j + 1

		for i, ca := range ra {
			sub := diag
			if ca != cb {
				sub++
			}

			diag = row[i+1]
			row[i+1] = min(row[i+1]+1, row[i]+1, sub)
		}
	}

	return row[len(ra)]
}

// LevenshteinNormalized maps the distance onto [0, 1], where 1 means equal:
// 1 - distance / max(runes(a), runes(b)).
func LevenshteinNormalized(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// NameSimilarity scores two attribute or tag names after NormalizeName, so
// "sampleRate" and "sample_rate" are equal.
func NameSimilarity(a, b string) float64 {
	return LevenshteinNormalized(NormalizeName(a), NormalizeName(b))
}
