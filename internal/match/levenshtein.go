package match

// Levenshtein returns the edit distance between a and b: the number of
// single-rune insertions, deletions and substitutions turning one into the
// other.
func Levenshtein(a, b string) int {
	return distance([]rune(a), []rune(b))
}

func distance(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	// row[i] is the distance between a[:i] and the prefix of b seen so far.
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			up := row[i]

			sub := diag
			if a[i-1] != b[j-1] {
				sub++
			}

			row[i] = min(up+1, row[i-1]+1, sub)
			diag = up
		}
	}

	return row[len(a)]
}

// LevenshteinNormalized scores the similarity of a and b between 0 and 1:
// 1 - distance / longest rune length. Two empty strings score 1.
func LevenshteinNormalized(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(distance(ra, rb))/float64(longest)
}

// NormalizedLevenshteinScore computes the similarity of two names after
// folding them, so "public_key" and "PublicKey" score 1.
func NormalizedLevenshteinScore(a, b string) float64 {
	return LevenshteinNormalized(Fold(a), Fold(b))
}
