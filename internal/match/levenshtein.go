package match

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Levenshtein computes the edit distance between two strings, counting runes.
// Two rows of the matrix are kept, so space is O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LevenshteinNormalized computes a similarity score between 0 and 1:
// 1 - distance / max(len(a), len(b)).
func LevenshteinNormalized(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

var jaroWinkler = metrics.NewJaroWinkler()

// BoneSimilarity scores two bone names after normalization. It takes the
// better of the edit-distance score and Jaro-Winkler, which favours shared
// prefixes such as "leftupper" in "leftupperarm" and "leftupperleg".
func BoneSimilarity(a, b string) float64 {
	na, nb := NormalizeBone(a), NormalizeBone(b)
	if na == nb {
		return 1.0
	}

	return max(LevenshteinNormalized(na, nb), strutil.Similarity(na, nb, jaroWinkler))
}
