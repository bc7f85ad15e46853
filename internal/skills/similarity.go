package skills

import "strings"

// MatchThreshold is the shared is-a-match cutoff for skill similarity.
// Every matching stage (directions, vacancies, course candidates) compares
// against this single value; callers may override it once through the
// advisor configuration, never per call site.
const MatchThreshold = 0.7

// Similarity returns a case-insensitive similarity ratio in [0, 1] between
// two skill labels. The metric is the classic longest-matching-blocks
// ratio: 2*M/T where M is the total number of characters covered by the
// recursively found longest common blocks and T is the combined length of
// both strings. It is symmetric and reflexive; two empty strings compare
// as identical.
//
// The block search breaks length ties by earliest position in its first
// argument, which would make the ratio direction-dependent. The lowered
// inputs are therefore put in lexicographic order first, so both
// directions walk the identical block decomposition.
func Similarity(a, b string) float64 {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	if la > lb {
		la, lb = lb, la
	}

	ra := []rune(la)
	rb := []rune(lb)

	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	return float64(2*matchingRunes(ra, rb)) / float64(total)
}

// matchingRunes counts characters covered by matching blocks: it finds the
// longest common block, then recurses into the pieces to its left and
// right on both sides.
func matchingRunes(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}

	return size +
		matchingRunes(a[:ai], b[:bi]) +
		matchingRunes(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest common contiguous block of a and b,
// returning its start offsets and length. Earlier blocks win on ties.
func longestCommonBlock(a, b []rune) (bestA, bestB, bestSize int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > bestSize {
					bestSize = cur[j]
					bestA = i - cur[j]
					bestB = j - cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}

	return bestA, bestB, bestSize
}

// IsMatch reports whether two labels reach the provided similarity
// threshold. A non-positive threshold falls back to MatchThreshold.
func IsMatch(a, b string, threshold float64) bool {
	if threshold <= 0 {
		threshold = MatchThreshold
	}
	return Similarity(a, b) >= threshold
}
