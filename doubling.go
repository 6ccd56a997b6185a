package suffixindex

import "sort"

// Comparison state for one doubling round: the current ranks plus the radius
// they were computed for. A sort round closes over a single table, so writing
// the next round's ranks can never leak into an in-flight comparison.
type rankTable struct {
	ranks  []int
	radius int
}

// Rank of the suffix starting at i, or 0 for any index past the end of the
// text. Real ranks start at 1, so the virtual empty suffix sorts below every
// real one.
func (t rankTable) rankAt(i int) int {
	if i < len(t.ranks) {
		return t.ranks[i]
	}
	return 0
}

// Orders suffixes i and j by the pair (rank of the first radius bytes, rank
// of the following radius bytes).
func (t rankTable) less(i, j int) bool {
	if t.ranks[i] != t.ranks[j] {
		return t.ranks[i] < t.ranks[j]
	}
	return t.rankAt(i+t.radius) < t.rankAt(j+t.radius)
}

// Builds the suffix array of text: the start positions of all suffixes,
// ordered lexicographically. Runs in O(n log^2 n) with prefix doubling, each
// round sorting by rank pairs of radius k and re-ranking, so that after the
// round the ranks order suffixes by their first 2k bytes.
func BuildSuffixArray(text []byte) []int {
	n := len(text)
	sa := make([]int, n)
	ranks := make([]int, n)
	for i := range text {
		sa[i] = i
		// Byte value + 1, keeping rank 0 reserved for the virtual empty
		// suffix even when the text contains NUL bytes.
		ranks[i] = int(text[i]) + 1
	}

	next := make([]int, n)
	for k := 1; k < n; k <<= 1 {
		t := rankTable{ranks: ranks, radius: k}
		sort.Slice(sa, func(a, b int) bool { return t.less(sa[a], sa[b]) })

		// Re-rank starting at 1: tied pairs share a rank, strictly greater
		// pairs advance it.
		next[sa[0]] = 1
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if t.less(sa[i-1], sa[i]) {
				next[sa[i]]++
			}
		}
		copy(ranks, next)

		// All ranks distinct, further rounds cannot change the order.
		if ranks[sa[n-1]] == n {
			break
		}
	}
	return sa
}
