package suffixindex

import (
	"bytes"
	"sort"

	"github.com/viniciusth/rmq"
)

// Returns every position in the text where pattern occurs, ordered by the
// rank of the matching suffix (suffix-array order, not position order). The
// empty pattern matches at every position of a non-empty text. Patterns
// receive the same transforms the index was built with.
func (s *SuffixIndex) Search(pattern []byte) []int {
	l, r := s.boundaries(pattern)
	if l == -1 {
		return nil
	}
	positions := make([]int, 0, r-l+1)
	for idx := l; idx <= r; idx++ {
		positions = append(positions, s.suffixArray[idx])
	}
	return positions
}

// Returns the number of occurrences of pattern in the text, without
// materializing the positions.
func (s *SuffixIndex) Count(pattern []byte) int {
	l, r := s.boundaries(pattern)
	if l == -1 {
		return 0
	}
	return r - l + 1
}

func (s *SuffixIndex) boundaries(pattern []byte) (int, int) {
	if s.foldCase || s.normalize {
		pattern = applyTransforms(pattern, s.foldCase, s.normalize)
	}
	return findBoundaries(pattern, s.text, s.suffixArray, s.lcp, s.lcpRMQ)
}

// Returns the first and last suffix-array indexes whose suffixes start with
// pattern, or (-1, -1) when nothing matches. With the LCP structures present,
// probes reuse the longest pattern prefix matched so far (best bytes, held by
// the suffix at bestIdx) and an RMQ over the sorted-order LCP array settles
// most probes without touching the text.
func findBoundaries(pattern, text []byte, suffixArray, lcp []int, lcpRMQ *rmq.RMQHybridNaive[int]) (int, int) {
	bestIdx, best, n := -1, -1, len(suffixArray)

	expandBest := func(i int) bool {
		p := suffixArray[i]
		for best < len(pattern) && p+best < n && pattern[best] == text[p+best] {
			best++
		}
		bestIdx = i
		if best == len(pattern) {
			// pattern <= text[p:]
			return true
		} else if p+best == n {
			// pattern > text[p:]
			return false
		}
		return pattern[best] < text[p+best]
	}

	// find first index where pattern is a prefix
	l := sort.Search(n, func(i int) bool {
		if lcpRMQ != nil {
			if bestIdx == -1 {
				best = 0
				return expandBest(i)
			}
			lcpLen := lcp[lcpRMQ.Query(min(bestIdx, i), max(bestIdx, i)-1)]
			if lcpLen < best {
				// The suffix at i leaves the matched group before best
				// bytes, so its side of bestIdx decides the comparison.
				// If i < bestIdx, then you want to shorten to [i+1, r].
				return i > bestIdx
			}
			return expandBest(i)
		}

		// naive compare as we dont have lcp, find first index where pattern <= the suffix
		return bytes.Compare(pattern, text[suffixArray[i]:]) <= 0
	})

	// Check if the suffix at l has pattern as a prefix, otherwise we have no matches
	if l == n || (lcpRMQ != nil && best < len(pattern)) || (lcpRMQ == nil && !bytes.HasPrefix(text[suffixArray[l]:], pattern)) {
		return -1, -1
	}

	// last index where pattern is a prefix
	// we have T T T F F F, where pattern is a prefix now.
	// to use sort.Search we need F F F T T T, so just return the negation and find the first T => find first F, return that -1
	r := sort.Search(n-l, func(i int) bool {
		if lcpRMQ != nil {
			if i == 0 {
				return false // always a prefix here since best == |pattern|
			}
			lcpLen := lcp[lcpRMQ.Query(l, l+i-1)]
			return !(lcpLen >= len(pattern))
		}
		// Naive check if we don't have LCP, still apply the negation to find the first T (first F)
		return !bytes.HasPrefix(text[suffixArray[l+i]:], pattern)
	})

	return l, l + r - 1
}
