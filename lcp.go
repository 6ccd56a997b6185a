package suffixindex

import "bytes"

// Marks the position holding the lexicographically smallest suffix, which has
// no predecessor in sorted order. Check for it before using a phi entry as an
// index.
const noPredecessor = -1

// Builds the phi array: phi[p] is the start of the suffix immediately
// preceding the suffix at p in sorted order.
func buildPhi(suffixArray []int) []int {
	phi := make([]int, len(suffixArray))
	for idx, p := range suffixArray {
		if idx == 0 {
			phi[p] = noPredecessor
			continue
		}
		phi[p] = suffixArray[idx-1]
	}
	return phi
}

// Builds the permuted LCP array in O(n) time: plcp[p] is the length of the
// longest common prefix between the suffix at p and its predecessor in sorted
// order, 0 for the head of the order. Walking positions left to right lets
// the matched length carry over, since moving from p to p+1 strips one byte
// off both suffixes and shrinks the common prefix by at most one.
func BuildPLCPArray(suffixArray []int, text []byte) []int {
	phi := buildPhi(suffixArray)
	plcp := make([]int, len(suffixArray))
	l := 0
	for i := range plcp {
		if phi[i] == noPredecessor {
			plcp[i] = 0
			continue
		}
		j := phi[i]
		for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
			l++
		}
		plcp[i] = l
		if l > 0 {
			l--
		}
	}
	return plcp
}

// Builds the LCP array in sorted order: lcp[idx] is the length of the longest
// common prefix between the suffixes at suffixArray[idx] and
// suffixArray[idx+1]. Derived from the permuted array, so still O(n).
func BuildLCPArray(suffixArray []int, text []byte) []int {
	return lcpFromPLCP(suffixArray, BuildPLCPArray(suffixArray, text))
}

// The sorted-order LCP array is the permuted one scattered by suffix rank:
// the entry for rank idx is the permuted value of the suffix at idx, whose
// predecessor is the suffix at idx-1.
func lcpFromPLCP(suffixArray, plcp []int) []int {
	if len(suffixArray) == 0 {
		return nil
	}
	lcp := make([]int, len(suffixArray)-1)
	for idx := 1; idx < len(suffixArray); idx++ {
		lcp[idx-1] = plcp[suffixArray[idx]]
	}
	return lcp
}

// Start and length of the longest substring occurring at least twice, taken
// as the first strict maximum of the permuted LCP array in position order. A
// repeat of length L always shows up as some suffix sharing an L-byte prefix
// with its sorted-order predecessor.
func longestRepeat(plcp []int) (start, length int) {
	for i, l := range plcp {
		if l > length {
			start, length = i, l
		}
	}
	return start, length
}

// Returns the longest substring that occurs at least twice in the text,
// together with its length. When distinct repeats tie at the maximal length,
// the first witness in position order wins. An index built with SkipLCP
// recomputes the LCP table on every call.
func (s *SuffixIndex) LongestRepeatedSubstring() (string, int) {
	plcp := s.plcp
	if plcp == nil {
		plcp = BuildPLCPArray(s.suffixArray, s.text)
	}
	start, length := longestRepeat(plcp)
	return string(s.text[start : start+length]), length
}

// Returns the permuted LCP table: entry p is the length of the longest
// common prefix between the suffix starting at p and its predecessor in
// sorted suffix order, 0 for the lexicographically smallest suffix. An index
// built with SkipLCP recomputes the table on every call.
func (s *SuffixIndex) LCPArray() []int {
	if s.plcp == nil {
		return BuildPLCPArray(s.suffixArray, s.text)
	}
	return append([]int(nil), s.plcp...)
}

// Finds the longest substring occurring in both a and b, returning the
// substring and its length. Works on the suffix array of a + separator + b:
// the answer is the largest sorted-adjacent LCP between a suffix from a and
// a suffix from b. The separator byte 0xFF may not occur in either input;
// with it absent, no common prefix of a cross pair can run past the end of a.
func LongestCommonSubstring(a, b []byte) (string, int, error) {
	if bytes.IndexByte(a, textSeparator) >= 0 || bytes.IndexByte(b, textSeparator) >= 0 {
		return "", 0, ErrSeparatorByte
	}
	if len(a) == 0 || len(b) == 0 {
		return "", 0, nil
	}

	joined := make([]byte, 0, len(a)+1+len(b))
	joined = append(joined, a...)
	joined = append(joined, textSeparator)
	joined = append(joined, b...)

	sa := BuildSuffixArray(joined)
	lcp := BuildLCPArray(sa, joined)

	sep := len(a)
	start, best := 0, 0
	for idx := 1; idx < len(sa); idx++ {
		p, q := sa[idx-1], sa[idx]
		if p == sep || q == sep {
			continue
		}
		// Adjacent suffixes from the same side never witness a cross match.
		if (p < sep) == (q < sep) {
			continue
		}
		if l := lcp[idx-1]; l > best {
			best = l
			start = min(p, q)
		}
	}
	return string(joined[start : start+best]), best, nil
}
