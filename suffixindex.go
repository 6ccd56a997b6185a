package suffixindex

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8   = errors.New("suffixindex: invalid UTF-8 encoding in input text")
	ErrSeparatorByte = errors.New("suffixindex: input contains the reserved separator byte 0xFF")
)

const (
	// 0xFF is not a valid UTF-8 byte, so we use it as a separator between
	// texts. It's useful that it's also the maximum value of a byte.
	textSeparator = 0xFF
)

type SuffixIndexBuilder struct {
	text      []byte
	useLCP    bool
	foldCase  bool
	normalize bool
}

func NewBuilder(text []byte) *SuffixIndexBuilder {
	return &SuffixIndexBuilder{
		text:      text,
		useLCP:    true,
		foldCase:  false,
		normalize: false,
	}
}

// Skips the LCP structures construction, this makes binary search O(|P| * log(|T|)) instead of O(|P| + log(|T|)).
// Saves O(|T|) memory: doesn't use ~3*|T| extra memory.
// LongestRepeatedSubstring and LCPArray then recompute their table on every call.
// Trade-off: queries are slower, but you spend less memory.
func (b *SuffixIndexBuilder) SkipLCP() *SuffixIndexBuilder {
	b.useLCP = false
	return b
}

// Lowercases the text before indexing, making searches case insensitive.
// Patterns get the same treatment, and reported positions refer to the
// lowercased text. Requires valid UTF-8 input.
func (b *SuffixIndexBuilder) FoldCase() *SuffixIndexBuilder {
	b.foldCase = true
	return b
}

// Normalizes the text with NFC before indexing. Patterns get the same
// treatment, and reported positions refer to the normalized text. Requires
// valid UTF-8 input.
func (b *SuffixIndexBuilder) Normalize() *SuffixIndexBuilder {
	b.normalize = true
	return b
}

func (b *SuffixIndexBuilder) Build() (*SuffixIndex, error) {
	text := append([]byte(nil), b.text...)
	if b.foldCase || b.normalize {
		if !utf8.Valid(text) {
			return nil, ErrInvalidUTF8
		}
		text = applyTransforms(text, b.foldCase, b.normalize)
	}

	suffixArray := BuildSuffixArray(text)

	var plcp, lcp []int
	var lcpRMQ *rmq.RMQHybridNaive[int]
	if b.useLCP {
		plcp = BuildPLCPArray(suffixArray, text)
		lcp = lcpFromPLCP(suffixArray, plcp)
		if len(lcp) > 0 {
			lcpRMQ = rmq.NewRMQHybridNaive(lcp)
		}
	}

	return &SuffixIndex{
		text:        text,
		suffixArray: suffixArray,
		plcp:        plcp,
		lcp:         lcp,
		lcpRMQ:      lcpRMQ,
		foldCase:    b.foldCase,
		normalize:   b.normalize,
	}, nil
}

// An immutable suffix array index over a single text.
type SuffixIndex struct {
	text        []byte
	suffixArray []int
	plcp        []int
	lcp         []int
	lcpRMQ      *rmq.RMQHybridNaive[int]
	foldCase    bool
	normalize   bool
}

func applyTransforms(text []byte, foldCase, normalize bool) []byte {
	if foldCase {
		text = bytes.ToLower(text)
	}
	if normalize {
		text = norm.NFC.Bytes(text)
	}
	return text
}

// Number of bytes in the indexed text.
func (s *SuffixIndex) Len() int {
	return len(s.text)
}

// Returns a copy of the indexed text. This is the text after any builder
// transforms, so positions reported by Search refer to it directly.
func (s *SuffixIndex) Text() []byte {
	return append([]byte(nil), s.text...)
}

// Returns a copy of the suffix array: entry idx holds the start position of
// the idx-th smallest suffix.
func (s *SuffixIndex) SuffixArray() []int {
	return append([]int(nil), s.suffixArray...)
}

// Returns the idx-th smallest suffix as a view into the indexed text. The
// returned slice must not be modified.
func (s *SuffixIndex) Suffix(idx int) []byte {
	return s.text[s.suffixArray[idx]:]
}
