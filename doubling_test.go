package suffixindex

import (
	"bytes"
	"math/rand"
	"slices"
	"sort"
	"testing"
)

func naiveSuffixArray(text []byte) []int {
	sa := make([]int, len(text))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool {
		return bytes.Compare(text[sa[a]:], text[sa[b]:]) < 0
	})
	return sa
}

func checkSuffixArray(t *testing.T, text []byte, sa []int) {
	t.Helper()
	if len(sa) != len(text) {
		t.Fatalf("wrong length: got %d, want %d", len(sa), len(text))
	}
	seen := make([]bool, len(text))
	for _, p := range sa {
		if p < 0 || p >= len(text) {
			t.Fatalf("position out of range: %d", p)
		}
		if seen[p] {
			t.Fatalf("duplicate position: %d", p)
		}
		seen[p] = true
	}
	for idx := 1; idx < len(sa); idx++ {
		if bytes.Compare(text[sa[idx-1]:], text[sa[idx]:]) >= 0 {
			t.Fatalf("suffixes out of order at %d: %q >= %q", idx, text[sa[idx-1]:], text[sa[idx]:])
		}
	}
}

func TestBuildSuffixArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"gatagaca", "GATAGACA", []int{7, 5, 3, 1, 6, 4, 0, 2}},
		{"empty", "", []int{}},
		{"single", "z", []int{0}},
		{"all equal", "AAAA", []int{3, 2, 1, 0}},
		{"banana", "banana", []int{5, 3, 1, 0, 4, 2}},
		{"two runs", "abab", []int{2, 0, 3, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildSuffixArray([]byte(tc.text))
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
			checkSuffixArray(t, []byte(tc.text), got)
		})
	}
}

func TestBuildSuffixArrayAgainstNaive(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	alphabets := []int{1, 2, 4, 26, 256}
	for _, a := range alphabets {
		for size := 0; size <= 64; size++ {
			text := make([]byte, size)
			for i := range text {
				text[i] = byte(r.Intn(a))
			}
			got := BuildSuffixArray(text)
			want := naiveSuffixArray(text)
			if !slices.Equal(got, want) {
				t.Fatalf("alphabet %d size %d: got %v, want %v for %q", a, size, got, want, text)
			}
		}
	}
}

func TestBuildSuffixArrayDeterministic(t *testing.T) {
	text := []byte("GATAGACA")
	first := BuildSuffixArray(text)
	second := BuildSuffixArray(text)
	if !slices.Equal(first, second) {
		t.Errorf("two builds disagree: %v vs %v", first, second)
	}
}

func FuzzBuildSuffixArray(f *testing.F) {
	f.Add([]byte("GATAGACA"))
	f.Add([]byte("AAAA"))
	f.Add([]byte("a\x00a\xffb"))

	f.Fuzz(func(t *testing.T, text []byte) {
		if len(text) > 1000 {
			return
		}
		got := BuildSuffixArray(text)
		checkSuffixArray(t, text, got)
		if want := naiveSuffixArray(text); !slices.Equal(got, want) {
			t.Errorf("disagrees with naive sort: got %v, want %v", got, want)
		}
	})
}
