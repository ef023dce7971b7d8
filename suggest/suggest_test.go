package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein_KnownDistances(t *testing.T) {
	tests := []struct {
		a, b     string
		distance int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"--verbose", "--verbos", 1},
		{"gopher", "gopher", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.distance, Levenshtein(tt.a, tt.b), "d(%q, %q)", tt.a, tt.b)
	}
}

func TestLevenshtein_SymmetryAndZero(t *testing.T) {
	pairs := [][2]string{
		{"option", "operation"},
		{"naïve", "naive"},
		{"héllo", "hello"},
		{"日本語", "日本"},
	}
	for _, p := range pairs {
		assert.Equal(t, Levenshtein(p[0], p[1]), Levenshtein(p[1], p[0]),
			"distance is symmetric for %q/%q", p[0], p[1])
		assert.Zero(t, Levenshtein(p[0], p[0]))
	}
}

func TestLevenshtein_CountsRunesNotBytes(t *testing.T) {
	assert.Equal(t, 1, Levenshtein("naïve", "naive"),
		"a multi-byte rune substitution costs one edit")
	assert.Equal(t, 1, Levenshtein("日本語", "日本"))
}

func TestFindSimilar_RanksClosestFirst(t *testing.T) {
	candidates := []string{"--version", "--verbose", "--quiet"}
	got := FindSimilar("--verbos", candidates, DefaultOptions)
	assert.NotEmpty(t, got)
	assert.Equal(t, "--verbose", got[0])
}

func TestFindSimilar_ExactMatchShortCircuits(t *testing.T) {
	candidates := []string{"--verbose", "--verbos"}
	got := FindSimilar("--verbos", candidates, DefaultOptions)
	assert.Equal(t, []string{"--verbos"}, got)
}

func TestFindSimilar_RespectsCeilings(t *testing.T) {
	candidates := []string{"--alpha", "--beta", "--gamma"}
	assert.Empty(t, FindSimilar("--zzzzzz", candidates, DefaultOptions))

	loose := Options{MaxDistance: 10, MaxSuggestions: 2}
	got := FindSimilar("--a", candidates, loose)
	assert.Len(t, got, 2, "MaxSuggestions caps the list")
}

func TestFindSimilar_RatioKeepsShortInputsStrict(t *testing.T) {
	got := FindSimilar("-v", []string{"-xyz"}, Options{MaxDistance: 3, MaxDistanceRatio: 0.5})
	assert.Empty(t, got, "3 edits against a 2-rune input exceeds the ratio")
}

func TestFindSimilar_CaseInsensitivePreservesCasing(t *testing.T) {
	opts := DefaultOptions
	opts.CaseInsensitive = true
	got := FindSimilar("--VERBOS", []string{"--verbose"}, opts)
	assert.Equal(t, []string{"--verbose"}, got)
}

func TestFindSimilar_TieBreaksOnLengthDifference(t *testing.T) {
	got := FindSimilar("abcd", []string{"abcdef", "abxy"}, Options{MaxDistance: 3, MaxSuggestions: 5})
	assert.Equal(t, []string{"abxy", "abcdef"}, got,
		"equal-distance candidates order by closeness in length")
}
