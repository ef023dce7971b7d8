// Package suggest ranks candidate spellings by edit distance for
// "did you mean" error enrichment and completion hints.
package suggest

import (
	"sort"
	"strings"
)

// Options bounds a FindSimilar search. Zero-valued fields disable the
// corresponding bound.
type Options struct {
	// MaxDistance is an absolute edit distance ceiling.
	MaxDistance int
	// MaxDistanceRatio rejects candidates whose distance exceeds
	// ratio * max(len(input), 1), keeping suggestions proportionate for
	// very short queries.
	MaxDistanceRatio float64
	// MaxSuggestions caps the result list.
	MaxSuggestions int
	// CaseInsensitive compares case-folded strings. Results preserve the
	// original candidate casing.
	CaseInsensitive bool
}

// DefaultOptions is the bound set used for error enrichment.
var DefaultOptions = Options{
	MaxDistance:      3,
	MaxDistanceRatio: 0.5,
	MaxSuggestions:   3,
}

// Levenshtein computes the classic single-character edit distance between
// a and b (insert, delete and substitute all cost 1). It operates on runes
// so the zero and symmetry properties hold for any Unicode input.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// The shorter string indexes the rows, keeping the two-row window small.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	previous := make([]int, len(ra)+1)
	current := make([]int, len(ra)+1)
	for i := range previous {
		previous[i] = i
	}

	for i := 1; i <= len(rb); i++ {
		current[0] = i
		for j := 1; j <= len(ra); j++ {
			cost := 0
			if ra[j-1] != rb[i-1] {
				cost = 1
			}
			current[j] = minThree(
				current[j-1]+1,       // insertion
				previous[j]+1,        // deletion
				previous[j-1]+cost,   // substitution
			)
		}
		previous, current = current, previous
	}

	return previous[len(ra)]
}

type match struct {
	value    string
	distance int
	lenDiff  int
	order    int
}

// FindSimilar ranks candidates by edit distance to input. An exact match
// short-circuits the search and is returned alone. Survivors are ordered by
// distance, then by absolute length difference from the input, then by
// candidate order.
func FindSimilar(input string, candidates []string, opts Options) []string {
	cmp := input
	if opts.CaseInsensitive {
		cmp = strings.ToLower(input)
	}
	inputLen := len([]rune(input))

	var matches []match
	for i, candidate := range candidates {
		c := candidate
		if opts.CaseInsensitive {
			c = strings.ToLower(candidate)
		}

		if c == cmp {
			return []string{candidate}
		}

		distance := Levenshtein(cmp, c)
		if opts.MaxDistance > 0 && distance > opts.MaxDistance {
			continue
		}
		if opts.MaxDistanceRatio > 0 {
			base := inputLen
			if base < 1 {
				base = 1
			}
			if float64(distance) > opts.MaxDistanceRatio*float64(base) {
				continue
			}
		}

		matches = append(matches, match{
			value:    candidate,
			distance: distance,
			lenDiff:  abs(len([]rune(candidate)) - inputLen),
			order:    i,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		if matches[i].lenDiff != matches[j].lenDiff {
			return matches[i].lenDiff < matches[j].lenDiff
		}
		return matches[i].order < matches[j].order
	})

	limit := len(matches)
	if opts.MaxSuggestions > 0 && opts.MaxSuggestions < limit {
		limit = opts.MaxSuggestions
	}

	results := make([]string, 0, limit)
	for _, m := range matches[:limit] {
		results = append(results, m.value)
	}
	return results
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minThree(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
