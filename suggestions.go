package combopt

import (
	"github.com/ef-ds/deque"

	"github.com/napalu/combopt/errs"
	"github.com/napalu/combopt/suggest"
)

// SuggestionKind selects which usage tree names feed a suggestion search.
type SuggestionKind int

const (
	// SuggestOptions draws candidates from option spellings.
	SuggestOptions SuggestionKind = 1 << iota
	// SuggestCommands draws candidates from command names.
	SuggestCommands

	// SuggestAll draws candidates from both.
	SuggestAll = SuggestOptions | SuggestCommands
)

// ErrorWithSuggestions enriches base with "did you mean" candidates drawn
// from the usage tree, ranked by edit distance to input. When nothing is
// close enough, base is returned unchanged.
func ErrorWithSuggestions(base error, input string, terms []UsageTerm, kind SuggestionKind, opts suggest.Options) error {
	var candidates []string
	if kind&SuggestOptions != 0 {
		candidates = append(candidates, OptionNames(terms)...)
	}
	if kind&SuggestCommands != 0 {
		candidates = append(candidates, CommandNames(terms)...)
	}
	return errs.WithSuggestions(base, suggest.FindSimilar(input, candidates, opts))
}

// Suggestions returns completion candidates for a partial token, walking
// the parser tree and collecting from every parser that can complete the
// prefix: option spellings, command names and value-level suggestions.
func Suggestions(p Parser, prefix string) []string {
	var out []string
	seen := map[string]bool{}
	q := deque.New()
	q.PushBack(p)
	for q.Len() > 0 {
		v, _ := q.PopFront()
		node := v.(Parser)
		if c, ok := node.(completer); ok {
			for _, s := range c.completions(prefix) {
				if !seen[s] {
					seen[s] = true
					out = append(out, s)
				}
			}
		}
		if lister, ok := node.(childLister); ok {
			for _, child := range lister.children() {
				q.PushBack(child)
			}
		}
	}
	return out
}

func childCompletions(p Parser, prefix string) []string {
	if c, ok := p.(completer); ok {
		return c.completions(prefix)
	}
	return nil
}
