package errs

import (
	"errors"

	"github.com/napalu/combopt/i18n"
)

// SuggestedError decorates a base failure with a ranked "did you mean"
// candidate list. The decoration is additive: the base error is preserved
// and remains reachable through Unwrap.
type SuggestedError struct {
	base        error
	suggestions []string
}

// WithSuggestions attaches suggestions to base. An empty candidate list
// returns base unchanged.
func WithSuggestions(base error, suggestions []string) error {
	if len(suggestions) == 0 {
		return base
	}
	return &SuggestedError{base: base, suggestions: suggestions}
}

func (e *SuggestedError) Error() string {
	clause := i18n.NewError(ErrDidYouMeanKey).
		WithArgs(i18n.QuoteList(e.suggestions)).
		Error()
	return e.base.Error() + "; " + clause
}

// Suggestions returns the ranked candidate list.
func (e *SuggestedError) Suggestions() []string {
	return e.suggestions
}

func (e *SuggestedError) Unwrap() error {
	return e.base
}

// Suggestions extracts the candidate list from anywhere in err's chain,
// or nil when no suggestions were attached.
func Suggestions(err error) []string {
	var suggested *SuggestedError
	if errors.As(err, &suggested) {
		return suggested.Suggestions()
	}
	return nil
}
