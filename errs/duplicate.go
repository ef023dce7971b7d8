package errs

import (
	"github.com/napalu/combopt/i18n"
)

// DuplicateOptionError reports an option spelling declared by more than
// one source inside a single combinator. It is raised as a panic while the
// parser tree is being constructed and is never observed during parsing.
type DuplicateOptionError struct {
	// OptionName is the conflicting spelling, including its prefix.
	OptionName string
	// Sources lists the declaring field names or positional indices in
	// declaration order.
	Sources []string
}

func (e *DuplicateOptionError) Error() string {
	return i18n.NewError(ErrDuplicateOptionKey).
		WithArgs(e.OptionName, i18n.QuoteList(e.Sources)).
		Error()
}
