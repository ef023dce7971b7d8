package combopt

import (
	"strconv"

	"github.com/napalu/combopt/errs"
)

// dupSource is one declaration site participating in a duplicate option
// scan: an object field, a tuple position, or a caller-defined label.
type dupSource struct {
	name  string
	terms []UsageTerm
}

func positionName(i int) string {
	return "#" + strconv.Itoa(i)
}

// checkDuplicateOptions panics with a *errs.DuplicateOptionError when an
// option spelling is declared by more than one source. The scan stays
// within one option namespace: spellings nested under commands belong to
// the command's own namespace and are checked when that subtree is built.
// A spelling repeated inside a single source (for example under Multiple)
// is that source's business and does not trip the scan.
func checkDuplicateOptions(sources []dupSource) {
	declaredBy := map[string][]string{}
	var order []string
	for _, src := range sources {
		for _, name := range optionNamesForNamespace(src.terms) {
			if len(declaredBy[name]) == 0 {
				order = append(order, name)
			}
			declaredBy[name] = append(declaredBy[name], src.name)
		}
	}
	for _, name := range order {
		if len(declaredBy[name]) > 1 {
			panic(&errs.DuplicateOptionError{
				OptionName: name,
				Sources:    declaredBy[name],
			})
		}
	}
}

// CheckDuplicateOptions verifies that the given parsers declare disjoint
// option spellings, panicking with a *errs.DuplicateOptionError otherwise.
// Object, Tuple and Concat run this scan on construction; it is exported
// for callers assembling composites of their own.
func CheckDuplicateOptions(parsers ...Parser) {
	sources := make([]dupSource, len(parsers))
	for i, p := range parsers {
		sources[i] = dupSource{name: positionName(i), terms: p.Usage()}
	}
	checkDuplicateOptions(sources)
}
