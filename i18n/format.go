package i18n

import (
	"strconv"
	"strings"
)

// Quote renders a single value the way error messages quote it.
func Quote(value string) string {
	return strconv.Quote(value)
}

// QuoteList renders a list of values as a quoted, comma-separated run for
// inclusion in an error message, e.g. `"--verbose", "--version"`.
func QuoteList(values []string) string {
	if len(values) == 0 {
		return ""
	}

	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}
