package combopt

import (
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const defaultUsageWidth = 80

// FormatUsage renders a usage tree as a one-line synopsis:
// options as "--name METAVAR", optionals in brackets, repeats with an
// ellipsis, commands as "name (…)".
func FormatUsage(terms []UsageTerm) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if s := formatTerm(t); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func formatTerm(t UsageTerm) string {
	switch t.Kind {
	case UsageOption:
		label := strings.Join(t.Names, "|")
		if t.Metavar != "" {
			return label + " " + t.Metavar
		}
		return label
	case UsageArgument:
		return t.Metavar
	case UsageCommand:
		inner := FormatUsage(t.Terms)
		if inner == "" {
			return t.Name
		}
		return t.Name + " (" + inner + ")"
	case UsageOptional:
		inner := FormatUsage(t.Terms)
		if inner == "" {
			return ""
		}
		return "[" + inner + "]"
	case UsageMultiple:
		inner := FormatUsage(t.Terms)
		if inner == "" {
			return ""
		}
		return inner + "..."
	case UsageSequence:
		return FormatUsage(t.Terms)
	}
	return ""
}

// WrapUsage renders terms and greedily wraps them into lines no wider
// than width. A width of zero or less uses the terminal width when stdout
// is a terminal, 80 columns otherwise.
func WrapUsage(terms []UsageTerm, width int) []string {
	if width <= 0 {
		width = terminalWidth()
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, t := range terms {
		part := formatTerm(t)
		if part == "" {
			continue
		}
		// Width is measured in runes, not bytes, so accented metavars do
		// not wrap early.
		partWidth := utf8.RuneCountInString(part)
		if lineWidth > 0 && lineWidth+1+partWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(part)
		lineWidth += partWidth
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultUsageWidth
}
