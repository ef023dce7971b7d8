package combopt

import (
	"strings"

	"github.com/ef-ds/deque"
)

// UsageKind discriminates the nodes of a usage tree.
type UsageKind int

const (
	// UsageOption is a named option, with Names and an optional Metavar.
	UsageOption UsageKind = iota
	// UsageArgument is a positional argument described by Metavar.
	UsageArgument
	// UsageCommand is a discriminated branch: Name holds the selecting
	// value and Terms the branch grammar. Commands open a new option
	// namespace.
	UsageCommand
	// UsageOptional wraps Terms that may be absent.
	UsageOptional
	// UsageMultiple wraps Terms that may repeat.
	UsageMultiple
	// UsageSequence wraps Terms consumed as a unit.
	UsageSequence
)

// UsageTerm is one node of a parser's usage tree.
type UsageTerm struct {
	Kind    UsageKind
	Names   []string
	Metavar string
	Name    string
	Terms   []UsageTerm
}

// OptionNames collects every option spelling reachable in the usage tree,
// including those nested under commands, deduplicated in discovery order.
func OptionNames(terms []UsageTerm) []string {
	return collectNames(terms, true)
}

// CommandNames collects every command name reachable in the usage tree,
// deduplicated in discovery order.
func CommandNames(terms []UsageTerm) []string {
	var names []string
	seen := map[string]bool{}
	walkUsage(terms, true, func(t UsageTerm) {
		if t.Kind == UsageCommand && !seen[t.Name] {
			seen[t.Name] = true
			names = append(names, t.Name)
		}
	})
	return names
}

// optionNamesForNamespace collects option spellings belonging to a single
// option namespace: nesting under commands is not descended into, since a
// command starts a namespace of its own.
func optionNamesForNamespace(terms []UsageTerm) []string {
	return collectNames(terms, false)
}

func collectNames(terms []UsageTerm, intoCommands bool) []string {
	var names []string
	seen := map[string]bool{}
	walkUsage(terms, intoCommands, func(t UsageTerm) {
		if t.Kind != UsageOption {
			return
		}
		for _, n := range t.Names {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	})
	return names
}

// walkUsage visits terms breadth-first.
func walkUsage(terms []UsageTerm, intoCommands bool, visit func(UsageTerm)) {
	q := deque.New()
	for _, t := range terms {
		q.PushBack(t)
	}
	for q.Len() > 0 {
		v, _ := q.PopFront()
		t := v.(UsageTerm)
		visit(t)
		if t.Kind == UsageCommand && !intoCommands {
			continue
		}
		for _, child := range t.Terms {
			q.PushBack(child)
		}
	}
}

type labeled interface {
	Label() string
}

// usageLabel derives a short human label for a parser, used in error
// messages that name the construct that failed. A group label wins over
// anything derived from the usage tree.
func usageLabel(p Parser) string {
	if l, ok := p.(labeled); ok && l.Label() != "" {
		return l.Label()
	}
	if label := firstLabel(p.Usage()); label != "" {
		return label
	}
	return "value"
}

func firstLabel(terms []UsageTerm) string {
	for _, t := range terms {
		switch t.Kind {
		case UsageOption:
			return strings.Join(t.Names, "/")
		case UsageArgument:
			return t.Metavar
		case UsageCommand:
			return t.Name
		default:
			if label := firstLabel(t.Terms); label != "" {
				return label
			}
		}
	}
	return ""
}
