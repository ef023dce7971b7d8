package combopt

// GroupParser attaches a documentation label to a parser. Parsing, state
// and completion pass straight through to the wrapped parser; the label
// surfaces in mutual-exclusion diagnostics and help rendering.
type GroupParser struct {
	label string
	inner Parser
}

// Group wraps p under a human-readable label.
func Group(label string, p Parser) *GroupParser {
	return &GroupParser{label: label, inner: p}
}

// Label returns the group's documentation label.
func (g *GroupParser) Label() string { return g.label }

func (g *GroupParser) Priority() int { return g.inner.Priority() }

func (g *GroupParser) Initial() State { return g.inner.Initial() }

func (g *GroupParser) Parse(ctx Context) Step { return g.inner.Parse(ctx) }

func (g *GroupParser) Complete(state State) (interface{}, error) {
	return g.inner.Complete(state)
}

func (g *GroupParser) Usage() []UsageTerm { return g.inner.Usage() }

func (g *GroupParser) children() []Parser { return []Parser{g.inner} }

func (g *GroupParser) completions(prefix string) []string {
	return childCompletions(g.inner, prefix)
}
