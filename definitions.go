package combopt

import "sort"

// Parse priorities. When a composite offers a token to its children, higher
// priority parsers get the first look. Options outrank positional arguments
// so that flags interleaved with positionals are claimed by the options
// rather than swallowed as argument values.
const (
	PriorityDefault  = 0
	PriorityArgument = 5
	PriorityOption   = 10
)

// State is an opaque accumulation of what a parser has consumed so far.
// States are values: folding a Step into a new Context never mutates the
// previous state, so a driver is free to retry or discard steps.
type State interface{}

// Context is the input to a single parse step: the remaining token buffer,
// the parser's accumulated state and the options-terminated latch which is
// set once a bare "--" has been consumed.
type Context struct {
	Buffer            []string
	State             State
	OptionsTerminated bool
}

// Step is the outcome of offering a Context to a parser.
//
// On success, Next carries the advanced context and Consumed lists the
// tokens claimed in this step. A successful step may consume nothing, which
// signals "nothing for me here, but not an error".
//
// On failure, Count reports how many tokens the parser consumed before
// failing. A Count of zero means the parser rejected the input outright;
// a positive Count means it was mid-construct (for example an option that
// matched but found no value), which composites treat as fatal rather than
// trying a sibling.
type Step struct {
	Success  bool
	Next     Context
	Consumed []string
	Count    int
	Err      error
}

// StepSuccess returns a successful Step advancing to next.
func StepSuccess(next Context, consumed ...string) Step {
	return Step{Success: true, Next: next, Consumed: consumed}
}

// StepFailure returns a failed Step that consumed count tokens before
// producing err.
func StepFailure(count int, err error) Step {
	return Step{Count: count, Err: err}
}

// Parser is the combinator contract. Implementations are immutable after
// construction and safe for concurrent use; all per-parse bookkeeping lives
// in the State threaded through Parse.
//
// Results are type-erased. Use Run or Get for typed access at the edges.
type Parser interface {
	// Priority orders children within a composite. Composites report the
	// maximum of their children.
	Priority() int
	// Initial returns the state of a parser that has consumed nothing.
	Initial() State
	// Parse offers the context's buffer to the parser for one step.
	Parse(ctx Context) Step
	// Complete folds the accumulated state into a final value once the
	// driver has exhausted the input.
	Complete(state State) (interface{}, error)
	// Usage describes the parser's grammar for rendering and reflection.
	Usage() []UsageTerm
}

// childLister is implemented by composites so tree walkers (completion,
// duplicate scanning helpers) can reach nested parsers.
type childLister interface {
	children() []Parser
}

// completer is implemented by parsers that can offer completion candidates
// for a partial token.
type completer interface {
	completions(prefix string) []string
}

func maxPriority(parsers []Parser) int {
	max := PriorityDefault
	for _, p := range parsers {
		if p.Priority() > max {
			max = p.Priority()
		}
	}
	return max
}

// priorityOrder returns child indices sorted by descending priority,
// declaration order within equal priorities.
func priorityOrder(parsers []Parser) []int {
	order := make([]int, len(parsers))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return parsers[order[a]].Priority() > parsers[order[b]].Priority()
	})
	return order
}

// failureTracker picks the most advanced failure among sibling steps:
// highest consumed-token count wins, declaration order breaks ties. The
// furthest failure is the most specific diagnosis of what went wrong.
type failureTracker struct {
	set   bool
	count int
	err   error
	order int
}

func (t *failureTracker) observe(count int, err error, order int) {
	if !t.set || count > t.count || (count == t.count && order < t.order) {
		t.set = true
		t.count = count
		t.err = err
		t.order = order
	}
}

func (t *failureTracker) step() Step {
	return StepFailure(t.count, t.err)
}
