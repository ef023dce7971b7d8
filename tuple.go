package combopt

import "github.com/napalu/combopt/errs"

// ConfigureTupleFunc configures a TupleParser at construction.
type ConfigureTupleFunc func(t *TupleParser)

// WithTupleAllowDuplicates skips the construction-time duplicate option
// scan across the tuple's items.
func WithTupleAllowDuplicates() ConfigureTupleFunc {
	return func(t *TupleParser) {
		t.allowDuplicates = true
	}
}

// TupleParser parses a fixed sequence of items into a positional slice.
// Stepping works the same way as for objects: every item is offered the
// head token in priority order, so options belonging to later items may
// appear early. Positional items still bind in index order because equal
// priorities resolve by declaration order.
type TupleParser struct {
	items           []Parser
	allowDuplicates bool
}

// Tuple returns a parser producing one value per item, by position.
// Construction panics with a DuplicateOptionError when two items declare
// the same option spelling, unless WithTupleAllowDuplicates is given.
func Tuple(items []Parser, configs ...ConfigureTupleFunc) *TupleParser {
	t := &TupleParser{items: items}
	for _, c := range configs {
		c(t)
	}
	if !t.allowDuplicates {
		checkDuplicateOptions(t.duplicateSources())
	}
	return t
}

// Concat flattens several tuples into one, re-validating option
// uniqueness across the combined span.
func Concat(tuples ...*TupleParser) *TupleParser {
	var items []Parser
	for _, t := range tuples {
		items = append(items, t.items...)
	}
	return Tuple(items)
}

func (t *TupleParser) duplicateSources() []dupSource {
	sources := make([]dupSource, len(t.items))
	for i, item := range t.items {
		sources[i] = dupSource{name: positionName(i), terms: item.Usage()}
	}
	return sources
}

type tupleState []State

func (s tupleState) clone() tupleState {
	next := make(tupleState, len(s))
	copy(next, s)
	return next
}

func (t *TupleParser) Priority() int { return maxPriority(t.items) }

func (t *TupleParser) Initial() State {
	st := make(tupleState, len(t.items))
	for i, item := range t.items {
		st[i] = item.Initial()
	}
	return st
}

func (t *TupleParser) Parse(ctx Context) Step {
	st, ok := ctx.State.(tupleState)
	if !ok {
		st = t.Initial().(tupleState)
	}
	if len(ctx.Buffer) == 0 {
		return StepSuccess(ctx)
	}

	var worst failureTracker
	for _, idx := range priorityOrder(t.items) {
		step := t.items[idx].Parse(Context{
			Buffer:            ctx.Buffer,
			State:             st[idx],
			OptionsTerminated: ctx.OptionsTerminated,
		})
		if !step.Success {
			worst.observe(step.Count, step.Err, idx)
			continue
		}
		if len(step.Consumed) == 0 {
			continue
		}
		next := st.clone()
		next[idx] = step.Next.State
		return StepSuccess(Context{
			Buffer:            step.Next.Buffer,
			State:             next,
			OptionsTerminated: step.Next.OptionsTerminated,
		}, step.Consumed...)
	}

	if !worst.set {
		worst.observe(0, errs.ErrUnexpectedInput.WithArgs(ctx.Buffer[0]), len(t.items))
	}
	return worst.step()
}

func (t *TupleParser) Complete(state State) (interface{}, error) {
	st, ok := state.(tupleState)
	if !ok {
		st = t.Initial().(tupleState)
	}
	values := make([]interface{}, len(t.items))
	for i, item := range t.items {
		v, err := item.Complete(st[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (t *TupleParser) Usage() []UsageTerm {
	var terms []UsageTerm
	for _, item := range t.items {
		terms = append(terms, item.Usage()...)
	}
	return []UsageTerm{{Kind: UsageSequence, Terms: terms}}
}

func (t *TupleParser) children() []Parser { return t.items }
