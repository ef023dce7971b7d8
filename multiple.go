package combopt

import "github.com/napalu/combopt/errs"

// ConfigureMultipleFunc configures a MultipleParser at construction.
type ConfigureMultipleFunc func(m *MultipleParser)

// WithMinimum requires at least n occurrences at completion.
func WithMinimum(n int) ConfigureMultipleFunc {
	return func(m *MultipleParser) {
		m.min = n
	}
}

// MultipleParser collects repeated occurrences of its inner parser. When
// the active occurrence rejects a token, a fresh occurrence is tried, so
// "-t a -t b" accumulates instead of tripping the inner parser's reuse
// detection. Completion yields one value per occurrence, in input order.
type MultipleParser struct {
	inner Parser
	min   int
}

// Multiple wraps p so it may match any number of times. Without
// WithMinimum, zero occurrences complete to an empty slice.
func Multiple(p Parser, configs ...ConfigureMultipleFunc) *MultipleParser {
	m := &MultipleParser{inner: p}
	for _, c := range configs {
		c(m)
	}
	return m
}

type multipleState struct {
	done       []State
	active     State
	progressed bool
}

func (m *MultipleParser) Priority() int { return m.inner.Priority() }

func (m *MultipleParser) Initial() State {
	return multipleState{active: m.inner.Initial()}
}

func (m *MultipleParser) Parse(ctx Context) Step {
	st, ok := ctx.State.(multipleState)
	if !ok {
		st = m.Initial().(multipleState)
	}
	step := m.inner.Parse(Context{
		Buffer:            ctx.Buffer,
		State:             st.active,
		OptionsTerminated: ctx.OptionsTerminated,
	})
	if step.Success {
		if len(step.Consumed) == 0 {
			return StepSuccess(ctx)
		}
		next := Context{
			Buffer: step.Next.Buffer,
			State: multipleState{
				done:       st.done,
				active:     step.Next.State,
				progressed: true,
			},
			OptionsTerminated: step.Next.OptionsTerminated,
		}
		return StepSuccess(next, step.Consumed...)
	}
	if st.progressed {
		// The active occurrence is done with this token; see whether a
		// fresh occurrence wants it.
		fresh := m.inner.Parse(Context{
			Buffer:            ctx.Buffer,
			State:             m.inner.Initial(),
			OptionsTerminated: ctx.OptionsTerminated,
		})
		if fresh.Success && len(fresh.Consumed) > 0 {
			done := make([]State, 0, len(st.done)+1)
			done = append(done, st.done...)
			done = append(done, st.active)
			next := Context{
				Buffer: fresh.Next.Buffer,
				State: multipleState{
					done:       done,
					active:     fresh.Next.State,
					progressed: true,
				},
				OptionsTerminated: fresh.Next.OptionsTerminated,
			}
			return StepSuccess(next, fresh.Consumed...)
		}
	}
	return step
}

func (m *MultipleParser) Complete(state State) (interface{}, error) {
	st, ok := state.(multipleState)
	if !ok {
		st = m.Initial().(multipleState)
	}
	states := st.done
	if st.progressed {
		states = append(append([]State{}, st.done...), st.active)
	}
	values := make([]interface{}, 0, len(states))
	for _, s := range states {
		v, err := m.inner.Complete(s)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if len(values) < m.min {
		return nil, errs.ErrTooFewOccurrences.WithArgs(m.min, usageLabel(m.inner), len(values))
	}
	return values, nil
}

func (m *MultipleParser) Usage() []UsageTerm {
	return []UsageTerm{{Kind: UsageMultiple, Terms: m.inner.Usage()}}
}

func (m *MultipleParser) children() []Parser { return []Parser{m.inner} }

func (m *MultipleParser) completions(prefix string) []string {
	return childCompletions(m.inner, prefix)
}
