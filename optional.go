package combopt

// OptionalParser wraps a parser that may be absent. A rejection by the
// inner parser (a failure that consumed nothing) becomes a zero-consumption
// success, leaving the inner state untouched so the wrapped parser can
// still match on a later step. Failures that consumed tokens remain fatal:
// "--port" with a bad value is an error even when --port is optional.
type OptionalParser struct {
	inner Parser
}

// Optional wraps p so its absence is not an error. Completing an optional
// whose inner parser never made progress yields nil.
func Optional(p Parser) *OptionalParser {
	return &OptionalParser{inner: p}
}

type optionalState struct {
	inner      State
	progressed bool
}

func (o *OptionalParser) Priority() int { return o.inner.Priority() }

func (o *OptionalParser) Initial() State {
	return optionalState{inner: o.inner.Initial()}
}

func (o *OptionalParser) Parse(ctx Context) Step {
	st, ok := ctx.State.(optionalState)
	if !ok {
		st = o.Initial().(optionalState)
	}
	step := o.inner.Parse(Context{
		Buffer:            ctx.Buffer,
		State:             st.inner,
		OptionsTerminated: ctx.OptionsTerminated,
	})
	if step.Success {
		if len(step.Consumed) == 0 {
			return StepSuccess(ctx)
		}
		next := Context{
			Buffer:            step.Next.Buffer,
			State:             optionalState{inner: step.Next.State, progressed: true},
			OptionsTerminated: step.Next.OptionsTerminated,
		}
		return StepSuccess(next, step.Consumed...)
	}
	if step.Count == 0 {
		// Not for us this round; stay retryable.
		return StepSuccess(ctx)
	}
	return step
}

func (o *OptionalParser) Complete(state State) (interface{}, error) {
	st, ok := state.(optionalState)
	if !ok || !st.progressed {
		return nil, nil
	}
	return o.inner.Complete(st.inner)
}

func (o *OptionalParser) Usage() []UsageTerm {
	return []UsageTerm{{Kind: UsageOptional, Terms: o.inner.Usage()}}
}

func (o *OptionalParser) children() []Parser { return []Parser{o.inner} }

func (o *OptionalParser) completions(prefix string) []string {
	return childCompletions(o.inner, prefix)
}
