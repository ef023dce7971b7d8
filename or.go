package combopt

import "github.com/napalu/combopt/errs"

// OrParser tries alternatives in declaration order and commits to the
// first branch that consumes input. Once committed, the committed branch
// gets the first look at later tokens; a different branch succeeding after
// commitment is a mutual-exclusion error, so "-a -b" over Or(-a, -b) fails
// rather than silently dropping one flag.
type OrParser struct {
	branches []Parser
	decorate func(err error, buffer []string) error
}

// Or returns a parser matching exactly one of the given alternatives.
func Or(branches ...Parser) *OrParser {
	if len(branches) == 0 {
		panic(errs.ErrNoBranches)
	}
	return &OrParser{branches: branches}
}

// WithSuggestions installs a hook that may decorate the error reported
// when no branch matches, and returns the receiver.
func (o *OrParser) WithSuggestions(f func(err error, buffer []string) error) *OrParser {
	o.decorate = f
	return o
}

type orState struct {
	committed int
	state     State
}

// terminatorOnly reports whether a successful step did nothing but consume
// a bare "--" and set the options-terminated latch.
func terminatorOnly(ctx Context, step Step) bool {
	return !ctx.OptionsTerminated && step.Next.OptionsTerminated &&
		len(step.Consumed) == 1 && step.Consumed[0] == "--"
}

func (o *OrParser) Priority() int { return maxPriority(o.branches) }

func (o *OrParser) Initial() State { return orState{committed: -1} }

func (o *OrParser) Parse(ctx Context) Step {
	st, ok := ctx.State.(orState)
	if !ok {
		st = orState{committed: -1}
	}
	if len(ctx.Buffer) == 0 {
		return StepSuccess(ctx)
	}

	order := make([]int, 0, len(o.branches))
	if st.committed >= 0 {
		order = append(order, st.committed)
	}
	for i := range o.branches {
		if i != st.committed {
			order = append(order, i)
		}
	}

	var worst failureTracker
	for _, idx := range order {
		branch := o.branches[idx]
		childState := st.state
		if idx != st.committed {
			childState = branch.Initial()
		}
		step := branch.Parse(Context{
			Buffer:            ctx.Buffer,
			State:             childState,
			OptionsTerminated: ctx.OptionsTerminated,
		})
		if !step.Success {
			worst.observe(step.Count, step.Err, idx)
			continue
		}
		if len(step.Consumed) == 0 {
			continue
		}
		if terminatorOnly(ctx, step) {
			// A bare "--" only flips the options-terminated latch. That
			// is meta-syntax, not evidence the user chose this branch, so
			// fold the latch without committing.
			next := Context{
				Buffer:            step.Next.Buffer,
				State:             st,
				OptionsTerminated: true,
			}
			return StepSuccess(next, step.Consumed...)
		}
		if st.committed >= 0 && idx != st.committed {
			err := errs.ErrMutuallyExclusive.WithArgs(
				usageLabel(o.branches[st.committed]), usageLabel(branch))
			return StepFailure(len(step.Consumed), err)
		}
		next := Context{
			Buffer:            step.Next.Buffer,
			State:             orState{committed: idx, state: step.Next.State},
			OptionsTerminated: step.Next.OptionsTerminated,
		}
		return StepSuccess(next, step.Consumed...)
	}

	if !worst.set {
		worst.observe(0, errs.ErrUnexpectedInput.WithArgs(ctx.Buffer[0]), len(o.branches))
	}
	if o.decorate != nil {
		worst.err = o.decorate(worst.err, ctx.Buffer)
	}
	return worst.step()
}

func (o *OrParser) Complete(state State) (interface{}, error) {
	st, ok := state.(orState)
	if !ok {
		st = orState{committed: -1}
	}
	if st.committed >= 0 {
		return o.branches[st.committed].Complete(st.state)
	}
	// Nothing matched: an alternative may still complete from scratch,
	// for example Or(Option("-v"), Constant(0)).
	var firstErr error
	for _, b := range o.branches {
		v, err := b.Complete(b.Initial())
		if err == nil {
			return v, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func (o *OrParser) Usage() []UsageTerm {
	var terms []UsageTerm
	for _, b := range o.branches {
		terms = append(terms, b.Usage()...)
	}
	return terms
}

func (o *OrParser) children() []Parser { return o.branches }
