package combopt

import "github.com/napalu/combopt/errs"

// LongestMatchParser resolves ambiguity between overlapping grammars by
// dry-running every candidate against the remaining buffer and committing
// to the one that consumes the most tokens. Ties go to declaration order.
// Once committed, later steps delegate to the winner alone.
type LongestMatchParser struct {
	candidates []Parser
}

// LongestMatch returns a parser that picks whichever candidate can consume
// the longest run of the remaining input.
func LongestMatch(candidates ...Parser) *LongestMatchParser {
	if len(candidates) == 0 {
		panic(errs.ErrNoBranches)
	}
	return &LongestMatchParser{candidates: candidates}
}

type longestState struct {
	winner int
	state  State
}

func (l *LongestMatchParser) Priority() int { return maxPriority(l.candidates) }

func (l *LongestMatchParser) Initial() State { return longestState{winner: -1} }

func (l *LongestMatchParser) Parse(ctx Context) Step {
	st, ok := ctx.State.(longestState)
	if !ok {
		st = longestState{winner: -1}
	}
	if len(ctx.Buffer) == 0 {
		return StepSuccess(ctx)
	}

	if st.winner >= 0 {
		step := l.candidates[st.winner].Parse(Context{
			Buffer:            ctx.Buffer,
			State:             st.state,
			OptionsTerminated: ctx.OptionsTerminated,
		})
		if !step.Success {
			return step
		}
		if len(step.Consumed) == 0 {
			return StepSuccess(ctx)
		}
		next := Context{
			Buffer:            step.Next.Buffer,
			State:             longestState{winner: st.winner, state: step.Next.State},
			OptionsTerminated: step.Next.OptionsTerminated,
		}
		return StepSuccess(next, step.Consumed...)
	}

	best := -1
	var bestRun runResult
	var worst failureTracker
	for i, cand := range l.candidates {
		run := driveToEnd(cand, Context{
			Buffer:            ctx.Buffer,
			State:             cand.Initial(),
			OptionsTerminated: ctx.OptionsTerminated,
		})
		// A failure after progress still scores with what was consumed up
		// to it; trailing input may belong to a sibling of this parser.
		if run.err != nil && len(run.consumed) == 0 {
			worst.observe(run.errCount, run.err, i)
			continue
		}
		if best < 0 || len(run.consumed) > len(bestRun.consumed) {
			best = i
			bestRun = run
		}
	}
	if best < 0 {
		return worst.step()
	}
	next := Context{
		Buffer:            bestRun.final.Buffer,
		State:             longestState{winner: best, state: bestRun.final.State},
		OptionsTerminated: bestRun.final.OptionsTerminated,
	}
	return StepSuccess(next, bestRun.consumed...)
}

type runResult struct {
	final    Context
	consumed []string
	err      error
	errCount int
}

// driveToEnd steps a parser until it stops consuming, fails, or empties
// the buffer. On failure the context reached before the failing step is
// reported alongside the error, so callers can score the partial run.
func driveToEnd(p Parser, ctx Context) runResult {
	var consumed []string
	for len(ctx.Buffer) > 0 {
		step := p.Parse(ctx)
		if !step.Success {
			return runResult{
				final:    ctx,
				consumed: consumed,
				err:      step.Err,
				errCount: len(consumed) + step.Count,
			}
		}
		if len(step.Consumed) == 0 {
			break
		}
		consumed = append(consumed, step.Consumed...)
		ctx = step.Next
	}
	return runResult{final: ctx, consumed: consumed}
}

func (l *LongestMatchParser) Complete(state State) (interface{}, error) {
	st, ok := state.(longestState)
	if !ok {
		st = longestState{winner: -1}
	}
	if st.winner >= 0 {
		return l.candidates[st.winner].Complete(st.state)
	}
	var firstErr error
	for _, cand := range l.candidates {
		v, err := cand.Complete(cand.Initial())
		if err == nil {
			return v, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func (l *LongestMatchParser) Usage() []UsageTerm {
	var terms []UsageTerm
	for _, cand := range l.candidates {
		terms = append(terms, cand.Usage()...)
	}
	return terms
}

func (l *LongestMatchParser) children() []Parser { return l.candidates }
