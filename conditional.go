package combopt

import (
	"fmt"

	"github.com/napalu/combopt/errs"
)

// ConfigureConditionalFunc configures a ConditionalParser at construction.
type ConfigureConditionalFunc func(c *ConditionalParser)

// WithBranch maps a discriminator value to the parser used when that value
// is seen. Registering the same value twice panics.
func WithBranch(when string, p Parser) ConfigureConditionalFunc {
	return func(c *ConditionalParser) {
		for _, b := range c.branches {
			if b.when == when {
				panic(errs.ErrDuplicateBranch.WithArgs(when))
			}
		}
		c.branches = append(c.branches, conditionalBranch{when: when, parser: p})
	}
}

// WithDefaultBranch names the branch assumed while the discriminator has
// not been seen yet, letting branch options appear before the
// discriminator on the command line.
func WithDefaultBranch(when string) ConfigureConditionalFunc {
	return func(c *ConditionalParser) {
		c.defaultBranch = when
		c.hasDefault = true
	}
}

type conditionalBranch struct {
	when   string
	parser Parser
}

// ConditionalParser parses a discriminator and then the branch grammar its
// value selects, completing to a two-element slice of discriminator value
// and branch value. This is the subcommand shape: a command argument
// followed by the command's own options.
type ConditionalParser struct {
	disc          Parser
	branches      []conditionalBranch
	defaultBranch string
	hasDefault    bool
}

// Conditional returns a parser dispatching on the value of disc. At least
// one branch is required; a WithDefaultBranch naming an unregistered
// branch panics.
func Conditional(disc Parser, configs ...ConfigureConditionalFunc) *ConditionalParser {
	c := &ConditionalParser{disc: disc}
	for _, cfg := range configs {
		cfg(c)
	}
	if len(c.branches) == 0 {
		panic(errs.ErrNoBranches)
	}
	if c.hasDefault && c.branchIndex(c.defaultBranch) < 0 {
		panic(errs.ErrUnknownDefaultBranch.WithArgs(c.defaultBranch))
	}
	return c
}

func (c *ConditionalParser) branchIndex(when string) int {
	for i, b := range c.branches {
		if b.when == when {
			return i
		}
	}
	return -1
}

type conditionalState struct {
	disc             State
	discSeen         bool
	discValue        interface{}
	chosen           int
	branch           State
	branchProgressed bool
}

func (c *ConditionalParser) Priority() int { return c.disc.Priority() }

func (c *ConditionalParser) Initial() State {
	return conditionalState{disc: c.disc.Initial(), chosen: -1}
}

func (c *ConditionalParser) Parse(ctx Context) Step {
	st, ok := ctx.State.(conditionalState)
	if !ok {
		st = c.Initial().(conditionalState)
	}
	if len(ctx.Buffer) == 0 {
		return StepSuccess(ctx)
	}
	if st.discSeen {
		return c.parseBranch(ctx, st)
	}

	discStep := c.disc.Parse(Context{
		Buffer:            ctx.Buffer,
		State:             st.disc,
		OptionsTerminated: ctx.OptionsTerminated,
	})
	if discStep.Success && len(discStep.Consumed) > 0 {
		return c.discriminate(st, discStep)
	}

	// The discriminator passed on this token. With a default branch the
	// branch grammar may run ahead of discrimination.
	if c.hasDefault {
		idx := c.branchIndex(c.defaultBranch)
		branchState := st.branch
		if !st.branchProgressed {
			branchState = c.branches[idx].parser.Initial()
		}
		branchStep := c.branches[idx].parser.Parse(Context{
			Buffer:            ctx.Buffer,
			State:             branchState,
			OptionsTerminated: ctx.OptionsTerminated,
		})
		if branchStep.Success && len(branchStep.Consumed) > 0 {
			st.branch = branchStep.Next.State
			st.branchProgressed = true
			return StepSuccess(Context{
				Buffer:            branchStep.Next.Buffer,
				State:             st,
				OptionsTerminated: branchStep.Next.OptionsTerminated,
			}, branchStep.Consumed...)
		}
		if !branchStep.Success && !discStep.Success {
			var worst failureTracker
			worst.observe(discStep.Count, discStep.Err, 0)
			worst.observe(branchStep.Count, branchStep.Err, 1)
			return worst.step()
		}
	}
	if discStep.Success {
		return StepSuccess(ctx)
	}
	return discStep
}

// discriminate folds a successful discriminator step and selects the
// branch its value names.
func (c *ConditionalParser) discriminate(st conditionalState, discStep Step) Step {
	v, err := c.disc.Complete(discStep.Next.State)
	if err != nil {
		return StepFailure(len(discStep.Consumed), err)
	}
	key := fmt.Sprint(v)
	idx := c.branchIndex(key)
	if idx < 0 {
		return StepFailure(len(discStep.Consumed),
			errs.ErrUnknownBranchValue.WithArgs(usageLabel(c.disc), key))
	}
	if st.branchProgressed && (!c.hasDefault || c.branchIndex(c.defaultBranch) != idx) {
		// Default-branch options were already consumed on the assumption
		// the default applies; a late discriminator picking a different
		// branch would retroactively invalidate them.
		return StepFailure(len(discStep.Consumed),
			errs.ErrLateDiscriminator.WithArgs(usageLabel(c.disc)))
	}
	st.disc = discStep.Next.State
	st.discSeen = true
	st.discValue = v
	st.chosen = idx
	if !st.branchProgressed {
		st.branch = c.branches[idx].parser.Initial()
	}
	return StepSuccess(Context{
		Buffer:            discStep.Next.Buffer,
		State:             st,
		OptionsTerminated: discStep.Next.OptionsTerminated,
	}, discStep.Consumed...)
}

func (c *ConditionalParser) parseBranch(ctx Context, st conditionalState) Step {
	branch := c.branches[st.chosen].parser
	step := branch.Parse(Context{
		Buffer:            ctx.Buffer,
		State:             st.branch,
		OptionsTerminated: ctx.OptionsTerminated,
	})
	if !step.Success {
		return step
	}
	if len(step.Consumed) == 0 {
		return StepSuccess(ctx)
	}
	st.branch = step.Next.State
	st.branchProgressed = true
	return StepSuccess(Context{
		Buffer:            step.Next.Buffer,
		State:             st,
		OptionsTerminated: step.Next.OptionsTerminated,
	}, step.Consumed...)
}

func (c *ConditionalParser) Complete(state State) (interface{}, error) {
	st, ok := state.(conditionalState)
	if !ok {
		st = c.Initial().(conditionalState)
	}
	if st.discSeen {
		bv, err := c.branches[st.chosen].parser.Complete(st.branch)
		if err != nil {
			return nil, err
		}
		return []interface{}{st.discValue, bv}, nil
	}
	if c.hasDefault {
		idx := c.branchIndex(c.defaultBranch)
		branchState := st.branch
		if !st.branchProgressed {
			branchState = c.branches[idx].parser.Initial()
		}
		bv, err := c.branches[idx].parser.Complete(branchState)
		if err != nil {
			return nil, err
		}
		return []interface{}{nil, bv}, nil
	}
	// No default: the discriminator may still complete on its own, for
	// example when it is optional or constant.
	v, err := c.disc.Complete(st.disc)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprint(v)
	idx := c.branchIndex(key)
	if idx < 0 {
		return nil, errs.ErrUnknownBranchValue.WithArgs(usageLabel(c.disc), key)
	}
	branch := c.branches[idx].parser
	bv, err := branch.Complete(branch.Initial())
	if err != nil {
		return nil, err
	}
	return []interface{}{v, bv}, nil
}

func (c *ConditionalParser) Usage() []UsageTerm {
	terms := append([]UsageTerm{}, c.disc.Usage()...)
	for _, b := range c.branches {
		terms = append(terms, UsageTerm{
			Kind:  UsageCommand,
			Name:  b.when,
			Terms: b.parser.Usage(),
		})
	}
	return terms
}

func (c *ConditionalParser) children() []Parser {
	parsers := make([]Parser, 0, len(c.branches)+1)
	parsers = append(parsers, c.disc)
	for _, b := range c.branches {
		parsers = append(parsers, b.parser)
	}
	return parsers
}

func (c *ConditionalParser) completions(prefix string) []string {
	var out []string
	for _, b := range c.branches {
		if len(prefix) <= len(b.when) && b.when[:len(prefix)] == prefix {
			out = append(out, b.when)
		}
	}
	return out
}
