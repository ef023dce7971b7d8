package combopt

import (
	"github.com/napalu/combopt/errs"
	"github.com/napalu/combopt/value"
)

// ArgumentParser matches a single positional argument parsed by a value
// parser. Tokens shaped like options are rejected until option parsing has
// been terminated by "--", so interleaved flags reach their option parsers
// instead of being swallowed positionally.
type ArgumentParser struct {
	value value.Parser
}

// Argument returns a parser for one positional argument.
func Argument(v value.Parser) *ArgumentParser {
	return &ArgumentParser{value: v}
}

type argumentState struct {
	seen  bool
	value interface{}
}

func (a *ArgumentParser) Priority() int { return PriorityArgument }

func (a *ArgumentParser) Initial() State { return argumentState{} }

func (a *ArgumentParser) Parse(ctx Context) Step {
	st, _ := ctx.State.(argumentState)
	if len(ctx.Buffer) == 0 {
		return StepFailure(0, errs.ErrEndOfInput.WithArgs(a.value.Metavar()))
	}
	token := ctx.Buffer[0]
	if st.seen {
		return StepFailure(0, errs.ErrUnexpectedInput.WithArgs(token))
	}
	if !ctx.OptionsTerminated && looksLikeOption(token) {
		return StepFailure(0, errs.ErrExpectedArgument.WithArgs(token))
	}
	v, err := a.value.Parse(token)
	if err != nil {
		return StepFailure(1, errs.ErrInvalidValue.WithArgs(token, a.value.Metavar()).Wrap(err))
	}
	next := Context{
		Buffer:            ctx.Buffer[1:],
		State:             argumentState{seen: true, value: v},
		OptionsTerminated: ctx.OptionsTerminated,
	}
	return StepSuccess(next, token)
}

func (a *ArgumentParser) Complete(state State) (interface{}, error) {
	st, _ := state.(argumentState)
	if st.seen {
		return st.value, nil
	}
	return nil, errs.ErrMissingArgument.WithArgs(a.value.Metavar())
}

func (a *ArgumentParser) Usage() []UsageTerm {
	return []UsageTerm{{Kind: UsageArgument, Metavar: a.value.Metavar()}}
}

func (a *ArgumentParser) completions(prefix string) []string {
	if s, ok := a.value.(value.Suggester); ok {
		return s.Suggest(prefix)
	}
	return nil
}
