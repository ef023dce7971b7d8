package combopt

import (
	"strings"

	"github.com/napalu/combopt/errs"
	"github.com/napalu/combopt/value"
)

type nameKind int

const (
	nameLong  nameKind = iota // --name
	nameShort                 // -n
	nameDOS                   // /name
	namePlus                  // +n
)

func classifyOptionName(name string) (nameKind, bool) {
	switch {
	case strings.HasPrefix(name, "--") && len(name) > 2:
		return nameLong, true
	case strings.HasPrefix(name, "/") && len(name) > 1:
		return nameDOS, true
	case strings.HasPrefix(name, "+") && len(name) == 2:
		return namePlus, true
	case strings.HasPrefix(name, "-") && len(name) == 2 && name != "--":
		return nameShort, true
	}
	return 0, false
}

// looksLikeOption reports whether a token is shaped like an option spelling
// rather than a plain value. Only the -/-- prefix pattern counts: a lone
// "-" is a value by convention (stdin), and "/"-prefixed tokens are not
// option-shaped even in grammars with DOS spellings, because they collide
// with absolute paths ("/etc/passwd"). A declared /name still matches its
// option parser first; only unknown /-tokens fall through to arguments.
func looksLikeOption(token string) bool {
	return len(token) > 1 && token[0] == '-'
}

// OptionErrors overrides the errors an option reports, for callers that
// want domain-specific diagnostics in place of the built-in ones.
type OptionErrors struct {
	Unknown       func(token string) error
	MissingValue  func(name string) error
	MultipleTimes func(name string) error
}

// OptionParser matches one option under any of its declared spellings. A
// flag (no value parser) completes to true when seen and false when not;
// a value option completes to its parsed value and reports a missing-option
// error when never seen.
type OptionParser struct {
	names  []string
	kinds  []nameKind
	value  value.Parser
	errors OptionErrors
}

// Option returns a boolean flag matching any of the given spellings.
// Supported spellings are GNU long ("--verbose"), short ("-v"),
// DOS ("/verbose") and plus ("+v") forms. Option panics when no name is
// given or a name fits none of the forms, since that is an authoring bug.
func Option(names ...string) *OptionParser {
	return newOption(nil, names)
}

// OptionValue returns an option that consumes a value parsed by v, either
// attached ("--port=8080", "/port:8080") or as the following token.
func OptionValue(v value.Parser, names ...string) *OptionParser {
	return newOption(v, names)
}

func newOption(v value.Parser, names []string) *OptionParser {
	if len(names) == 0 {
		panic(errs.ErrNoOptionNames)
	}
	kinds := make([]nameKind, len(names))
	for i, name := range names {
		kind, ok := classifyOptionName(name)
		if !ok {
			panic(errs.ErrInvalidOptionName.WithArgs(name))
		}
		kinds[i] = kind
	}
	return &OptionParser{names: names, kinds: kinds, value: v}
}

// WithErrors overrides the option's diagnostics and returns the receiver.
func (o *OptionParser) WithErrors(e OptionErrors) *OptionParser {
	o.errors = e
	return o
}

type optionState struct {
	seen  bool
	value interface{}
}

func (o *OptionParser) Priority() int { return PriorityOption }

func (o *OptionParser) Initial() State { return optionState{} }

func (o *OptionParser) Parse(ctx Context) Step {
	st, _ := ctx.State.(optionState)
	if len(ctx.Buffer) == 0 {
		return StepFailure(0, errs.ErrEndOfInput.WithArgs(o.label()))
	}
	token := ctx.Buffer[0]

	// A bare "--" ends option parsing for the rest of the line. The latch
	// rides on the context so every parser sharing the buffer sees it.
	if !ctx.OptionsTerminated && token == "--" {
		next := Context{Buffer: ctx.Buffer[1:], State: st, OptionsTerminated: true}
		return StepSuccess(next, token)
	}
	if ctx.OptionsTerminated {
		return StepFailure(0, errs.ErrNoMatch.WithArgs(o.label(), token))
	}

	for i, name := range o.names {
		if token == name {
			return o.matchExact(ctx, st, name)
		}
		if o.value != nil {
			if raw, ok := o.attachedValue(i, token); ok {
				return o.matchAttached(ctx, st, name, raw)
			}
		} else if o.kinds[i] == nameShort && isBundle(token) && token[1] == name[1] {
			return o.matchBundled(ctx, st, name, token)
		}
	}

	if o.value == nil {
		// A flag spelled with an attached value is a hard error, not a
		// near-miss for some other option.
		for i, name := range o.names {
			if sep := attachSeparator(o.kinds[i]); sep != 0 && strings.HasPrefix(token, name+string(sep)) {
				return StepFailure(1, errs.ErrOptionNoValue.WithArgs(name))
			}
		}
	}

	if looksLikeOption(token) {
		return StepFailure(0, o.unknownError(token))
	}
	return StepFailure(0, errs.ErrNoMatch.WithArgs(o.label(), token))
}

// isBundle reports whether token is a run of bundled short flags ("-abc").
func isBundle(token string) bool {
	return len(token) > 2 && token[0] == '-' && token[1] != '-' && !strings.ContainsRune(token, '=')
}

func attachSeparator(kind nameKind) byte {
	switch kind {
	case nameLong:
		return '='
	case nameDOS:
		return ':'
	}
	return 0
}

func (o *OptionParser) attachedValue(i int, token string) (string, bool) {
	sep := attachSeparator(o.kinds[i])
	if sep == 0 {
		return "", false
	}
	name := o.names[i]
	if strings.HasPrefix(token, name+string(sep)) {
		return token[len(name)+1:], true
	}
	return "", false
}

func (o *OptionParser) matchExact(ctx Context, st optionState, name string) Step {
	if st.seen {
		return StepFailure(1, o.multipleError(name))
	}
	if o.value == nil {
		next := Context{
			Buffer:            ctx.Buffer[1:],
			State:             optionState{seen: true, value: true},
			OptionsTerminated: ctx.OptionsTerminated,
		}
		return StepSuccess(next, name)
	}
	if len(ctx.Buffer) < 2 {
		return StepFailure(1, o.missingValueError(name))
	}
	raw := ctx.Buffer[1]
	v, err := o.value.Parse(raw)
	if err != nil {
		return StepFailure(1, errs.ErrInvalidValue.WithArgs(raw, o.label()).Wrap(err))
	}
	next := Context{
		Buffer:            ctx.Buffer[2:],
		State:             optionState{seen: true, value: v},
		OptionsTerminated: ctx.OptionsTerminated,
	}
	return StepSuccess(next, name, raw)
}

func (o *OptionParser) matchAttached(ctx Context, st optionState, name, raw string) Step {
	if st.seen {
		return StepFailure(1, o.multipleError(name))
	}
	v, err := o.value.Parse(raw)
	if err != nil {
		return StepFailure(1, errs.ErrInvalidValue.WithArgs(raw, o.label()).Wrap(err))
	}
	next := Context{
		Buffer:            ctx.Buffer[1:],
		State:             optionState{seen: true, value: v},
		OptionsTerminated: ctx.OptionsTerminated,
	}
	return StepSuccess(next, ctx.Buffer[0])
}

// matchBundled peels one short flag off a bundle: "-abc" becomes "-bc" at
// the head of the buffer. The rewritten token counts as progress even
// though the buffer does not shrink.
func (o *OptionParser) matchBundled(ctx Context, st optionState, name, token string) Step {
	if st.seen {
		return StepFailure(1, o.multipleError(name))
	}
	rest := "-" + token[2:]
	buffer := make([]string, 0, len(ctx.Buffer))
	buffer = append(buffer, rest)
	buffer = append(buffer, ctx.Buffer[1:]...)
	next := Context{
		Buffer:            buffer,
		State:             optionState{seen: true, value: true},
		OptionsTerminated: ctx.OptionsTerminated,
	}
	return StepSuccess(next, name)
}

func (o *OptionParser) Complete(state State) (interface{}, error) {
	st, _ := state.(optionState)
	if st.seen {
		return st.value, nil
	}
	if o.value == nil {
		return false, nil
	}
	return nil, errs.ErrMissingOption.WithArgs(o.label())
}

func (o *OptionParser) Usage() []UsageTerm {
	term := UsageTerm{Kind: UsageOption, Names: o.names}
	if o.value != nil {
		term.Metavar = o.value.Metavar()
	}
	return []UsageTerm{term}
}

func (o *OptionParser) completions(prefix string) []string {
	if o.value != nil {
		for i, name := range o.names {
			sep := attachSeparator(o.kinds[i])
			if sep == 0 || !strings.HasPrefix(prefix, name+string(sep)) {
				continue
			}
			var out []string
			if s, ok := o.value.(value.Suggester); ok {
				for _, v := range s.Suggest(prefix[len(name)+1:]) {
					out = append(out, name+string(sep)+v)
				}
			}
			return out
		}
	}
	var out []string
	for _, name := range o.names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

func (o *OptionParser) label() string {
	return strings.Join(o.names, "/")
}

func (o *OptionParser) unknownError(token string) error {
	if o.errors.Unknown != nil {
		return o.errors.Unknown(token)
	}
	return errs.ErrUnknownOption.WithArgs(token)
}

func (o *OptionParser) missingValueError(name string) error {
	if o.errors.MissingValue != nil {
		return o.errors.MissingValue(name)
	}
	return errs.ErrOptionRequiresValue.WithArgs(name)
}

func (o *OptionParser) multipleError(name string) error {
	if o.errors.MultipleTimes != nil {
		return o.errors.MultipleTimes(name)
	}
	return errs.ErrOptionMultipleTimes.WithArgs(name)
}
