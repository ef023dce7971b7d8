// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package combopt provides combinator-based command-line processing.
//
// Grammars are assembled from small parsers: Option and OptionValue match
// flags in GNU long ("--verbose"), short ("-v"), DOS ("/verbose") and
// plus ("+v") spellings, Argument matches positionals, and Constant
// injects fixed values. Combinators compose them: Object collects named
// fields, Tuple collects positional items, Or picks one alternative,
// Optional and Multiple relax arity, Conditional dispatches on a
// discriminator value, and LongestMatch resolves overlapping grammars by
// consumption length.
//
// A parser is a pure step function over an immutable state, so composing
// parsers never entangles them: each step offers the head of the token
// buffer to the grammar, the winning sub-parser folds its new state in,
// and Parse repeats until the buffer is empty before completing states
// into values:
//
//	p := combopt.Object(
//		combopt.WithField("verbose", combopt.Option("--verbose", "-v")),
//		combopt.WithField("port", combopt.OptionValue(value.Int(), "--port", "-p")),
//	)
//	result, err := combopt.Parse(p, []string{"-v", "-p", "8080"})
//
// Grammars that declare the same option spelling in two places panic at
// construction with a DuplicateOptionError, the same way net/http treats
// conflicting mux patterns. Parse failures are returned as translatable
// error values, enriched with "did you mean" suggestions when an unknown
// option is close to a declared one.
package combopt

import (
	"errors"
	"fmt"

	"github.com/google/shlex"

	"github.com/napalu/combopt/errs"
	"github.com/napalu/combopt/suggest"
)

// Parse runs p over args to completion: it steps the parser until the
// buffer is empty, then folds the final state into a value. A step that
// fails, or a step that succeeds without consuming anything while input
// remains, ends the parse with an error.
func Parse(p Parser, args []string) (interface{}, error) {
	ctx := Context{Buffer: args, State: p.Initial()}
	for len(ctx.Buffer) > 0 {
		step := p.Parse(ctx)
		if !step.Success {
			return nil, enrichError(p, step.Err, ctx.Buffer[0])
		}
		if len(step.Consumed) == 0 {
			return nil, enrichError(p, errs.ErrUnexpectedInput.WithArgs(ctx.Buffer[0]), ctx.Buffer[0])
		}
		ctx = step.Next
	}
	return p.Complete(ctx.State)
}

// ParseString splits a command line with shell quoting rules and parses
// the resulting tokens.
func ParseString(p Parser, commandLine string) (interface{}, error) {
	args, err := shlex.Split(commandLine)
	if err != nil {
		return nil, err
	}
	return Parse(p, args)
}

// Run parses args and asserts the result to T.
func Run[T any](p Parser, args []string) (T, error) {
	var zero T
	v, err := Parse(p, args)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, errs.ErrResultTypeMismatch.WithArgs(
			fmt.Sprintf("%T", v), fmt.Sprintf("%T", zero))
	}
	return t, nil
}

// Get extracts a typed field from an object result.
func Get[T any](fields map[string]interface{}, name string) (T, bool) {
	var zero T
	v, ok := fields[name]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// enrichError attaches "did you mean" suggestions to unknown-option
// failures. The offending token is the head of the buffer at the time of
// the failure.
func enrichError(p Parser, err error, token string) error {
	if errors.Is(err, errs.ErrUnknownOption) {
		return ErrorWithSuggestions(err, token, p.Usage(), SuggestOptions, suggest.DefaultOptions)
	}
	return err
}
