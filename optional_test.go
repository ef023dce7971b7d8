package combopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/combopt/errs"
	"github.com/napalu/combopt/value"
)

func TestOptional_AbsentCompletesToNil(t *testing.T) {
	p := Object(
		WithField("port", Optional(OptionValue(value.Int(), "-p"))),
		WithField("file", Argument(value.String())),
	)
	result, err := Parse(p, []string{"in.txt"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"port": nil, "file": "in.txt"}, result)
}

func TestOptional_PresentCompletesToInnerValue(t *testing.T) {
	p := Optional(OptionValue(value.Int(), "-p"))
	result, err := Parse(p, []string{"-p", "8080"})
	require.NoError(t, err)
	assert.Equal(t, 8080, result)
}

func TestOptional_StaysRetryableAfterRejection(t *testing.T) {
	p := Object(
		WithField("verbose", Optional(Option("-v"))),
		WithField("file", Argument(value.String())),
	)
	result, err := Parse(p, []string{"in.txt", "-v"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"verbose": true, "file": "in.txt"},
		result, "rejecting the first token must not retire the optional")
}

func TestOptional_MidConstructFailureStaysFatal(t *testing.T) {
	p := Optional(OptionValue(value.Int(), "-p"))
	step := p.Parse(Context{Buffer: []string{"-p", "abc"}, State: p.Initial()})
	require.False(t, step.Success)
	assert.Equal(t, 1, step.Count)
	assert.ErrorIs(t, step.Err, errs.ErrInvalidValue,
		"a bad value is an error even when the option is optional")
}

func TestMultiple_AccumulatesOccurrences(t *testing.T) {
	p := Multiple(OptionValue(value.String(), "-t"))
	result, err := Parse(p, []string{"-t", "a", "-t", "b", "-t", "c"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b", "c"}, result)
}

func TestMultiple_ZeroOccurrencesCompleteEmpty(t *testing.T) {
	p := Multiple(OptionValue(value.String(), "-t"))
	result, err := Parse(p, nil)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, result)
}

func TestMultiple_MinimumEnforcedAtCompletion(t *testing.T) {
	p := Multiple(OptionValue(value.String(), "-t"), WithMinimum(2))
	_, err := Parse(p, []string{"-t", "a"})
	assert.ErrorIs(t, err, errs.ErrTooFewOccurrences)
}

func TestMultiple_RepeatedArguments(t *testing.T) {
	p := Object(
		WithField("verbose", Optional(Option("-v"))),
		WithField("files", Multiple(Argument(value.String()))),
	)
	result, err := Parse(p, []string{"a.txt", "-v", "b.txt"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"verbose": true,
		"files":   []interface{}{"a.txt", "b.txt"},
	}, result)
}
