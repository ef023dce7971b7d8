package combopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/combopt/errs"
	"github.com/napalu/combopt/value"
)

func TestArgument_ConsumesOneToken(t *testing.T) {
	p := Argument(value.String())
	step := p.Parse(Context{Buffer: []string{"input.txt", "rest"}, State: p.Initial()})
	require.True(t, step.Success)
	assert.Equal(t, []string{"input.txt"}, step.Consumed)

	v, err := p.Complete(step.Next.State)
	require.NoError(t, err)
	assert.Equal(t, "input.txt", v)
}

func TestArgument_RejectsOptionShapedTokens(t *testing.T) {
	p := Argument(value.String())
	step := p.Parse(Context{Buffer: []string{"-v"}, State: p.Initial()})
	require.False(t, step.Success)
	assert.Equal(t, 0, step.Count)
	assert.ErrorIs(t, step.Err, errs.ErrExpectedArgument)
}

func TestArgument_AcceptsOptionShapedTokensAfterTerminator(t *testing.T) {
	p := Argument(value.String())
	step := p.Parse(Context{Buffer: []string{"-v"}, State: p.Initial(), OptionsTerminated: true})
	require.True(t, step.Success, "after -- every token is plain data")

	v, err := p.Complete(step.Next.State)
	require.NoError(t, err)
	assert.Equal(t, "-v", v)
}

func TestArgument_SlashTokensAreValues(t *testing.T) {
	p := Object(
		WithField("quiet", Optional(Option("/quiet"))),
		WithField("path", Argument(value.String())),
	)
	result, err := Parse(p, []string{"/etc/passwd"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"quiet": nil, "path": "/etc/passwd"},
		result, "slash tokens read as paths, not as near-miss DOS options")
}

func TestArgument_LoneDashIsData(t *testing.T) {
	p := Argument(value.String())
	step := p.Parse(Context{Buffer: []string{"-"}, State: p.Initial()})
	require.True(t, step.Success, "a lone dash conventionally means stdin")
}

func TestArgument_MissingAtCompletion(t *testing.T) {
	p := Argument(value.String())
	_, err := p.Complete(p.Initial())
	assert.ErrorIs(t, err, errs.ErrMissingArgument)
}

func TestArgument_InvalidValue(t *testing.T) {
	p := Argument(value.Int())
	step := p.Parse(Context{Buffer: []string{"abc"}, State: p.Initial()})
	require.False(t, step.Success)
	assert.Equal(t, 1, step.Count)
	assert.ErrorIs(t, step.Err, errs.ErrInvalidValue)
}

func TestConstant_CompletesWithoutConsuming(t *testing.T) {
	p := Constant(42)
	step := p.Parse(Context{Buffer: []string{"anything"}, State: p.Initial()})
	require.True(t, step.Success)
	assert.Empty(t, step.Consumed)

	v, err := p.Complete(step.Next.State)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
