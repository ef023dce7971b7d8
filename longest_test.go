package combopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/combopt/value"
)

func TestLongestMatch_PicksDeepestConsumer(t *testing.T) {
	short := Tuple([]Parser{Argument(value.String())})
	long := Tuple([]Parser{Argument(value.String()), Argument(value.String())})
	p := LongestMatch(short, long)

	result, err := Parse(p, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b"}, result,
		"the two-argument grammar consumes more and wins")
}

func TestLongestMatch_TiesGoToDeclarationOrder(t *testing.T) {
	first := Object(WithField("x", Argument(value.String())))
	second := Tuple([]Parser{Argument(value.String())})
	p := LongestMatch(first, second)

	result, err := Parse(p, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"x": "a"}, result,
		"equal consumption resolves to the earlier candidate")
}

func TestLongestMatch_CommittedWinnerKeepsParsing(t *testing.T) {
	flags := Object(
		WithField("verbose", Optional(Option("-v"))),
		WithField("out", Optional(OptionValue(value.String(), "--out"))),
	)
	plain := Tuple([]Parser{Argument(value.String())})
	p := LongestMatch(plain, flags)

	result, err := Parse(p, []string{"-v", "--out", "x.txt"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"verbose": true, "out": "x.txt"}, result)
}

func TestLongestMatch_AllCandidatesFailing(t *testing.T) {
	p := LongestMatch(Option("-a"), Option("-b"))
	_, err := Parse(p, []string{"-c"})
	require.Error(t, err)
}

func TestLongestMatch_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { LongestMatch() })
}
