package combopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/combopt/value"
)

func TestTuple_CollectsByPosition(t *testing.T) {
	p := Tuple([]Parser{
		Argument(value.String()),
		Option("-v"),
	})
	result, err := Parse(p, []string{"input.txt", "-v"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"input.txt", true}, result)
}

func TestTuple_OptionsMayLeadPositionals(t *testing.T) {
	p := Tuple([]Parser{
		Argument(value.String()),
		Option("-v"),
	})
	result, err := Parse(p, []string{"-v", "input.txt"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"input.txt", true}, result,
		"values land by declared position regardless of input order")
}

func TestTuple_PositionalsBindInOrder(t *testing.T) {
	p := Tuple([]Parser{
		Argument(value.String()),
		Argument(value.String()),
	})
	result, err := Parse(p, []string{"first", "second"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"first", "second"}, result)
}

func TestTuple_DuplicateOptionPanics(t *testing.T) {
	assert.Panics(t, func() {
		Tuple([]Parser{Option("-v"), Option("-v")})
	})
	assert.NotPanics(t, func() {
		Tuple([]Parser{Option("-v"), Option("-v")}, WithTupleAllowDuplicates())
	})
}

func TestConcat_FlattensTuples(t *testing.T) {
	head := Tuple([]Parser{Argument(value.String())})
	tail := Tuple([]Parser{Option("-v"), Optional(OptionValue(value.Int(), "-p"))})
	p := Concat(head, tail)

	result, err := Parse(p, []string{"in.txt", "-p", "80", "-v"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"in.txt", true, 80}, result)
}

func TestConcat_RevalidatesAcrossSpan(t *testing.T) {
	a := Tuple([]Parser{Option("-v")})
	b := Tuple([]Parser{Option("-v")})
	assert.Panics(t, func() { Concat(a, b) },
		"spellings must stay unique across the concatenated span")
}
