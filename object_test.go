package combopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/combopt/errs"
	"github.com/napalu/combopt/value"
)

func verbosePort() *ObjectParser {
	return Object(
		WithField("verbose", Option("--verbose", "-v")),
		WithField("port", OptionValue(value.Int(), "--port", "-p")),
	)
}

func TestObject_CollectsNamedFields(t *testing.T) {
	result, err := Parse(verbosePort(), []string{"-v", "-p", "8080"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"verbose": true, "port": 8080}, result)
}

func TestObject_FieldOrderDoesNotMatter(t *testing.T) {
	result, err := Parse(verbosePort(), []string{"--port", "9090", "--verbose"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"verbose": true, "port": 9090}, result)
}

func TestObject_OptionsOutrankArguments(t *testing.T) {
	p := Object(
		WithField("file", Argument(value.String())),
		WithField("verbose", Option("-v")),
	)
	result, err := Parse(p, []string{"-v", "input.txt"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"file": "input.txt", "verbose": true},
		result, "the flag goes to the option even though the argument was declared first")
}

func TestObject_MissingRequiredOption(t *testing.T) {
	_, err := Parse(verbosePort(), []string{"-v"})
	assert.ErrorIs(t, err, errs.ErrMissingOption)
}

func TestObject_FurthestFailureWins(t *testing.T) {
	p := verbosePort()
	step := p.Parse(Context{Buffer: []string{"--port", "abc"}, State: p.Initial()})
	require.False(t, step.Success)
	assert.Equal(t, 1, step.Count, "the mid-construct failure outranks sibling rejections")
	assert.ErrorIs(t, step.Err, errs.ErrInvalidValue)
}

func TestObject_DuplicateOptionPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "two fields declaring -v must panic")
		dup, ok := r.(*errs.DuplicateOptionError)
		require.True(t, ok, "panic value should be a *errs.DuplicateOptionError, got %T", r)
		assert.Equal(t, "-v", dup.OptionName)
		assert.Equal(t, []string{"a", "b"}, dup.Sources, "sources in declaration order")
	}()
	Object(
		WithField("a", Option("--alpha", "-v")),
		WithField("b", Option("--beta", "-v")),
	)
}

func TestObject_DuplicateScanSeesThroughWrappers(t *testing.T) {
	assert.Panics(t, func() {
		Object(
			WithField("a", Optional(Option("-v"))),
			WithField("b", Multiple(Option("-v"))),
		)
	}, "optional and repeated wrappers do not hide spellings from the scan")
}

func TestObject_DuplicateScanStopsAtCommands(t *testing.T) {
	assert.NotPanics(t, func() {
		Object(
			WithField("verbose", Option("-v")),
			WithField("cmd", Conditional(Argument(value.String()),
				WithBranch("run", Object(WithField("verbose", Option("-v")))),
			)),
		)
	}, "a command starts its own option namespace")
}

func TestObject_AllowDuplicatesSkipsScan(t *testing.T) {
	assert.NotPanics(t, func() {
		Object(
			WithField("a", Option("-v")),
			WithField("b", Option("-v")),
			WithAllowDuplicates(),
		)
	})
}

func TestObject_DuplicateFieldNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		Object(
			WithField("x", Option("-a")),
			WithField("x", Option("-b")),
		)
	})
}

func TestMerge_LastWriterWinsOnFields(t *testing.T) {
	base := Object(WithField("port", OptionValue(value.Int(), "--port")))
	override := Object(WithField("port", OptionValue(value.IntBetween(1, 65535), "--port")))
	merged := Merge(base, override)

	_, err := Parse(merged, []string{"--port", "0"})
	assert.ErrorIs(t, err, errs.ErrParseIntRange, "the overriding field's range check applies")

	result, err := Parse(merged, []string{"--port", "8080"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"port": 8080}, result)
}

func TestMerge_InterleavesSourceFields(t *testing.T) {
	flags := Object(WithField("verbose", Option("-v")))
	inout := Object(
		WithField("in", Argument(value.String())),
		WithField("out", OptionValue(value.String(), "--out")),
	)
	result, err := Parse(Merge(flags, inout), []string{"--out", "b.txt", "-v", "a.txt"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"verbose": true,
		"in":      "a.txt",
		"out":     "b.txt",
	}, result, "fields from both sources may appear in any order")
}

func TestMerge_StrictFieldsPanicsOnCollision(t *testing.T) {
	a := Object(WithField("port", OptionValue(value.Int(), "--port")))
	b := Object(WithField("port", OptionValue(value.Int(), "-p")))
	assert.Panics(t, func() {
		Object(WithObject(a), WithObject(b), WithStrictFields())
	})
}

func TestMerge_DuplicateOptionAcrossSourcesPanics(t *testing.T) {
	a := Object(WithField("alpha", Option("-v")))
	b := Object(WithField("beta", Option("-v")))
	assert.Panics(t, func() { Merge(a, b) })
}
