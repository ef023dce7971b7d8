package combopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/combopt/errs"
	"github.com/napalu/combopt/value"
)

func TestOr_CommitsToFirstMatchingBranch(t *testing.T) {
	p := Or(Option("-a"), Option("-b"))
	result, err := Parse(p, []string{"-b"})
	require.NoError(t, err)
	assert.Equal(t, true, result)
}

func TestOr_BranchesAreMutuallyExclusive(t *testing.T) {
	p := Or(Option("-a"), Option("-b"))
	_, err := Parse(p, []string{"-a", "-b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMutuallyExclusive)
	assert.Contains(t, err.Error(), "cannot be used together")
}

func TestOr_MutualExclusionNamesGroupLabels(t *testing.T) {
	p := Or(
		Group("archive mode", Option("-a")),
		Group("backup mode", Option("-b")),
	)
	_, err := Parse(p, []string{"-a", "-b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archive mode")
	assert.Contains(t, err.Error(), "backup mode")
}

func TestOr_CommittedBranchKeepsParsing(t *testing.T) {
	p := Or(
		Object(
			WithField("port", OptionValue(value.Int(), "-p")),
			WithField("host", OptionValue(value.String(), "-h")),
		),
		Option("-a"),
	)
	result, err := Parse(p, []string{"-p", "80", "-h", "web"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"port": 80, "host": "web"}, result)
}

func TestOr_FurthestFailureReported(t *testing.T) {
	p := Or(Option("-a"), OptionValue(value.Int(), "-p"))
	step := p.Parse(Context{Buffer: []string{"-p", "abc"}, State: p.Initial()})
	require.False(t, step.Success)
	assert.Equal(t, 1, step.Count, "the branch that got furthest diagnoses the failure")
	assert.ErrorIs(t, step.Err, errs.ErrInvalidValue)
}

func TestOr_TerminatorDoesNotCommitABranch(t *testing.T) {
	p := Or(
		Object(WithField("all", Option("-a"))),
		Object(WithField("file", Argument(value.String()))),
	)
	result, err := Parse(p, []string{"--", "file.txt"})
	require.NoError(t, err, "consuming -- must not count as choosing the first branch")
	assert.Equal(t, map[string]interface{}{"file": "file.txt"}, result)
}

func TestOr_RealTokensAfterTerminatorStillCommit(t *testing.T) {
	p := Or(
		Object(WithField("a", Argument(value.String()))),
		Option("-b"),
	)
	result, err := Parse(p, []string{"--", "-b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": "-b"}, result,
		"after -- the argument branch claims the token and commits normally")
}

func TestOr_CompletesFromAlternativeWhenNothingMatched(t *testing.T) {
	p := Or(OptionValue(value.Int(), "-p"), Constant(0))
	result, err := Parse(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result, "the constant alternative provides the default")
}

func TestOr_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Or() })
}
