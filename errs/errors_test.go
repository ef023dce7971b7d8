package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/napalu/combopt/i18n"
)

func TestSentinels_RenderEnglishByDefault(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrUnknownOption.WithArgs("--nope"), `unknown option "--nope"`},
		{ErrOptionRequiresValue.WithArgs("--port"), "option --port requires a value"},
		{ErrOptionMultipleTimes.WithArgs("-v"), "option -v cannot be used multiple times"},
		{ErrMutuallyExclusive.WithArgs("-a", "-b"), "-a cannot be used together with -b"},
		{ErrExpectedArgument.WithArgs("-v"), `expected an argument, got an option "-v"`},
		{ErrMissingOption.WithArgs("--port/-p"), "missing required option --port/-p"},
		{ErrTooFewOccurrences.WithArgs(2, "-t", 1), "expected at least 2 occurrences of -t, got 1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestDuplicateOptionError_Message(t *testing.T) {
	err := &DuplicateOptionError{OptionName: "-v", Sources: []string{"a", "b"}}
	assert.Equal(t, `option -v is declared by multiple sources: "a", "b"`, err.Error())
}

func TestWithSuggestions_DecoratesAndUnwraps(t *testing.T) {
	var base error = ErrUnknownOption.WithArgs("--verbos")

	assert.Same(t, base, WithSuggestions(base, nil), "no candidates leaves the error untouched")

	decorated := WithSuggestions(base, []string{"--verbose"})
	assert.ErrorIs(t, decorated, ErrUnknownOption)
	assert.Contains(t, decorated.Error(), `did you mean "--verbose"?`)
	assert.Equal(t, []string{"--verbose"}, Suggestions(decorated))
	assert.Nil(t, Suggestions(base), "an undecorated error has no suggestions")
}

func TestUpdateMessageProvider_SwitchesLanguage(t *testing.T) {
	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	bundle.SetDefaultLanguage(language.French)

	UpdateMessageProvider(i18n.NewBundleMessageProvider(bundle))
	defer UpdateMessageProvider(i18n.NewBundleMessageProvider(i18n.Default()))

	assert.Equal(t, `option inconnue "--nope"`, ErrUnknownOption.WithArgs("--nope").Error())
}
