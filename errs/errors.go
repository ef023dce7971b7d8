package errs

import (
	"sync"

	"github.com/napalu/combopt/i18n"
)

// Parse-time failures
var (
	ErrUnknownOption       = i18n.NewError(ErrUnknownOptionKey)
	ErrNoMatch             = i18n.NewError(ErrNoMatchKey)
	ErrEndOfInput          = i18n.NewError(ErrEndOfInputKey)
	ErrOptionRequiresValue = i18n.NewError(ErrOptionRequiresValueKey)
	ErrOptionNoValue       = i18n.NewError(ErrOptionNoValueKey)
	ErrOptionMultipleTimes = i18n.NewError(ErrOptionMultipleTimesKey)
	ErrMutuallyExclusive   = i18n.NewError(ErrMutuallyExclusiveKey)
	ErrExpectedArgument    = i18n.NewError(ErrExpectedArgumentKey)
	ErrMissingOption       = i18n.NewError(ErrMissingOptionKey)
	ErrMissingArgument     = i18n.NewError(ErrMissingArgumentKey)
	ErrUnexpectedInput     = i18n.NewError(ErrUnexpectedInputKey)
	ErrInvalidValue        = i18n.NewError(ErrInvalidValueKey)
	ErrUnknownBranchValue  = i18n.NewError(ErrUnknownBranchValueKey)
	ErrLateDiscriminator   = i18n.NewError(ErrLateDiscriminatorKey)
	ErrTooFewOccurrences   = i18n.NewError(ErrTooFewOccurrencesKey)
	ErrResultTypeMismatch  = i18n.NewError(ErrResultTypeMismatchKey)
	ErrDecodeTarget        = i18n.NewError(ErrDecodeTargetKey)
	ErrDecodeField         = i18n.NewError(ErrDecodeFieldKey)
)

// Construction-time defects
var (
	ErrDuplicateField       = i18n.NewError(ErrDuplicateFieldKey)
	ErrDuplicateBranch      = i18n.NewError(ErrDuplicateBranchKey)
	ErrEmptyMetavar         = i18n.NewError(ErrEmptyMetavarKey)
	ErrNoOptionNames        = i18n.NewError(ErrNoOptionNamesKey)
	ErrInvalidOptionName    = i18n.NewError(ErrInvalidOptionNameKey)
	ErrNoBranches           = i18n.NewError(ErrNoBranchesKey)
	ErrNoChoices            = i18n.NewError(ErrNoChoicesKey)
	ErrUnknownDefaultBranch = i18n.NewError(ErrUnknownDefaultBranchKey)
)

// Value-parser failures
var (
	ErrParseInt      = i18n.NewError(ErrParseIntKey)
	ErrParseIntRange = i18n.NewError(ErrParseIntRangeKey)
	ErrParseFloat    = i18n.NewError(ErrParseFloatKey)
	ErrParseChoice   = i18n.NewError(ErrParseChoiceKey)
	ErrParseDuration = i18n.NewError(ErrParseDurationKey)
	ErrParseTime     = i18n.NewError(ErrParseTimeKey)
	ErrParseUUID     = i18n.NewError(ErrParseUUIDKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []i18n.TranslatableError
}

var sysErrors = &builtInErrors{
	All: []i18n.TranslatableError{
		ErrUnknownOption,
		ErrNoMatch,
		ErrEndOfInput,
		ErrOptionRequiresValue,
		ErrOptionNoValue,
		ErrOptionMultipleTimes,
		ErrMutuallyExclusive,
		ErrExpectedArgument,
		ErrMissingOption,
		ErrMissingArgument,
		ErrUnexpectedInput,
		ErrInvalidValue,
		ErrUnknownBranchValue,
		ErrLateDiscriminator,
		ErrTooFewOccurrences,
		ErrResultTypeMismatch,
		ErrDecodeTarget,
		ErrDecodeField,
		ErrDuplicateField,
		ErrDuplicateBranch,
		ErrEmptyMetavar,
		ErrNoOptionNames,
		ErrInvalidOptionName,
		ErrNoBranches,
		ErrNoChoices,
		ErrUnknownDefaultBranch,
		ErrParseInt,
		ErrParseIntRange,
		ErrParseFloat,
		ErrParseChoice,
		ErrParseDuration,
		ErrParseTime,
		ErrParseUUID,
	},
}

// UpdateMessageProvider updates the message provider for all built-in
// errors, e.g. after installing a custom bundle:
//
//	provider := i18n.NewBundleMessageProvider(bundle)
//	errs.UpdateMessageProvider(provider)
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}
