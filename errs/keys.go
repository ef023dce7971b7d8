// Package errs defines the error values produced by the parsing engine.
// This file holds the translation keys; errors.go binds them to sentinels.
package errs

// Prefix for all combopt translation keys
const (
	prefixKey = "combopt"
)

// Error prefixes
const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
)

// Keys for parse-time failures. These are ordinary outcomes of invalid
// user input and travel inside step and completion results.
const (
	ErrUnknownOptionKey        = ErrorPrefixKey + ".unknown_option"
	ErrNoMatchKey              = ErrorPrefixKey + ".no_match"
	ErrEndOfInputKey           = ErrorPrefixKey + ".end_of_input"
	ErrOptionRequiresValueKey  = ErrorPrefixKey + ".option_requires_value"
	ErrOptionNoValueKey        = ErrorPrefixKey + ".option_does_not_accept_value"
	ErrOptionMultipleTimesKey  = ErrorPrefixKey + ".option_multiple_times"
	ErrMutuallyExclusiveKey    = ErrorPrefixKey + ".mutually_exclusive"
	ErrExpectedArgumentKey     = ErrorPrefixKey + ".expected_argument"
	ErrMissingOptionKey        = ErrorPrefixKey + ".missing_option"
	ErrMissingArgumentKey      = ErrorPrefixKey + ".missing_argument"
	ErrUnexpectedInputKey      = ErrorPrefixKey + ".unexpected_input"
	ErrInvalidValueKey         = ErrorPrefixKey + ".invalid_value"
	ErrUnknownBranchValueKey   = ErrorPrefixKey + ".unknown_branch_value"
	ErrLateDiscriminatorKey    = ErrorPrefixKey + ".late_discriminator"
	ErrTooFewOccurrencesKey    = ErrorPrefixKey + ".too_few_occurrences"
	ErrDidYouMeanKey           = ErrorPrefixKey + ".did_you_mean"
	ErrResultTypeMismatchKey   = ErrorPrefixKey + ".result_type_mismatch"
	ErrDecodeTargetKey         = ErrorPrefixKey + ".decode_target"
	ErrDecodeFieldKey          = ErrorPrefixKey + ".decode_field"
)

// Keys for construction-time defects. These name grammar-authoring bugs
// and are raised as panics before any input is parsed.
const (
	ErrDuplicateOptionKey      = ErrorPrefixKey + ".duplicate_option"
	ErrDuplicateFieldKey       = ErrorPrefixKey + ".duplicate_field"
	ErrDuplicateBranchKey      = ErrorPrefixKey + ".duplicate_branch"
	ErrEmptyMetavarKey         = ErrorPrefixKey + ".empty_metavar"
	ErrNoOptionNamesKey        = ErrorPrefixKey + ".no_option_names"
	ErrInvalidOptionNameKey    = ErrorPrefixKey + ".invalid_option_name"
	ErrNoBranchesKey           = ErrorPrefixKey + ".no_branches"
	ErrNoChoicesKey            = ErrorPrefixKey + ".no_choices"
	ErrUnknownDefaultBranchKey = ErrorPrefixKey + ".unknown_default_branch"
)

// Keys for value-parser failures
const (
	ErrParseIntKey      = ParseErrorPathKey + ".int"
	ErrParseIntRangeKey = ParseErrorPathKey + ".int_range"
	ErrParseFloatKey    = ParseErrorPathKey + ".float"
	ErrParseChoiceKey   = ParseErrorPathKey + ".choice"
	ErrParseDurationKey = ParseErrorPathKey + ".duration"
	ErrParseTimeKey     = ParseErrorPathKey + ".time"
	ErrParseUUIDKey     = ParseErrorPathKey + ".uuid"
)
