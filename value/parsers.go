package value

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"

	"github.com/napalu/combopt/errs"
	"github.com/napalu/combopt/i18n"
)

// StringValue accepts any token unchanged.
type StringValue struct {
	cfg Config
}

// String returns a parser accepting any token.
func String(configs ...ConfigureValueFunc) *StringValue {
	return &StringValue{cfg: applyConfig("STRING", configs)}
}

func (v *StringValue) Metavar() string { return v.cfg.metavar }

func (v *StringValue) Parse(token string) (interface{}, error) {
	return token, nil
}

func (v *StringValue) Format(value interface{}) string {
	s, _ := value.(string)
	return s
}

// IntValue accepts integer tokens, optionally bounded to a closed range.
type IntValue struct {
	cfg      Config
	min, max *int
}

// Int returns a parser accepting any integer.
func Int(configs ...ConfigureValueFunc) *IntValue {
	return &IntValue{cfg: applyConfig("INTEGER", configs)}
}

// IntBetween returns a parser accepting integers in [min, max].
func IntBetween(min, max int, configs ...ConfigureValueFunc) *IntValue {
	v := Int(configs...)
	v.min = &min
	v.max = &max
	return v
}

func (v *IntValue) Metavar() string { return v.cfg.metavar }

func (v *IntValue) Parse(token string) (interface{}, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return nil, errs.ErrParseInt.WithArgs(token)
	}
	if v.min != nil && (n < *v.min || n > *v.max) {
		return nil, errs.ErrParseIntRange.WithArgs(n, *v.min, *v.max)
	}
	return n, nil
}

func (v *IntValue) Format(value interface{}) string {
	n, _ := value.(int)
	return strconv.Itoa(n)
}

// FloatValue accepts floating point tokens.
type FloatValue struct {
	cfg Config
}

// Float returns a parser accepting any floating point number.
func Float(configs ...ConfigureValueFunc) *FloatValue {
	return &FloatValue{cfg: applyConfig("NUMBER", configs)}
}

func (v *FloatValue) Metavar() string { return v.cfg.metavar }

func (v *FloatValue) Parse(token string) (interface{}, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, errs.ErrParseFloat.WithArgs(token)
	}
	return f, nil
}

func (v *FloatValue) Format(value interface{}) string {
	f, _ := value.(float64)
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ChoiceValue accepts one of a fixed set of literals. It also suggests
// completions for partial input.
type ChoiceValue struct {
	cfg     Config
	choices []string
}

// Choice returns a parser accepting one of the given literals. At least one
// literal is required.
func Choice(choices []string, configs ...ConfigureValueFunc) *ChoiceValue {
	if len(choices) == 0 {
		panic(errs.ErrNoChoices)
	}
	return &ChoiceValue{cfg: applyConfig("CHOICE", configs), choices: choices}
}

func (v *ChoiceValue) Metavar() string { return v.cfg.metavar }

func (v *ChoiceValue) Parse(token string) (interface{}, error) {
	for _, c := range v.choices {
		if token == c {
			return c, nil
		}
	}
	return nil, errs.ErrParseChoice.WithArgs(i18n.QuoteList(v.choices), token)
}

func (v *ChoiceValue) Format(value interface{}) string {
	s, _ := value.(string)
	return s
}

// Suggest returns the choices sharing the given prefix.
func (v *ChoiceValue) Suggest(partial string) []string {
	var matches []string
	for _, c := range v.choices {
		if strings.HasPrefix(c, partial) {
			matches = append(matches, c)
		}
	}
	return matches
}

// DurationValue accepts Go duration tokens such as "1h30m".
type DurationValue struct {
	cfg Config
}

// Duration returns a parser accepting Go duration syntax.
func Duration(configs ...ConfigureValueFunc) *DurationValue {
	return &DurationValue{cfg: applyConfig("DURATION", configs)}
}

func (v *DurationValue) Metavar() string { return v.cfg.metavar }

func (v *DurationValue) Parse(token string) (interface{}, error) {
	d, err := time.ParseDuration(token)
	if err != nil {
		return nil, errs.ErrParseDuration.WithArgs(token)
	}
	return d, nil
}

func (v *DurationValue) Format(value interface{}) string {
	d, _ := value.(time.Duration)
	return d.String()
}

// DateValue accepts timestamps in any layout dateparse recognizes,
// interpreted in the local time zone.
type DateValue struct {
	cfg Config
}

// Date returns a parser accepting common date and timestamp layouts.
func Date(configs ...ConfigureValueFunc) *DateValue {
	return &DateValue{cfg: applyConfig("DATE", configs)}
}

func (v *DateValue) Metavar() string { return v.cfg.metavar }

func (v *DateValue) Parse(token string) (interface{}, error) {
	t, err := dateparse.ParseLocal(token)
	if err != nil {
		return nil, errs.ErrParseTime.WithArgs(token)
	}
	return t, nil
}

func (v *DateValue) Format(value interface{}) string {
	t, _ := value.(time.Time)
	return t.Format(time.RFC3339)
}

// UUIDValue accepts RFC 4122 UUID tokens.
type UUIDValue struct {
	cfg Config
}

// UUID returns a parser accepting UUID tokens.
func UUID(configs ...ConfigureValueFunc) *UUIDValue {
	return &UUIDValue{cfg: applyConfig("UUID", configs)}
}

func (v *UUIDValue) Metavar() string { return v.cfg.metavar }

func (v *UUIDValue) Parse(token string) (interface{}, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, errs.ErrParseUUID.WithArgs(token)
	}
	return id, nil
}

func (v *UUIDValue) Format(value interface{}) string {
	id, _ := value.(uuid.UUID)
	return id.String()
}
