package combopt

import (
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/napalu/combopt/errs"
)

// ConfigureObjectFunc configures an ObjectParser at construction.
type ConfigureObjectFunc func(o *ObjectParser)

// WithField adds a named field parsed by p. Adding the same field name
// twice panics, since that is an authoring bug.
func WithField(name string, p Parser) ConfigureObjectFunc {
	return func(o *ObjectParser) {
		if _, exists := o.registry.Get(name); exists {
			panic(errs.ErrDuplicateField.WithArgs(name))
		}
		o.registry.Set(name, p)
	}
}

// WithObject folds every field of src into the object being built. A field
// name already present is overwritten in place, last writer wins; under
// WithStrictFields the collision panics instead.
func WithObject(src *ObjectParser) ConfigureObjectFunc {
	return func(o *ObjectParser) {
		for _, f := range src.fields {
			if _, exists := o.registry.Get(f.name); exists {
				o.collisions = append(o.collisions, f.name)
			}
			o.registry.Set(f.name, f.parser)
		}
	}
}

// WithStrictFields makes field collisions between merged objects a panic
// instead of last-writer-wins.
func WithStrictFields() ConfigureObjectFunc {
	return func(o *ObjectParser) {
		o.strictFields = true
	}
}

// WithAllowDuplicates skips the construction-time duplicate option scan,
// for grammars that intentionally declare the same spelling in several
// fields.
func WithAllowDuplicates() ConfigureObjectFunc {
	return func(o *ObjectParser) {
		o.allowDuplicates = true
	}
}

type objectField struct {
	name   string
	parser Parser
}

// ObjectParser parses an unordered set of named fields into a
// map[string]interface{}. Each step offers the head token to every field
// in priority order and folds in the first field that consumes input, so
// options and positionals may interleave freely.
type ObjectParser struct {
	registry        *orderedmap.OrderedMap
	fields          []objectField
	allowDuplicates bool
	strictFields    bool
	collisions      []string
}

// Object returns a parser producing one value per field. Construction
// scans the fields for option spellings declared by more than one field
// and panics with a DuplicateOptionError on a clash (see
// CheckDuplicateOptions), unless WithAllowDuplicates is given.
func Object(configs ...ConfigureObjectFunc) *ObjectParser {
	o := &ObjectParser{registry: orderedmap.New()}
	for _, c := range configs {
		c(o)
	}
	if o.strictFields && len(o.collisions) > 0 {
		panic(errs.ErrDuplicateField.WithArgs(o.collisions[0]))
	}
	for pair := o.registry.Oldest(); pair != nil; pair = pair.Next() {
		o.fields = append(o.fields, objectField{
			name:   pair.Key.(string),
			parser: pair.Value.(Parser),
		})
	}
	if !o.allowDuplicates {
		checkDuplicateOptions(o.duplicateSources())
	}
	return o
}

// Merge combines the fields of several objects into one, last writer wins
// on field name collisions. It is shorthand for Object with a WithObject
// per source; use that form directly to add WithStrictFields or
// WithAllowDuplicates.
func Merge(objects ...*ObjectParser) *ObjectParser {
	configs := make([]ConfigureObjectFunc, len(objects))
	for i, src := range objects {
		configs[i] = WithObject(src)
	}
	return Object(configs...)
}

func (o *ObjectParser) duplicateSources() []dupSource {
	sources := make([]dupSource, len(o.fields))
	for i, f := range o.fields {
		sources[i] = dupSource{name: f.name, terms: f.parser.Usage()}
	}
	return sources
}

type objectState map[string]State

func (s objectState) clone() objectState {
	next := make(objectState, len(s))
	for k, v := range s {
		next[k] = v
	}
	return next
}

func (o *ObjectParser) Priority() int { return maxPriority(o.parsers()) }

func (o *ObjectParser) Initial() State {
	st := make(objectState, len(o.fields))
	for _, f := range o.fields {
		st[f.name] = f.parser.Initial()
	}
	return st
}

func (o *ObjectParser) Parse(ctx Context) Step {
	st, ok := ctx.State.(objectState)
	if !ok {
		st = o.Initial().(objectState)
	}
	if len(ctx.Buffer) == 0 {
		return StepSuccess(ctx)
	}

	var worst failureTracker
	for _, idx := range priorityOrder(o.parsers()) {
		f := o.fields[idx]
		step := f.parser.Parse(Context{
			Buffer:            ctx.Buffer,
			State:             st[f.name],
			OptionsTerminated: ctx.OptionsTerminated,
		})
		if !step.Success {
			worst.observe(step.Count, step.Err, idx)
			continue
		}
		if len(step.Consumed) == 0 {
			continue
		}
		next := st.clone()
		next[f.name] = step.Next.State
		return StepSuccess(Context{
			Buffer:            step.Next.Buffer,
			State:             next,
			OptionsTerminated: step.Next.OptionsTerminated,
		}, step.Consumed...)
	}

	if !worst.set {
		worst.observe(0, errs.ErrUnexpectedInput.WithArgs(ctx.Buffer[0]), len(o.fields))
	}
	return worst.step()
}

func (o *ObjectParser) Complete(state State) (interface{}, error) {
	st, ok := state.(objectState)
	if !ok {
		st = o.Initial().(objectState)
	}
	result := make(map[string]interface{}, len(o.fields))
	for _, f := range o.fields {
		v, err := f.parser.Complete(st[f.name])
		if err != nil {
			return nil, err
		}
		result[f.name] = v
	}
	return result, nil
}

func (o *ObjectParser) Usage() []UsageTerm {
	var terms []UsageTerm
	for _, f := range o.fields {
		terms = append(terms, f.parser.Usage()...)
	}
	return terms
}

func (o *ObjectParser) parsers() []Parser {
	parsers := make([]Parser, len(o.fields))
	for i, f := range o.fields {
		parsers[i] = f.parser
	}
	return parsers
}

func (o *ObjectParser) children() []Parser { return o.parsers() }
