package combopt

// ConstantParser consumes nothing and completes to a fixed value. It is
// the unit for object fields that carry injected values, and the usual way
// to give a conditional branch an empty payload.
type ConstantParser struct {
	value interface{}
}

// Constant returns a parser that always succeeds without consuming input
// and completes to v.
func Constant(v interface{}) *ConstantParser {
	return &ConstantParser{value: v}
}

func (c *ConstantParser) Priority() int { return PriorityDefault }

func (c *ConstantParser) Initial() State { return nil }

func (c *ConstantParser) Parse(ctx Context) Step {
	return StepSuccess(ctx)
}

func (c *ConstantParser) Complete(State) (interface{}, error) {
	return c.value, nil
}

func (c *ConstantParser) Usage() []UsageTerm { return nil }
