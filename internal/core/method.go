package core

// Method is the contract every streaming statistic satisfies: consume
// exactly one observation, update internal state in O(1) amortized time
// relative to the period, and return the new output. Constructors are
// per-type functions taking the parameters plus the first observed
// value; all internal state is seeded as if the method had been running
// on an infinite history of that value, so output is well-defined from
// the very first tick.
//
// Next never fails and never performs I/O. Non-finite inputs are not
// rejected; NaN propagates through the arithmetic like any other float.
type Method[I, O any] interface {
	Next(value I) O
}

// Over drives m once per input, in order. The output length always
// equals the input length, including for empty input.
func Over[I, O any](m Method[I, O], inputs []I) []O {
	out := make([]O, len(inputs))
	for i, v := range inputs {
		out[i] = m.Next(v)
	}
	return out
}

// NewOver constructs a method seeded from the first input and folds it
// over the whole sequence. On empty input it returns (nil, nil) without
// constructing anything, there being no value to seed from.
func NewOver[I, O any](construct func(initial I) (Method[I, O], error), inputs []I) ([]O, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	m, err := construct(inputs[0])
	if err != nil {
		return nil, err
	}
	return Over(m, inputs), nil
}
