package venum

import "golang.org/x/exp/constraints"

// Range holds the range metadata of a definition's declared values.
type Range[T constraints.Integer] struct {
	// Size is the number of declared constants.
	Size int
	// First and Last are the first and last values in declaration order.
	First, Last T
	// Min and Max are the smallest and largest declared values.
	Min, Max T
	// Span is Max - Min + 1, computed modulo 2^64. It is not clamped, so a
	// full-width 64-bit range wraps to 0.
	Span uint64
}

// AnalyzeRange computes the range metadata of values with a single linear
// scan. It fails for an empty slice.
func AnalyzeRange[T constraints.Integer](values []T) (Range[T], error) {
	if len(values) == 0 {
		return Range[T]{}, NewEmptyDefinitionError("")
	}
	r := Range[T]{
		Size:  len(values),
		First: values[0],
		Last:  values[len(values)-1],
		Min:   values[0],
		Max:   values[0],
	}
	for _, v := range values[1:] {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	r.Span = uint64(r.Max) - uint64(r.Min) + 1
	return r, nil
}
