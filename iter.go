package venum

import "iter"

// Values returns a sequence over the declared values in declaration order,
// duplicates included. Every range statement gets its own cursor, and the
// sequence can be drained any number of times.
func (d *Definition[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Names returns a sequence over the processed names in declaration order.
// The first traversal triggers name processing. It panics with the
// AllocationError if processing failed.
func (d *Definition[T]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range d.mustNames() {
			if !yield(n) {
				return
			}
		}
	}
}

// All returns a sequence of (name, value) pairs in declaration order.
func (d *Definition[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		names := d.mustNames()
		for i, v := range d.values {
			if !yield(names[i], v) {
				return
			}
		}
	}
}

func (d *Definition[T]) mustNames() []string {
	names, err := d.processedNames()
	if err != nil {
		panic(err)
	}
	return names
}
