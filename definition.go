package venum

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/constraints"
)

// NotFound is the index returned by non-strict lookups that find no match.
const NotFound = -1

// Definition holds the declared constants of one enumerated type and the data
// derived from them. Values and raw declarations are immutable once the
// definition is built; processed names are computed on first need, exactly
// once, and shared by every user of the definition.
//
// All lookups are linear scans in declaration order, so the first declared
// match wins for duplicate values or names.
type Definition[T constraints.Integer] struct {
	id     string
	values []T
	raw    []string
	rng    Range[T]
	limit  uint64

	once     sync.Once
	names    []string
	namesErr error
}

// NewDefinition builds a definition from parallel value and raw declaration
// slices. The slices are copied. Most callers want Register instead, which
// shares one definition per identity.
func NewDefinition[T constraints.Integer](id string, values []T, raw []string) (*Definition[T], error) {
	if len(values) == 0 && len(raw) == 0 {
		return nil, NewEmptyDefinitionError(id)
	}
	if len(values) != len(raw) {
		return nil, &DefinitionError{
			Enum:    id,
			Message: fmt.Sprintf("%d values but %d declarations", len(values), len(raw)),
		}
	}
	rng, err := AnalyzeRange(values)
	if err != nil {
		return nil, NewEmptyDefinitionError(id)
	}
	return &Definition[T]{
		id:     id,
		values: slices.Clone(values),
		raw:    slices.Clone(raw),
		rng:    rng,
		limit:  MaxNameStorage,
	}, nil
}

// ID returns the identity of the definition, usually "<import path>.<Type>".
func (d *Definition[T]) ID() string { return d.id }

// Size returns the number of declared constants.
func (d *Definition[T]) Size() int { return len(d.values) }

// Range returns the range metadata of the declared values.
func (d *Definition[T]) Range() Range[T] { return d.rng }

// Min returns the smallest declared value.
func (d *Definition[T]) Min() T { return d.rng.Min }

// Max returns the largest declared value.
func (d *Definition[T]) Max() T { return d.rng.Max }

// First returns the first declared value.
func (d *Definition[T]) First() T { return d.rng.First }

// Last returns the last declared value.
func (d *Definition[T]) Last() T { return d.rng.Last }

// Span returns Max - Min + 1.
func (d *Definition[T]) Span() uint64 { return d.rng.Span }

// RawNames returns a copy of the raw declaration texts.
func (d *Definition[T]) RawNames() []string { return slices.Clone(d.raw) }

// ProcessNames computes the processed names if they were not computed yet.
// Concurrent first calls are safe: one of them runs the processor and the
// others wait for its result. A failure is cached and never retried.
func (d *Definition[T]) ProcessNames() error {
	d.once.Do(func() {
		d.names, d.namesErr = processNames(d.id, d.raw, d.limit)
	})
	return d.namesErr
}

// processedNames returns the shared processed names.
func (d *Definition[T]) processedNames() ([]string, error) {
	if err := d.ProcessNames(); err != nil {
		return nil, err
	}
	return d.names, nil
}

// NameAt returns the processed name of the i-th declared constant.
func (d *Definition[T]) NameAt(i int) (string, error) {
	names, err := d.processedNames()
	if err != nil {
		return "", err
	}
	return names[i], nil
}

// ValueAt returns the i-th declared value.
func (d *Definition[T]) ValueAt(i int) T { return d.values[i] }

// Index returns the declaration index of the first constant holding v, or
// NotFound.
func (d *Definition[T]) Index(v T) int {
	for i, dv := range d.values {
		if dv == v {
			return i
		}
	}
	return NotFound
}

// FromInt returns v if it is a declared value, or an InvalidValueError.
func (d *Definition[T]) FromInt(v T) (T, error) {
	i := d.Index(v)
	if i == NotFound {
		return v, NewInvalidValueError(d.id, "from_int", v)
	}
	return d.values[i], nil
}

// IsValid reports whether v is a declared value.
func (d *Definition[T]) IsValid(v T) bool {
	return d.Index(v) != NotFound
}

// Name returns the processed name of the first constant holding v. It fails
// with an InvalidValueError if v is not declared, which is only reachable
// through unchecked construction.
func (d *Definition[T]) Name(v T) (string, error) {
	names, err := d.processedNames()
	if err != nil {
		return "", err
	}
	i := d.Index(v)
	if i == NotFound {
		return "", NewInvalidValueError(d.id, "to_string", v)
	}
	return names[i], nil
}

// IndexOfName returns the declaration index of the first constant named
// name, or NotFound. The first call triggers name processing; matching
// itself runs against the raw declarations with the ender-aware matcher.
func (d *Definition[T]) IndexOfName(name string) int {
	_ = d.ProcessNames()
	return d.scanNames(name, namesMatch)
}

// IndexOfNameNocase is IndexOfName with ASCII case folding.
func (d *Definition[T]) IndexOfNameNocase(name string) int {
	_ = d.ProcessNames()
	return d.scanNames(name, namesMatchNocase)
}

func (d *Definition[T]) scanNames(name string, match func(raw, ref string) bool) int {
	for i, raw := range d.raw {
		if match(raw, name) {
			return i
		}
	}
	return NotFound
}

// FromString returns the value of the first constant named name, or an
// InvalidNameError. A failed name processing is reported as is.
func (d *Definition[T]) FromString(name string) (T, error) {
	return d.fromString(name, false)
}

// FromStringNocase is FromString with ASCII case folding.
func (d *Definition[T]) FromStringNocase(name string) (T, error) {
	return d.fromString(name, true)
}

func (d *Definition[T]) fromString(name string, nocase bool) (T, error) {
	var zero T
	if err := d.ProcessNames(); err != nil {
		return zero, err
	}
	match := namesMatch
	if nocase {
		match = namesMatchNocase
	}
	i := d.scanNames(name, match)
	if i == NotFound {
		return zero, NewInvalidNameError(d.id, name, nocase)
	}
	return d.values[i], nil
}

// IsValidName reports whether name is a declared constant name.
func (d *Definition[T]) IsValidName(name string) bool {
	return d.IndexOfName(name) != NotFound
}

// IsValidNameNocase reports whether name matches a declared constant name
// ignoring ASCII case.
func (d *Definition[T]) IsValidNameNocase(name string) bool {
	return d.IndexOfNameNocase(name) != NotFound
}

// underlying returns the Go name of T, used in registry snapshots.
func (d *Definition[T]) underlying() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
