// Package venum is the runtime support library of generated enumerated types.
//
// A generated enum is a struct wrapper around an integral value, backed by a
// shared Definition that holds the declared values and their raw declaration
// texts:
//
//	var colorDef = venum.MustRegister("example.com/color.Color",
//	    []int32{0, 5, 6},
//	    []string{"RED", "GREEN = 5", "BLUE"},
//	)
//
// Range metadata (Size, Min, Max, First, Last, Span) is computed when the
// definition is built. Processed names are derived from the raw declarations
// on first need, exactly once per definition, into one contiguous backing
// string that every caller shares.
//
// # Lookups
//
// All lookups are linear scans in declaration order. Duplicate values and
// names are permitted and resolve to the first declared match. Strict lookups
// return typed errors:
//
//   - InvalidValueError: FromInt or Name given an undeclared value
//   - InvalidNameError: FromString or FromStringNocase given an unknown name
//   - AllocationError: processed-name storage could not be allocated
//   - EmptyDefinitionError: a definition with no constants
//   - DefinitionError: mismatched or conflicting registrations
//
// Case-insensitive lookups fold ASCII letters only.
//
// # Iteration
//
// Values, Names and All return restartable iter sequences; every range
// statement owns its own cursor.
//
// # Registry
//
// Register and MustRegister key definitions by identity, conventionally
// "<import path>.<Type>". Registering the same identity twice with identical
// declarations returns the same definition, so every user of one enum shares
// one set of processed names.
package venum
