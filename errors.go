package venum

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for enum definitions and lookups.
var (
	// ErrEmptyDefinition is returned when a definition declares no constants.
	ErrEmptyDefinition = errors.New("venum: no constants defined in enum type")

	// ErrAllocation is returned when storage for processed names cannot be
	// allocated.
	ErrAllocation = errors.New("venum: name storage allocation failed")

	// ErrInvalidValue is returned by strict lookups given a value that is not
	// a declared member.
	ErrInvalidValue = errors.New("venum: invalid integer value")

	// ErrInvalidName is returned by strict lookups given a name that is not
	// a declared member.
	ErrInvalidName = errors.New("venum: invalid string argument")

	// ErrInvalidDefinition is returned when a definition is malformed or
	// conflicts with an earlier registration of the same identity.
	ErrInvalidDefinition = errors.New("venum: invalid definition")
)

// EmptyDefinitionError represents an attempt to build a definition with zero
// declared constants.
type EmptyDefinitionError struct {
	enum string
}

// Error returns the error string.
func (e *EmptyDefinitionError) Error() string {
	if e.enum == "" {
		return ErrEmptyDefinition.Error()
	}
	return fmt.Sprintf("venum: no constants defined in enum type %s", e.enum)
}

// Is reports whether the target error matches EmptyDefinitionError.
func (e *EmptyDefinitionError) Is(err error) bool {
	return err == ErrEmptyDefinition
}

// Enum returns the identity of the empty definition.
func (e *EmptyDefinitionError) Enum() string {
	return e.enum
}

// NewEmptyDefinitionError returns a new EmptyDefinitionError.
func NewEmptyDefinitionError(enum string) *EmptyDefinitionError {
	return &EmptyDefinitionError{enum: enum}
}

// IsEmptyDefinition returns true if the error is an EmptyDefinitionError.
func IsEmptyDefinition(err error) bool {
	if err == nil {
		return false
	}
	var e *EmptyDefinitionError
	return errors.As(err, &e) || errors.Is(err, ErrEmptyDefinition)
}

// AllocationError represents a failure to allocate processed-name storage.
// It is fatal for the definition: processing is never retried.
type AllocationError struct {
	Enum  string // Definition identity
	Bytes uint64 // Requested storage size
	Limit uint64 // Maximum allowed storage size
}

// Error returns the error string.
func (e *AllocationError) Error() string {
	var b strings.Builder
	b.WriteString("venum: name storage allocation failed")
	if e.Enum != "" {
		b.WriteString(" for ")
		b.WriteString(e.Enum)
	}
	fmt.Fprintf(&b, " (requested %d bytes, limit %d)", e.Bytes, e.Limit)
	return b.String()
}

// Is reports whether the target error matches AllocationError.
func (e *AllocationError) Is(err error) bool {
	return err == ErrAllocation
}

// IsAllocation returns true if the error is an AllocationError.
func IsAllocation(err error) bool {
	if err == nil {
		return false
	}
	var e *AllocationError
	return errors.As(err, &e) || errors.Is(err, ErrAllocation)
}

// InvalidValueError represents a strict lookup of a value that is not a
// declared member of the enum.
type InvalidValueError struct {
	enum  string
	op    string
	value any
}

// Error returns the error string.
func (e *InvalidValueError) Error() string {
	var b strings.Builder
	b.WriteString("venum: ")
	if e.op != "" {
		b.WriteString(e.op)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "invalid integer value %v", e.value)
	if e.enum != "" {
		b.WriteString(" for ")
		b.WriteString(e.enum)
	}
	return b.String()
}

// Is reports whether the target error matches InvalidValueError.
func (e *InvalidValueError) Is(err error) bool {
	return err == ErrInvalidValue
}

// Enum returns the identity of the enum that was searched.
func (e *InvalidValueError) Enum() string {
	return e.enum
}

// Value returns the value that was searched for.
func (e *InvalidValueError) Value() any {
	return e.value
}

// NewInvalidValueError returns a new InvalidValueError for the given
// operation ("from_int", "to_string", ...).
func NewInvalidValueError(enum, op string, value any) *InvalidValueError {
	return &InvalidValueError{enum: enum, op: op, value: value}
}

// IsInvalidValue returns true if the error is an InvalidValueError.
func IsInvalidValue(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidValueError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidValue)
}

// InvalidNameError represents a strict lookup of a name that is not a
// declared member of the enum.
type InvalidNameError struct {
	enum   string
	name   string
	nocase bool
}

// Error returns the error string.
func (e *InvalidNameError) Error() string {
	op := "from_string"
	if e.nocase {
		op = "from_string_nocase"
	}
	if e.enum != "" {
		return fmt.Sprintf("venum: %s: invalid string argument %q for %s", op, e.name, e.enum)
	}
	return fmt.Sprintf("venum: %s: invalid string argument %q", op, e.name)
}

// Is reports whether the target error matches InvalidNameError.
func (e *InvalidNameError) Is(err error) bool {
	return err == ErrInvalidName
}

// Enum returns the identity of the enum that was searched.
func (e *InvalidNameError) Enum() string {
	return e.enum
}

// Name returns the name that was searched for.
func (e *InvalidNameError) Name() string {
	return e.name
}

// Nocase reports whether the failed lookup was case-insensitive.
func (e *InvalidNameError) Nocase() bool {
	return e.nocase
}

// NewInvalidNameError returns a new InvalidNameError.
func NewInvalidNameError(enum, name string, nocase bool) *InvalidNameError {
	return &InvalidNameError{enum: enum, name: name, nocase: nocase}
}

// IsInvalidName returns true if the error is an InvalidNameError.
func IsInvalidName(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidNameError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidName)
}

// DefinitionError represents a malformed definition or a registration that
// conflicts with an existing one.
type DefinitionError struct {
	Enum    string
	Message string
}

// Error returns the error string.
func (e *DefinitionError) Error() string {
	return fmt.Sprintf("venum: invalid definition %s: %s", e.Enum, e.Message)
}

// Is reports whether the target error matches DefinitionError.
func (e *DefinitionError) Is(err error) bool {
	return err == ErrInvalidDefinition
}

// IsDefinitionError returns true if the error is a DefinitionError.
func IsDefinitionError(err error) bool {
	if err == nil {
		return false
	}
	var e *DefinitionError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidDefinition)
}
