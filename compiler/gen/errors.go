package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidDeclaration indicates an enum declaration error.
	ErrInvalidDeclaration = errors.New("venum: invalid declaration")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("venum: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("venum: code generation failed")
	// ErrValidationFailed indicates a validation failure.
	ErrValidationFailed = errors.New("venum: validation failed")
)

// DeclarationError represents an enum declaration error.
type DeclarationError struct {
	Enum     string // Enum type name
	Constant string // Constant name (if applicable)
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *DeclarationError) Error() string {
	var b strings.Builder
	b.WriteString("venum: declaration error")
	if e.Enum != "" {
		b.WriteString(" on enum ")
		b.WriteString(e.Enum)
	}
	if e.Constant != "" {
		b.WriteString(" constant ")
		b.WriteString(e.Constant)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DeclarationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for DeclarationError.
func (e *DeclarationError) Is(target error) bool {
	return target == ErrInvalidDeclaration
}

// NewDeclarationError creates a new DeclarationError.
func NewDeclarationError(enum, constant, message string, cause error) *DeclarationError {
	return &DeclarationError{
		Enum:     enum,
		Constant: constant,
		Message:  message,
		Cause:    cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("venum: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("venum: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "render", "format", "write"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("venum: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError represents a validation error of the generated output,
// such as files that are out of date in check mode.
type ValidationError struct {
	Enum    string
	Files   []string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("venum: validation error")
	if e.Enum != "" {
		b.WriteString(" on enum ")
		b.WriteString(e.Enum)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Files) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Files, ", "))
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError creates a new ValidationError.
func NewValidationError(enum, message string, files ...string) *ValidationError {
	return &ValidationError{
		Enum:    enum,
		Files:   files,
		Message: message,
	}
}

// IsDeclarationError reports whether the error is a DeclarationError.
func IsDeclarationError(err error) bool {
	var declErr *DeclarationError
	return errors.As(err, &declErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsValidationError reports whether the error is a ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
