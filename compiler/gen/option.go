package gen

import (
	"errors"
	"go/token"
	"log/slog"
	"strings"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the import path of the generated package.
// For example: "github.com/org/project/internal/color".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name, as given on the command line.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Features", name, "unknown feature; use one of "+strings.Join(FeatureNames(), ", "))
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// WithHooks adds generation hooks.
// Hooks are called before/after code generation.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithBuildFlags sets custom build flags for loading source packages.
func WithBuildFlags(flags ...string) Option {
	return func(c *Config) error {
		c.BuildFlags = append(c.BuildFlags, flags...)
		return nil
	}
}

// WithSourceTypes names the Go types extracted from a source package,
// as "Source" or "Source=Target".
func WithSourceTypes(types ...string) Option {
	return func(c *Config) error {
		for _, t := range types {
			source, _, _ := strings.Cut(t, "=")
			if !token.IsIdentifier(strings.TrimSpace(source)) {
				return NewConfigError("SourceTypes", t, "expected Source or Source=Target")
			}
		}
		c.SourceTypes = append(c.SourceTypes, types...)
		return nil
	}
}

// WithWorkers limits the number of files generated concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithCheck enables check mode: files are rendered and compared with their
// on-disk content, but never written.
func WithCheck(check bool) Option {
	return func(c *Config) error {
		c.Check = check
		return nil
	}
}

// WithFileSuffix sets the suffix appended to generated file names.
func WithFileSuffix(suffix string) Option {
	return func(c *Config) error {
		if strings.ContainsAny(suffix, `/\`) {
			return NewConfigError("FileSuffix", suffix, "suffix cannot contain path separators")
		}
		c.FileSuffix = suffix
		return nil
	}
}

// WithLogger sets the logger used during generation.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithGenerator sets a custom code generator.
// This allows using custom dialects or completely custom code generation.
func WithGenerator(g Generator) Option {
	return func(c *Config) error {
		if g == nil {
			return NewConfigError("Generator", nil, "generator cannot be nil")
		}
		c.Generator = g
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
