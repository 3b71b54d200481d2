package gen

import (
	"log/slog"
	"runtime"
	"slices"
)

const (
	// DefaultHeader is the leading comment of every generated file.
	DefaultHeader = "Code generated by venum. DO NOT EDIT."

	// DefaultFileSuffix is appended to the snake-cased type name of every
	// generated file.
	DefaultFileSuffix = "_enum"

	// RuntimePkg is the import path of the runtime imported by generated code.
	RuntimePkg = "github.com/syssam/venum"
)

type (
	// Config holds the global codegen configuration shared by all
	// generated enums.
	Config struct {
		// Target is the output directory of the generated files.
		Target string
		// Package is the import path of the generated package. It is part
		// of every definition identity, and is inferred from the nearest
		// go.mod when empty.
		Package string
		// Header is the leading comment of every generated file.
		Header string
		// Features enabled for the generated code.
		Features []Feature
		// Hooks wrap the generator, for example to log or to emit extra files.
		Hooks []Hook
		// Generator renders the graph. compiler.Generate defaults it to
		// the facade dialect.
		Generator Generator
		// BuildFlags are used when loading Go source packages.
		BuildFlags []string
		// SourceTypes names the Go types to extract from a source package,
		// as "Source" or "Source=Target".
		SourceTypes []string
		// Workers limits concurrent file generation. Zero means GOMAXPROCS.
		Workers int
		// Check renders the files without writing them and reports the
		// ones that differ from their on-disk content.
		Check bool
		// FileSuffix is appended to the snake-cased type name of every
		// generated file. Defaults to DefaultFileSuffix.
		FileSuffix string
		// Logger receives progress messages. Defaults to slog.Default().
		Logger *slog.Logger
	}

	// Generator is the interface that wraps the Generate method.
	Generator interface {
		// Generate generates the code of the given graph.
		Generate(*Graph) error
	}

	// GenerateFunc is an adapter to allow the use of ordinary
	// functions as Generator.
	GenerateFunc func(*Graph) error

	// Hook defines the "generate middleware". A function that gets a Generator
	// and returns a Generator. For example:
	//
	//	hook := func(next gen.Generator) gen.Generator {
	//		return gen.GenerateFunc(func(g *Graph) error {
	//			fmt.Println("Graph:", g)
	//			return next.Generate(g)
	//		})
	//	}
	Hook func(Generator) Generator
)

// Generate calls f(g).
func (f GenerateFunc) Generate(g *Graph) error {
	return f(g)
}

// FeatureEnabled reports if the given feature name is enabled.
// It returns an error for unknown feature names.
func (c Config) FeatureEnabled(name string) (bool, error) {
	for _, f := range AllFeatures {
		if f.Name != name {
			continue
		}
		if f.Default {
			return true, nil
		}
		return slices.ContainsFunc(c.Features, func(e Feature) bool { return e.Name == name }), nil
	}
	return false, NewConfigError("Features", name, "unknown feature")
}

// logger returns the configured logger or the default one.
func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// header returns the configured file header or the default one.
func (c *Config) header() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}

// fileSuffix returns the configured file suffix or the default one.
func (c *Config) fileSuffix() string {
	if c.FileSuffix != "" {
		return c.FileSuffix
	}
	return DefaultFileSuffix
}

// workers returns the configured worker limit or GOMAXPROCS.
func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
