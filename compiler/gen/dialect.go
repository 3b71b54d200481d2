package gen

import "github.com/dave/jennifer/jen"

// EnumGenerator generates per-enum code.
// It is called once per enumerated type of the graph.
type EnumGenerator interface {
	// GenEnum generates the enum file ({type}_enum.go).
	GenEnum(t *Type) *jen.File
}

// FeatureGenerator is implemented by dialects that support only a subset
// of the codegen features.
type FeatureGenerator interface {
	// SupportsFeature checks if the dialect supports a feature.
	SupportsFeature(feature string) bool
}

// DialectGenerator defines the interface for dialect-specific code
// generation. A dialect decides the shape of the generated type: the
// facade dialect emits a struct wrapper around the underlying integer.
//
// Methods return *jen.File containing the generated code. The
// JenniferGenerator orchestrates calling these methods and writing the
// files to disk.
//
// Usage:
//
//	import "github.com/syssam/venum/compiler/gen/facade"
//
//	generator := gen.NewJenniferGenerator(graph, outDir)
//	generator.WithDialect(facade.NewDialect(generator))
type DialectGenerator interface {
	// Name returns the dialect name (e.g., "facade").
	Name() string
	EnumGenerator
}

// GeneratorHelper provides helper methods for dialect implementations.
// JenniferGenerator implements this interface, allowing dialect packages
// to use helper methods without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File

	// Graph returns the enum graph.
	Graph() *Graph

	// Pkg returns the output package name.
	Pkg() string

	// RuntimePkg returns the import path of the venum runtime.
	RuntimePkg() string

	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool
}
