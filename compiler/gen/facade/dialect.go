// Package facade provides the facade dialect of the Jennifer generator.
//
// The facade dialect renders every enum as a struct wrapping its underlying
// integer, so the generated type is comparable with == but supports no
// arithmetic, bitwise or logical operators, and can only be built from a
// bare integer through the generated constructors.
//
// Usage:
//
//	import (
//	    "github.com/syssam/venum/compiler/gen"
//	    "github.com/syssam/venum/compiler/gen/facade"
//	)
//
//	generator := gen.NewJenniferGenerator(graph, outDir)
//	generator.WithDialect(facade.NewDialect(generator))
//	generator.Generate(ctx)
//
// Generated code structure:
//
//	{output}/
//	└── {enum}_enum.go    # Type, constants, range, definition, methods
package facade

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/venum/compiler/gen"
)

// Generator renders a graph with the facade dialect. It is the default
// generator of compiler.Generate.
var Generator gen.Generator = gen.DialectFunc(func(h gen.GeneratorHelper) gen.DialectGenerator {
	return NewDialect(h)
})

// Generate is a convenience function to generate facade code for g using
// the Jennifer generator, applying the hooks registered in its config.
func Generate(g *gen.Graph) error {
	c := *g.Config
	c.Generator = Generator
	fg := *g
	fg.Config = &c
	return fg.Gen()
}

// Dialect implements gen.DialectGenerator for struct-wrapper enums.
type Dialect struct {
	helper gen.GeneratorHelper
}

// NewDialect creates a new facade dialect generator.
// The helper parameter should be a *gen.JenniferGenerator.
func NewDialect(helper gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: helper}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "facade"
}

// SupportsFeature reports whether the dialect can generate the feature.
func (d *Dialect) SupportsFeature(feature string) bool {
	switch feature {
	case gen.FeatureText.Name, gen.FeatureSQL.Name, gen.FeatureEager.Name, gen.FeatureMust.Name:
		return true
	default:
		return false
	}
}

// GenEnum generates the enum file ({enum}_enum.go).
// Includes: facade type, declared constants, range metadata, the shared
// definition, methods, lookup functions and the enabled features.
func (d *Dialect) GenEnum(t *gen.Type) *jen.File {
	return genEnum(d.helper, t)
}

var (
	_ gen.DialectGenerator = (*Dialect)(nil)
	_ gen.FeatureGenerator = (*Dialect)(nil)
)
