// Package gen provides code generation for venum enumerated types.
//
// This package turns evaluated enum declarations into Go source: one file
// per enum, holding the typed facade around the underlying integer and the
// registration of its runtime definition.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Declarations (colors.yaml, or const blocks of a Go package)
//	        ↓
//	   load.File / load.Enum (raw constant texts)
//	        ↓
//	   Graph (evaluated Types with Constants and Range)
//	        ↓
//	   DialectGenerator (shape of the generated type)
//	        ↓
//	   Writer (goimports, unchanged-file detection)
//
// # Key Types
//
//   - Graph: Holds the Type definitions of one generated package
//   - Type: An enum with its evaluated constants and range metadata
//   - Constant: One declared constant and its Go identifier
//   - Config: Global configuration for code generation
//
// # Error Handling
//
// The package uses structured error types:
//
//   - DeclarationError: Invalid enum declarations
//   - ConfigError: Configuration errors
//   - GenerationError: Rendering, formatting and writing errors
//   - ValidationError: Out-of-date files in check mode
//
// Errors of all declarations are collected:
//
//	graph, err := gen.NewGraph(config, file)
//	if gen.IsDeclarationError(err) {
//	    // every invalid enum is listed in err
//	}
//
// # Configuration
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./color"),
//	    gen.WithFeatures(gen.FeatureText, gen.FeatureSQL),
//	)
//	compiler.Generate("./color/colors.yaml", config)
//
// Package is inferred from go.mod when not set.
//
// # Usage
//
//	import "github.com/syssam/venum/compiler/gen/facade"
//
//	err := facade.Generate(graph)
//
// Or manually configure the generator:
//
//	generator := gen.NewJenniferGenerator(graph, outDir).WithWorkers(4)
//	generator.WithDialect(facade.NewDialect(generator))
//	err := generator.Generate(ctx)
//
// # Generated Output
//
//	{target}/
//	├── color_enum.go        // Color facade, constants, lookups
//	└── http_status_enum.go  // one file per enum
package gen
