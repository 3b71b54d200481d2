package gen

import (
	"context"
	"os"
	"time"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
)

// JenniferGenerator generates code using Jennifer. Each enum is rendered
// into its own file by the configured dialect, and the files are written
// in parallel.
type JenniferGenerator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string

	// Dialect generator for the shape of the generated types
	dialect DialectGenerator

	// Optional interface implementations detected at runtime
	featureGen FeatureGenerator

	writer *Writer
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/syssam/venum/compiler/gen/facade"
//
//	gen := gen.NewJenniferGenerator(graph, outDir)
//	gen.WithDialect(facade.NewDialect(gen))
//	gen.Generate(ctx)
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	return &JenniferGenerator{
		graph:   g,
		workers: g.workers(),
		outDir:  outDir,
		pkg:     g.PkgName,
		writer:  NewWriter(outDir, g.Check, g.logger()),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithDialect sets the dialect generator.
// Additional capabilities are detected via FeatureGenerator.
func (g *JenniferGenerator) WithDialect(d DialectGenerator) *JenniferGenerator {
	if d != nil {
		g.dialect = d
		// Detect optional capabilities via type assertion
		if fg, ok := d.(FeatureGenerator); ok {
			g.featureGen = fg
		}
	}
	return g
}

// Writer returns the writer of the generator, for inspecting its metrics.
func (g *JenniferGenerator) Writer() *Writer {
	return g.writer
}

// Generate generates all enum files with parallel execution.
// Returns an error if no dialect has been set via WithDialect(), if an
// enabled feature is not supported by the dialect, or, in check mode, if
// any file is out of date.
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	if g.featureGen != nil {
		for _, f := range g.graph.Features {
			if !g.featureGen.SupportsFeature(f.Name) {
				return NewConfigError("Features", f.Name, "feature is not supported by the "+g.dialect.Name()+" dialect")
			}
		}
	}
	if !g.graph.Check {
		if err := os.MkdirAll(g.outDir, 0o755); err != nil {
			return NewGenerationError("write", g.outDir, "create output directory", err)
		}
	}
	log := g.graph.logger().With("dialect", g.dialect.Name(), "package", g.graph.Package)
	start := time.Now()

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, t := range g.graph.Nodes {
		errg.Go(func() error {
			f := g.dialect.GenEnum(t)
			if f == nil {
				return NewGenerationError("render", t.FileName(), "dialect returned no file for "+t.Name, nil)
			}
			return g.writer.Write(ctx, f, t.FileName())
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}

	m := g.writer.Metrics()
	log.Info("generation finished",
		"enums", len(g.graph.Nodes),
		"written", m.FilesGenerated,
		"unchanged", m.FilesUnchanged,
		"bytes", m.TotalBytes,
		"duration", time.Since(start),
	)
	if stale := g.writer.Stale(); len(stale) > 0 {
		return NewValidationError("", "generated files are out of date", stale...)
	}
	return nil
}

// =============================================================================
// GeneratorHelper interface implementation
// These exported methods allow dialect packages to access helper functionality.
// =============================================================================

// NewFile creates a new Jennifer file with the standard header comment.
func (g *JenniferGenerator) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(g.graph.header())
	f.ImportName(RuntimePkg, "venum")
	return f
}

// Graph returns the enum graph.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// Pkg returns the output package name.
func (g *JenniferGenerator) Pkg() string {
	return g.pkg
}

// RuntimePkg returns the import path of the venum runtime.
func (g *JenniferGenerator) RuntimePkg() string {
	return RuntimePkg
}

// FeatureEnabled reports if the given feature name is enabled.
func (g *JenniferGenerator) FeatureEnabled(name string) bool {
	enabled, _ := g.graph.FeatureEnabled(name)
	return enabled
}

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)

// DialectFunc creates the dialect of a generator. It implements Generator
// by rendering the graph into its target directory with that dialect.
//
//	cfg.Generator = gen.DialectFunc(func(h gen.GeneratorHelper) gen.DialectGenerator {
//		return facade.NewDialect(h)
//	})
type DialectFunc func(GeneratorHelper) DialectGenerator

// Generate implements the Generator interface.
func (fn DialectFunc) Generate(g *Graph) error {
	if g.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	gen := NewJenniferGenerator(g, g.Target)
	return gen.WithDialect(fn(gen)).Generate(g.Context())
}
