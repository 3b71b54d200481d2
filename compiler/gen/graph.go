package gen

import (
	"context"
	"errors"
	"go/token"
	"path"

	"github.com/syssam/venum/compiler/load"
)

// Graph holds the enumerated types of one generated package.
type Graph struct {
	*Config
	// PkgName is the Go package name of the generated files.
	PkgName string
	// Nodes are the enumerated types, in declaration order.
	Nodes []*Type

	ctx context.Context
}

// NewGraph creates a new graph for the given declarations. All declaration
// errors are collected and returned together.
func NewGraph(c *Config, f *load.File) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "missing config")
	}
	if f == nil {
		return nil, NewConfigError("File", nil, "missing declarations")
	}
	// Each graph resolves its own package, so callers may share a config.
	cfg := *c
	if cfg.Package == "" {
		cfg.Package = f.ImportPath
	}
	if cfg.Package == "" {
		if cfg.Target == "" {
			return nil, NewConfigError("Package", nil, "missing package import path and target directory")
		}
		pkg, err := load.ImportPath(cfg.Target)
		if err != nil {
			return nil, NewConfigError("Package", nil, err.Error())
		}
		cfg.Package = pkg
	}
	g := &Graph{Config: &cfg, PkgName: f.Package}
	if g.PkgName == "" {
		g.PkgName = path.Base(cfg.Package)
	}
	if !token.IsIdentifier(g.PkgName) {
		return nil, NewConfigError("Package", g.PkgName, "package name is not a valid identifier")
	}
	var (
		errs  []error
		files = make(map[string]string, len(f.Enums))
	)
	for _, e := range f.Enums {
		t, err := NewType(g.Config, cfg.Package, e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, ok := files[t.FileName()]; ok {
			errs = append(errs, NewDeclarationError(t.Name, "", "file "+t.FileName()+" is also generated for "+prev, nil))
			continue
		}
		files[t.FileName()] = t.Name
		g.Nodes = append(g.Nodes, t)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return g, nil
}

// Gen generates the artifacts for the graph. The configured hooks are
// applied in reverse order, so the first hook is the outermost.
func (g *Graph) Gen() error {
	if g.Generator == nil {
		return NewConfigError("Generator", nil, "no generator set")
	}
	var gen Generator = g.Generator
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		gen = g.Hooks[i](gen)
	}
	return gen.Generate(g)
}

// GenContext is like Gen but generators rendering files stop once ctx is
// done. The graph itself is not modified.
func (g *Graph) GenContext(ctx context.Context) error {
	gc := *g
	gc.ctx = ctx
	return gc.Gen()
}

// Context returns the context of the running generation.
func (g *Graph) Context() context.Context {
	if g.ctx == nil {
		return context.Background()
	}
	return g.ctx
}

// Type returns the node with the given name.
func (g *Graph) Type(name string) (*Type, bool) {
	for _, t := range g.Nodes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
