// Package compiler provides an API for generating venum enums from
// declaration files or from the constants of a Go package.
package compiler

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/syssam/venum/compiler/gen"
	"github.com/syssam/venum/compiler/gen/facade"
	"github.com/syssam/venum/compiler/load"
)

// Generate loads the declarations at path and generates the enum files
// for them. If cfg.Generator is nil, the facade dialect is used.
//
// The path is either a declaration file (.yaml, .yml, .toml or .json), or
// a Go package pattern together with cfg.SourceTypes:
//
//	compiler.Generate("./color/colors.yaml", &gen.Config{})
//	compiler.Generate("./level", &gen.Config{SourceTypes: []string{"level=Level"}})
func Generate(path string, cfg *gen.Config) error {
	return GenerateContext(context.Background(), path, cfg)
}

// GenerateContext is like Generate but stops writing files once ctx is done.
func GenerateContext(ctx context.Context, path string, cfg *gen.Config) error {
	graph, err := LoadGraph(path, cfg)
	if err != nil {
		return err
	}
	if graph.Generator == nil {
		graph.Generator = facade.Generator
	}
	return graph.GenContext(ctx)
}

// LoadGraph loads the declarations at path and builds the graph of their
// enums. The target directory defaults to the directory of the declarations.
func LoadGraph(path string, cfg *gen.Config) (*gen.Graph, error) {
	if cfg == nil {
		return nil, gen.NewConfigError("Config", nil, "missing config")
	}
	f, err := Load(path, cfg)
	if err != nil {
		return nil, err
	}
	c := *cfg
	if c.Target == "" {
		c.Target = f.Path
		if load.IsDeclarationFile(f.Path) {
			c.Target = filepath.Dir(f.Path)
		}
	}
	graph, err := gen.NewGraph(&c, f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return graph, nil
}

// Load reads the declarations at path. Declaration files are recognized
// by their extension; any other path is loaded as a Go package and the
// constants of cfg.SourceTypes are extracted from it.
func Load(path string, cfg *gen.Config) (*load.File, error) {
	if load.IsDeclarationFile(path) {
		return load.ReadFile(path)
	}
	pc := load.PackageConfig{Pattern: path}
	if cfg != nil {
		pc.BuildFlags = cfg.BuildFlags
		for _, s := range cfg.SourceTypes {
			m, err := load.ParseTypeMapping(s)
			if err != nil {
				return nil, err
			}
			pc.Types = append(pc.Types, m)
		}
	}
	return load.LoadPackage(pc)
}
