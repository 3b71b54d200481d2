package load

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"
)

// TypeMapping names a Go source type and the enum generated for it.
type TypeMapping struct {
	Source string
	Target string
}

// ParseTypeMapping parses "Source=Target" or "Source". Without a target, an
// exported source gets the "Enum" suffix and an unexported one is
// capitalized: "Color" becomes "ColorEnum" and "color" becomes "Color".
func ParseTypeMapping(s string) (TypeMapping, error) {
	source, target, _ := strings.Cut(s, "=")
	source, target = strings.TrimSpace(source), strings.TrimSpace(target)
	if !token.IsIdentifier(source) {
		return TypeMapping{}, errors.Newf("invalid source type %q", source)
	}
	if target == "" {
		target = defaultTarget(source)
	}
	if !token.IsIdentifier(target) || !token.IsExported(target) {
		return TypeMapping{}, errors.WithHint(
			errors.Newf("invalid target type %q", target),
			"target names must be exported Go identifiers",
		)
	}
	if target == source {
		return TypeMapping{}, errors.Newf("target type %s must differ from its source", target)
	}
	return TypeMapping{Source: source, Target: target}, nil
}

func defaultTarget(source string) string {
	if token.IsExported(source) {
		return source + "Enum"
	}
	r, size := utf8.DecodeRuneInString(source)
	return string(unicode.ToUpper(r)) + source[size:]
}

// PackageConfig configures LoadPackage.
type PackageConfig struct {
	// Pattern is the package to load, a directory or an import path.
	Pattern string
	// Types are the source types to extract.
	Types []TypeMapping
	// BuildFlags are passed to the build system.
	BuildFlags []string
}

// LoadPackage loads a Go package and extracts one enum per requested source
// type from the package-level constants of that type, in source order.
func LoadPackage(cfg PackageConfig) (*File, error) {
	if len(cfg.Types) == 0 {
		return nil, errors.WithHint(
			errors.Newf("no types requested from %s", cfg.Pattern),
			"name the source types to extract (--type Source[=Target])",
		)
	}
	pkgs, err := packages.Load(&packages.Config{
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		BuildFlags: cfg.BuildFlags,
	}, cfg.Pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "load package %s", cfg.Pattern)
	}
	if len(pkgs) != 1 {
		return nil, errors.Newf("%s: expected one package, found %d", cfg.Pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, errors.WithHint(
			errors.Wrapf(pkg.Errors[0], "load package %s", cfg.Pattern),
			"constants are read from packages that compile",
		)
	}
	if pkg.Types == nil || pkg.TypesInfo == nil {
		return nil, errors.Newf("load package %s: no type information", cfg.Pattern)
	}
	f := &File{
		Package:    pkg.Name,
		ImportPath: pkg.PkgPath,
		Path:       cfg.Pattern,
	}
	if len(pkg.GoFiles) > 0 {
		f.Path = filepath.Dir(pkg.GoFiles[0])
	}
	for _, m := range cfg.Types {
		e, err := extract(pkg, m)
		if err != nil {
			return nil, err
		}
		f.Enums = append(f.Enums, e)
	}
	if err := f.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", pkg.PkgPath)
	}
	return f, nil
}

// extract collects the constants of one source type.
func extract(pkg *packages.Package, m TypeMapping) (*Enum, error) {
	tn, ok := pkg.Types.Scope().Lookup(m.Source).(*types.TypeName)
	if !ok {
		return nil, errors.Newf("%s: type %s not found", pkg.PkgPath, m.Source)
	}
	basic, ok := tn.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 || basic.Kind() == types.Uintptr {
		return nil, errors.WithHint(
			errors.Newf("%s.%s: underlying type %s is not supported", pkg.PkgPath, m.Source, tn.Type().Underlying()),
			"enums are backed by a sized or platform integer type",
		)
	}
	e := &Enum{
		Name:   m.Target,
		Type:   basic.Name(),
		Source: m.Source,
		Doc:    m.Target + " enumerates the constants of " + m.Source + ".",
	}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			for _, spec := range gd.Specs {
				for _, ident := range spec.(*ast.ValueSpec).Names {
					c, ok := pkg.TypesInfo.Defs[ident].(*types.Const)
					if !ok || ident.Name == "_" || !types.Identical(c.Type(), tn.Type()) {
						continue
					}
					e.Constants = append(e.Constants, ident.Name+" = "+c.Val().ExactString())
				}
			}
		}
	}
	if len(e.Constants) == 0 {
		return nil, errors.WithHint(
			errors.Newf("%s.%s: no constants declared", pkg.PkgPath, m.Source),
			"declare package-level constants of the type",
		)
	}
	return e, nil
}
