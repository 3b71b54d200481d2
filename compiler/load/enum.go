package load

import (
	"bytes"
	"encoding/json"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// File represents a set of enum declarations that are generated into one
// Go package.
type File struct {
	// Package is the Go package name of the generated code.
	Package string `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty"`
	// Enums are the declared enumerated types, in declaration order.
	Enums []*Enum `json:"enums,omitempty" yaml:"enums,omitempty" toml:"enums,omitempty"`

	// Path is the file (or package directory) the declarations were read from.
	Path string `json:"-" yaml:"-" toml:"-"`
	// ImportPath is the import path of the generated package, when known
	// from the source. Declaration files leave it empty.
	ImportPath string `json:"-" yaml:"-" toml:"-"`
}

// Enum represents one enumerated type declaration.
type Enum struct {
	// Name is the Go name of the generated type.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	// Type is the underlying integral type. Defaults to "int".
	Type string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	// Doc is an optional doc comment for the generated type.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
	// Constants are the raw declarations: "NAME" or "NAME = expression".
	Constants []string `json:"constants,omitempty" yaml:"constants,omitempty" toml:"constants,omitempty"`

	// Source is the name of the Go type the enum was extracted from, if any.
	Source string `json:"-" yaml:"-" toml:"-"`
}

// Format is a declaration file format.
type Format string

// Supported declaration file formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf returns the declaration format of path by its extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// IsDeclarationFile reports whether path names a declaration file.
func IsDeclarationFile(path string) bool {
	_, ok := FormatOf(path)
	return ok
}

// ReadFile reads and validates the declaration file at path.
func ReadFile(path string) (*File, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, errors.WithHint(
			errors.Newf("unsupported declaration file %q", path),
			"use a .yaml, .yml, .toml or .json file",
		)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read declarations")
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	f.Path = path
	if f.Package == "" {
		f.Package = packageName(filepath.Base(filepath.Dir(path)))
	}
	if err := f.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return f, nil
}

// Decode decodes declarations in the given format. It does not validate them.
func Decode(data []byte, format Format) (*File, error) {
	f := &File{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil {
			return nil, errors.Wrap(err, "yaml")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), f)
		if err != nil {
			return nil, errors.Wrap(err, "toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Newf("toml: unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, errors.Wrap(err, "json")
		}
	default:
		return nil, errors.Newf("unknown declaration format %q", format)
	}
	return f, nil
}

// Validate checks the declarations for structural errors. Constant values are
// checked by Evaluate.
func (f *File) Validate() error {
	if !token.IsIdentifier(f.Package) {
		return errors.Newf("invalid package name %q", f.Package)
	}
	if len(f.Enums) == 0 {
		return errors.WithHint(errors.New("no enums declared"), "add at least one entry to the enums list")
	}
	seen := make(map[string]bool, len(f.Enums))
	for i, e := range f.Enums {
		if e == nil {
			return errors.Newf("enum #%d is empty", i)
		}
		if !token.IsIdentifier(e.Name) || !token.IsExported(e.Name) {
			return errors.WithHint(
				errors.Newf("invalid enum name %q", e.Name),
				"enum names must be exported Go identifiers",
			)
		}
		if seen[e.Name] {
			return errors.Newf("enum %s declared more than once", e.Name)
		}
		seen[e.Name] = true
		if _, err := e.Kind(); err != nil {
			return err
		}
		if len(e.Constants) == 0 {
			return errors.WithHint(
				errors.Newf("enum %s: no constants defined", e.Name),
				"an enum needs at least one constant",
			)
		}
	}
	return nil
}

// packageName turns a directory name into a Go package name.
func packageName(dir string) string {
	name := strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return '_'
		}
		return r
	}, strings.ToLower(dir))
	if !token.IsIdentifier(name) {
		return "enums"
	}
	return name
}
