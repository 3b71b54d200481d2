package load

import (
	"go/token"
	"go/types"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/syssam/venum"
)

// Declaration is a parsed raw constant declaration.
type Declaration struct {
	// Name is the declared constant name.
	Name string
	// Expr is the value expression, empty when the value is implicit.
	Expr string
}

// ParseDeclaration splits a raw declaration of the form "NAME" or
// "NAME = expression" into its parts.
func ParseDeclaration(raw string) (Declaration, error) {
	name := venum.TrimName(raw)
	switch {
	case name == "":
		return Declaration{}, errors.Newf("declaration %q: missing constant name", raw)
	case name == "_" || !token.IsIdentifier(name):
		return Declaration{}, errors.WithHint(
			errors.Newf("declaration %q: invalid constant name %q", raw, name),
			"constant names must be Go identifiers",
		)
	}
	rest := strings.TrimLeft(raw[len(name):], " \t\n")
	if rest == "" {
		return Declaration{Name: name}, nil
	}
	if rest[0] != '=' {
		return Declaration{}, errors.Newf("declaration %q: expected '=' after %s", raw, name)
	}
	expr := strings.TrimSpace(rest[1:])
	if expr == "" {
		return Declaration{}, errors.Newf("declaration %q: missing value expression", raw)
	}
	return Declaration{Name: name, Expr: expr}, nil
}

// kinds maps the supported underlying type names to their kinds.
var kinds = map[string]types.BasicKind{
	"int":    types.Int,
	"int8":   types.Int8,
	"int16":  types.Int16,
	"int32":  types.Int32,
	"int64":  types.Int64,
	"uint":   types.Uint,
	"uint8":  types.Uint8,
	"uint16": types.Uint16,
	"uint32": types.Uint32,
	"uint64": types.Uint64,
	"byte":   types.Uint8,
	"rune":   types.Int32,
}

// Kind returns the kind of the underlying integral type.
func (e *Enum) Kind() (types.BasicKind, error) {
	if e.Type == "" {
		return types.Int, nil
	}
	k, ok := kinds[e.Type]
	if !ok {
		return types.Invalid, errors.WithHint(
			errors.Newf("enum %s: unsupported underlying type %q", e.Name, e.Type),
			"use one of int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, byte or rune",
		)
	}
	return k, nil
}

// Underlying returns the canonical name of the underlying type, for example
// "uint8" for an enum declared with type "byte".
func (e *Enum) Underlying() (string, error) {
	k, err := e.Kind()
	if err != nil {
		return "", err
	}
	return types.Typ[k].Name(), nil
}
