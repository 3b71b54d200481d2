package load

import (
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"github.com/cockroachdb/errors"
)

// Constant is an evaluated constant declaration.
type Constant struct {
	Declaration
	// Raw is the declaration text as written.
	Raw string
	// Value is the exact integer value.
	Value constant.Value
}

// Literal returns the value as a Go integer literal.
func (c *Constant) Literal() string {
	return c.Value.ExactString()
}

// Evaluate evaluates the constant declarations of e in declaration order.
//
// Value expressions are Go constant expressions and may refer to constants
// declared earlier in the same enum. A declaration without an expression
// takes the previous value plus one, and the first defaults to zero. Every
// value must be representable by the underlying type.
func Evaluate(e *Enum) ([]*Constant, error) {
	kind, err := e.Kind()
	if err != nil {
		return nil, err
	}
	if len(e.Constants) == 0 {
		return nil, errors.Newf("enum %s: no constants defined", e.Name)
	}
	var (
		typ    = types.Typ[kind]
		lo, hi = bounds(kind)
		fset   = token.NewFileSet()
		pkg    = types.NewPackage("enum/"+strings.ToLower(e.Name), "enum")
		prev   constant.Value
		consts = make([]*Constant, 0, len(e.Constants))
	)
	for i, raw := range e.Constants {
		d, err := ParseDeclaration(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "enum %s: constant #%d", e.Name, i)
		}
		var v constant.Value
		switch {
		case d.Expr != "":
			v, err = evalExpr(fset, pkg, d.Expr)
			if err != nil {
				return nil, errors.Wrapf(err, "enum %s: constant %s", e.Name, d.Name)
			}
		case prev == nil:
			v = constant.MakeInt64(0)
		default:
			v = constant.BinaryOp(prev, token.ADD, constant.MakeInt64(1))
		}
		if constant.Compare(v, token.LSS, lo) || constant.Compare(v, token.GTR, hi) {
			return nil, errors.WithHintf(
				errors.Newf("enum %s: constant %s: value %s overflows %s", e.Name, d.Name, v.ExactString(), typ.Name()),
				"values of %s must be in [%s, %s]", typ.Name(), lo.ExactString(), hi.ExactString(),
			)
		}
		// Later duplicates of a name do not rebind it: references resolve to
		// the first declaration, as lookups do.
		if pkg.Scope().Lookup(d.Name) == nil {
			pkg.Scope().Insert(types.NewConst(token.NoPos, pkg, d.Name, typ, v))
		}
		prev = v
		consts = append(consts, &Constant{Declaration: d, Raw: raw, Value: v})
	}
	return consts, nil
}

// evalExpr evaluates a constant integer expression in the scope of pkg.
func evalExpr(fset *token.FileSet, pkg *types.Package, expr string) (constant.Value, error) {
	tv, err := types.Eval(fset, pkg, token.NoPos, expr)
	if err != nil {
		if strings.Contains(err.Error(), "undefined:") {
			return nil, errors.WithHint(err, "constants may only refer to constants declared before them")
		}
		return nil, err
	}
	if tv.Value == nil {
		return nil, errors.Newf("%s is not a constant expression", expr)
	}
	v := constant.ToInt(tv.Value)
	if v.Kind() != constant.Int {
		return nil, errors.Newf("%s (%s) is not an integer constant", expr, tv.Value.ExactString())
	}
	return v, nil
}

// bounds returns the smallest and largest values of an integral kind. int
// and uint are 64 bits wide, as on every 64-bit gc target.
func bounds(kind types.BasicKind) (lo, hi constant.Value) {
	var (
		bits   uint
		signed = true
	)
	switch kind {
	case types.Int8:
		bits = 8
	case types.Int16:
		bits = 16
	case types.Int32:
		bits = 32
	case types.Int, types.Int64:
		bits = 64
	case types.Uint8:
		bits, signed = 8, false
	case types.Uint16:
		bits, signed = 16, false
	case types.Uint32:
		bits, signed = 32, false
	default:
		bits, signed = 64, false
	}
	one := constant.MakeInt64(1)
	if signed {
		hi = constant.BinaryOp(constant.Shift(one, token.SHL, bits-1), token.SUB, one)
		lo = constant.UnaryOp(token.SUB, constant.Shift(one, token.SHL, bits-1), 0)
		return lo, hi
	}
	return constant.MakeInt64(0), constant.BinaryOp(constant.Shift(one, token.SHL, bits), token.SUB, one)
}
