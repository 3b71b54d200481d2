package facade

import (
	"go/types"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/venum/compiler/gen"
)

// genText generates the encoding.TextMarshaler and encoding.TextUnmarshaler
// implementations.
func genText(f *jen.File, t *gen.Type) {
	rv := t.Receiver()

	f.Comment("MarshalText implements the encoding.TextMarshaler interface.")
	f.Comment("It fails for undeclared values.")
	f.Func().Params(jen.Id(rv).Id(t.Name)).Id("MarshalText").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.List(jen.Id("name"), jen.Err()).Op(":=").Add(def(t)).Dot("Name").Call(jen.Id(rv).Dot("v")),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.Return(jen.Index().Byte().Call(jen.Id("name")), jen.Nil()),
	)

	f.Comment("UnmarshalText implements the encoding.TextUnmarshaler interface.")
	f.Comment("The text must be a declared constant name.")
	f.Func().Params(jen.Id(rv).Op("*").Id(t.Name)).Id("UnmarshalText").Params(jen.Id("text").Index().Byte()).Error().Block(
		jen.List(jen.Id("v"), jen.Err()).Op(":=").Add(def(t)).Dot("FromString").Call(jen.String().Call(jen.Id("text"))),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		),
		jen.Id(rv).Dot("v").Op("=").Id("v"),
		jen.Return(jen.Nil()),
	)
}

// genSQL generates the sql.Scanner and driver.Valuer implementations. The
// value is stored as an int64 column; uint and uint64 values above math.MaxInt64
// are stored in two's complement.
func genSQL(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	rv := t.Receiver()
	ptr := jen.Id(rv).Op("*").Id(t.Name)

	f.Comment("Scan implements the sql.Scanner interface. It accepts integers, and text")
	f.Comment("holding either an integer or a declared constant name.")
	f.Func().Params(ptr.Clone()).Id("Scan").Params(jen.Id("src").Any()).Error().Block(
		jen.Switch(jen.Id("s").Op(":=").Id("src").Assert(jen.Type())).Block(
			jen.Case(jen.Int64()).Block(
				jen.Return(jen.Id(rv).Dot("scanInt").Call(jen.Id("s"))),
			),
			jen.Case(jen.Index().Byte()).Block(
				jen.Return(jen.Id(rv).Dot("scanText").Call(jen.String().Call(jen.Id("s")))),
			),
			jen.Case(jen.String()).Block(
				jen.Return(jen.Id(rv).Dot("scanText").Call(jen.Id("s"))),
			),
			jen.Default().Block(
				jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("scan %T into "+t.Name+": unsupported type"), jen.Id("src"))),
			),
		),
	)

	f.Line()
	f.Func().Params(ptr.Clone()).Id("scanText").Params(jen.Id("s").String()).Error().Block(
		jen.If(
			jen.List(jen.Id("n"), jen.Err()).Op(":=").Qual("strconv", "ParseInt").Call(jen.Id("s"), jen.Lit(10), jen.Lit(64)),
			jen.Err().Op("==").Nil(),
		).Block(
			jen.Return(jen.Id(rv).Dot("scanInt").Call(jen.Id("n"))),
		),
		jen.List(jen.Id("v"), jen.Err()).Op(":=").Add(def(t)).Dot("FromString").Call(jen.Id("s")),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		),
		jen.Id(rv).Dot("v").Op("=").Id("v"),
		jen.Return(jen.Nil()),
	)

	f.Line()
	f.Func().Params(ptr.Clone()).Id("scanInt").Params(jen.Id("n").Int64()).Error().BlockFunc(func(group *jen.Group) {
		if cond := outOfRange(t); cond != nil {
			group.If(cond).Block(
				jen.Return(jen.Qual(h.RuntimePkg(), "NewInvalidValueError").Call(jen.Lit(t.ID), jen.Lit("scan"), jen.Id("n"))),
			)
		}
		group.List(jen.Id("v"), jen.Err()).Op(":=").Add(def(t)).Dot("FromInt").Call(jen.Id(t.Underlying).Call(jen.Id("n")))
		group.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		)
		group.Id(rv).Dot("v").Op("=").Id("v")
		group.Return(jen.Nil())
	})

	f.Comment("Value implements the driver.Valuer interface.")
	if t.Kind == types.Uint64 || t.Kind == types.Uint {
		f.Comment("Values above 1<<63 - 1 are stored as their two's complement int64.")
	}
	f.Func().Params(jen.Id(rv).Id(t.Name)).Id("Value").Params().Params(jen.Qual("database/sql/driver", "Value"), jen.Error()).Block(
		jen.Return(jen.Int64().Call(jen.Id(rv).Dot("v")), jen.Nil()),
	)
}

// outOfRange returns the condition reporting whether the int64 n does not
// fit the underlying type of t, or nil if every int64 fits.
func outOfRange(t *gen.Type) jen.Code {
	n := jen.Id("n")
	switch t.Kind {
	case types.Int8:
		return n.Op("<").Qual("math", "MinInt8").Op("||").Id("n").Op(">").Qual("math", "MaxInt8")
	case types.Int16:
		return n.Op("<").Qual("math", "MinInt16").Op("||").Id("n").Op(">").Qual("math", "MaxInt16")
	case types.Int32:
		return n.Op("<").Qual("math", "MinInt32").Op("||").Id("n").Op(">").Qual("math", "MaxInt32")
	case types.Int:
		return n.Op("<").Qual("math", "MinInt").Op("||").Id("n").Op(">").Qual("math", "MaxInt")
	case types.Uint8:
		return n.Op("<").Lit(0).Op("||").Id("n").Op(">").Qual("math", "MaxUint8")
	case types.Uint16:
		return n.Op("<").Lit(0).Op("||").Id("n").Op(">").Qual("math", "MaxUint16")
	case types.Uint32:
		return n.Op("<").Lit(0).Op("||").Id("n").Op(">").Qual("math", "MaxUint32")
	case types.Uint:
		// Value stores uint values above 1<<63 - 1 as negative int64s.
		return jen.Uint64().Call(n).Op(">").Qual("math", "MaxUint")
	default:
		return nil
	}
}

// genMust generates constructors that panic on invalid input.
func genMust(f *jen.File, t *gen.Type) {
	must := func(name, param string, typ jen.Code) {
		f.Commentf("Must%s is like %s but panics if %s is invalid.", t.Ident(name), t.Ident(name), param)
		f.Comment("It simplifies safe initialization of package-level variables.")
		f.Func().Id("Must"+t.Ident(name)).Params(jen.Id(param).Add(typ)).Id(t.Name).Block(
			jen.List(jen.Id(t.Receiver()), jen.Err()).Op(":=").Id(t.Ident(name)).Call(jen.Id(param)),
			jen.If(jen.Err().Op("!=").Nil()).Block(
				jen.Panic(jen.Err()),
			),
			jen.Return(jen.Id(t.Receiver())),
		)
	}
	must("FromInt", "n", underlying(t))
	must("FromString", "name", jen.String())
}

// genEager generates an init function processing the constant names during
// package initialization.
func genEager(f *jen.File, t *gen.Type) {
	f.Line()
	f.Func().Id("init").Params().Block(
		jen.If(jen.Err().Op(":=").Add(def(t)).Dot("ProcessNames").Call(), jen.Err().Op("!=").Nil()).Block(
			jen.Panic(jen.Err()),
		),
	)
}
