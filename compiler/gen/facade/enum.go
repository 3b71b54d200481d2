package facade

import (
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/venum/compiler/gen"
)

// genEnum generates the enum file ({enum}_enum.go).
func genEnum(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := h.NewFile(h.Pkg())

	genType(f, t)
	genConstants(f, t)
	genRange(f, t)
	genDefinition(h, f, t)
	genMethods(f, t)
	genConstructors(h, f, t)
	genPredicates(f, t)
	genIterators(f, t)

	// Optional features
	if h.FeatureEnabled(gen.FeatureText.Name) {
		genText(f, t)
	}
	if h.FeatureEnabled(gen.FeatureSQL.Name) {
		genSQL(h, f, t)
	}
	if h.FeatureEnabled(gen.FeatureMust.Name) {
		genMust(f, t)
	}
	if h.FeatureEnabled(gen.FeatureEager.Name) {
		genEager(f, t)
	}
	return f
}

// comment adds a doc comment line by line, so jennifer renders it with
// line comments.
func comment(f *jen.File, text string) {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line = strings.TrimRight(line, " \t"); line == "" {
			f.Comment("//")
			continue
		}
		f.Comment(line)
	}
}

// underlying returns the underlying integer type of t.
func underlying(t *gen.Type) jen.Code {
	return jen.Id(t.Underlying)
}

// instance returns the composite literal of t holding the literal value.
func instance(t *gen.Type, value string) *jen.Statement {
	return jen.Id(t.Name).Values(jen.Dict{jen.Id("v"): jen.Id(value)})
}

// wrap returns the composite literal of t holding the expression v.
func wrap(t *gen.Type, v jen.Code) *jen.Statement {
	return jen.Id(t.Name).Values(jen.Dict{jen.Id("v"): v})
}

// def returns the package variable holding the definition of t.
func def(t *gen.Type) *jen.Statement {
	return jen.Id(t.DefinitionVar())
}

// genType generates the facade type.
func genType(f *jen.File, t *gen.Type) {
	comment(f, t.Doc)
	f.Comment("//")
	f.Commentf("The zero value of %s holds the underlying value 0, which is a declared", t.Name)
	f.Commentf("constant only if one was declared with that value. Use %s or", t.Ident("IsValid"))
	f.Commentf("%s to accept external input.", t.Ident("FromInt"))
	f.Type().Id(t.Name).Struct(
		jen.Id("v").Add(underlying(t)),
	)
}

// genConstants generates the declared constants.
func genConstants(f *jen.File, t *gen.Type) {
	f.Commentf("Declared constants of %s, in declaration order. They must not be", t.Name)
	f.Comment("reassigned.")
	f.Var().DefsFunc(func(group *jen.Group) {
		for _, c := range t.Constants {
			if c.Shadowed {
				group.Commentf("%s has the value of an earlier constant, so String returns the earlier name.", c.Ident)
			}
			group.Id(c.Ident).Op("=").Add(instance(t, c.Value))
		}
	})
}

// genRange generates the range metadata.
func genRange(f *jen.File, t *gen.Type) {
	f.Const().Defs(
		jen.Commentf("%s is the number of declared constants, duplicates included.", t.Ident("Size")),
		jen.Id(t.Ident("Size")).Op("=").Lit(t.Range.Size),
		jen.Commentf("%s is %s - %s + 1, computed modulo 2^64.", t.Ident("Span"), t.Ident("Max"), t.Ident("Min")),
		jen.Id(t.Ident("Span")).Uint64().Op("=").Id(strconv.FormatUint(t.Range.Span, 10)),
	)
	f.Commentf("Range values of %s. They must not be reassigned.", t.Name)
	f.Var().Defs(
		jen.Commentf("%s is the smallest declared value.", t.Ident("Min")),
		jen.Id(t.Ident("Min")).Op("=").Add(instance(t, t.Range.Min)),
		jen.Commentf("%s is the largest declared value.", t.Ident("Max")),
		jen.Id(t.Ident("Max")).Op("=").Add(instance(t, t.Range.Max)),
		jen.Commentf("%s is the first declared value.", t.Ident("First")),
		jen.Id(t.Ident("First")).Op("=").Add(instance(t, t.Range.First)),
		jen.Commentf("%s is the last declared value.", t.Ident("Last")),
		jen.Id(t.Ident("Last")).Op("=").Add(instance(t, t.Range.Last)),
	)
}

// genDefinition generates the registration of the shared definition.
func genDefinition(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Line()
	f.Var().Id(t.DefinitionVar()).Op("=").Qual(h.RuntimePkg(), "MustRegister").Call(
		jen.Lit(t.ID),
		jen.Index().Add(underlying(t)).ValuesFunc(func(group *jen.Group) {
			for _, v := range t.Values() {
				group.Id(v)
			}
		}),
		jen.Index().String().ValuesFunc(func(group *jen.Group) {
			for _, raw := range t.RawNames() {
				group.Lit(raw)
			}
		}),
	)

	f.Commentf("%s returns the definition shared by all users of %s.", t.Ident("Definition"), t.Name)
	f.Func().Id(t.Ident("Definition")).Params().Op("*").Qual(h.RuntimePkg(), "Definition").Types(underlying(t)).Block(
		jen.Return(def(t)),
	)
}

// genMethods generates the methods of the facade type.
func genMethods(f *jen.File, t *gen.Type) {
	rv := t.Receiver()
	recv := jen.Id(rv).Id(t.Name)
	v := jen.Id(rv).Dot("v")

	f.Comment("Int returns the underlying value.")
	f.Func().Params(recv.Clone()).Id("Int").Params().Add(underlying(t)).Block(
		jen.Return(v.Clone()),
	)

	f.Commentf("Name returns the declared name of %s. It fails for values that were not", rv)
	f.Commentf("declared, which only %s can produce.", t.Ident("FromIntUnchecked"))
	f.Func().Params(recv.Clone()).Id("Name").Params().Params(jen.String(), jen.Error()).Block(
		jen.Return(def(t).Dot("Name").Call(v.Clone())),
	)

	f.Commentf("String returns the declared name of %s, or %s(n) for undeclared values.", rv, t.Name)
	f.Func().Params(recv.Clone()).Id("String").Params().String().Block(
		jen.If(
			jen.List(jen.Id("name"), jen.Err()).Op(":=").Add(def(t)).Dot("Name").Call(v.Clone()),
			jen.Err().Op("==").Nil(),
		).Block(
			jen.Return(jen.Id("name")),
		),
		jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit(t.Name+"(%d)"), v.Clone())),
	)

	f.Commentf("IsValid reports whether %s holds a declared value.", rv)
	f.Func().Params(recv.Clone()).Id("IsValid").Params().Bool().Block(
		jen.Return(def(t).Dot("IsValid").Call(v.Clone())),
	)

	other := jen.Id("o").Dot("v")
	f.Commentf("Equal reports whether %s and o hold the same value.", rv)
	f.Func().Params(recv.Clone()).Id("Equal").Params(jen.Id("o").Id(t.Name)).Bool().Block(
		jen.Return(v.Clone().Op("==").Add(other.Clone())),
	)
	f.Commentf("EqualInt reports whether %s holds n.", rv)
	f.Func().Params(recv.Clone()).Id("EqualInt").Params(jen.Id("n").Add(underlying(t))).Bool().Block(
		jen.Return(v.Clone().Op("==").Id("n")),
	)
	f.Commentf("Compare returns -1, 0 or +1 depending on whether %s is less than, equal to", rv)
	f.Comment("or greater than o, by underlying value.")
	f.Func().Params(recv.Clone()).Id("Compare").Params(jen.Id("o").Id(t.Name)).Int().Block(
		jen.Return(jen.Qual("cmp", "Compare").Call(v.Clone(), other.Clone())),
	)
	f.Commentf("CompareInt compares the underlying value of %s with n.", rv)
	f.Func().Params(recv.Clone()).Id("CompareInt").Params(jen.Id("n").Add(underlying(t))).Int().Block(
		jen.Return(jen.Qual("cmp", "Compare").Call(v.Clone(), jen.Id("n"))),
	)
	f.Commentf("Less reports whether the underlying value of %s is less than the one of o.", rv)
	f.Func().Params(recv.Clone()).Id("Less").Params(jen.Id("o").Id(t.Name)).Bool().Block(
		jen.Return(v.Clone().Op("<").Add(other.Clone())),
	)
	f.Commentf("LessInt reports whether the underlying value of %s is less than n.", rv)
	f.Func().Params(recv.Clone()).Id("LessInt").Params(jen.Id("n").Add(underlying(t))).Bool().Block(
		jen.Return(v.Clone().Op("<").Id("n")),
	)
}

// genConstructors generates the functions building a value from an
// integer or a name.
func genConstructors(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Commentf("%s returns the %s holding n, or an error if n is not a declared value.", t.Ident("FromInt"), t.Name)
	f.Func().Id(t.Ident("FromInt")).Params(jen.Id("n").Add(underlying(t))).Params(jen.Id(t.Name), jen.Error()).Block(
		lookup(t, def(t).Dot("FromInt").Call(jen.Id("n")))...,
	)

	f.Commentf("%s returns the %s holding n without validating it.", t.Ident("FromIntUnchecked"), t.Name)
	f.Comment("The result may hold a value that was never declared.")
	f.Func().Id(t.Ident("FromIntUnchecked")).Params(jen.Id("n").Add(underlying(t))).Id(t.Name).Block(
		jen.Return(wrap(t, jen.Id("n"))),
	)

	f.Commentf("%s returns the %s of the first constant named name.", t.Ident("FromString"), t.Name)
	f.Func().Id(t.Ident("FromString")).Params(jen.Id("name").String()).Params(jen.Id(t.Name), jen.Error()).Block(
		lookup(t, def(t).Dot("FromString").Call(jen.Id("name")))...,
	)

	f.Commentf("%s is %s with ASCII case folding.", t.Ident("FromStringNocase"), t.Ident("FromString"))
	f.Func().Id(t.Ident("FromStringNocase")).Params(jen.Id("name").String()).Params(jen.Id(t.Name), jen.Error()).Block(
		lookup(t, def(t).Dot("FromStringNocase").Call(jen.Id("name")))...,
	)
}

// lookup returns the body of a strict constructor calling the definition.
func lookup(t *gen.Type, call jen.Code) []jen.Code {
	return []jen.Code{
		jen.List(jen.Id("v"), jen.Err()).Op(":=").Add(call),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Id(t.Name).Values(), jen.Err()),
		),
		jen.Return(wrap(t, jen.Id("v")), jen.Nil()),
	}
}

// genPredicates generates the validity checks on bare inputs.
func genPredicates(f *jen.File, t *gen.Type) {
	f.Commentf("%s reports whether n is a declared value of %s.", t.Ident("IsValid"), t.Name)
	f.Func().Id(t.Ident("IsValid")).Params(jen.Id("n").Add(underlying(t))).Bool().Block(
		jen.Return(def(t).Dot("IsValid").Call(jen.Id("n"))),
	)
	f.Commentf("%s reports whether name is a declared constant name of %s.", t.Ident("IsValidName"), t.Name)
	f.Func().Id(t.Ident("IsValidName")).Params(jen.Id("name").String()).Bool().Block(
		jen.Return(def(t).Dot("IsValidName").Call(jen.Id("name"))),
	)
	f.Commentf("%s is %s with ASCII case folding.", t.Ident("IsValidNameNocase"), t.Ident("IsValidName"))
	f.Func().Id(t.Ident("IsValidNameNocase")).Params(jen.Id("name").String()).Bool().Block(
		jen.Return(def(t).Dot("IsValidNameNocase").Call(jen.Id("name"))),
	)
}

// genIterators generates the sequences over the declared constants.
func genIterators(f *jen.File, t *gen.Type) {
	f.Commentf("%s returns a sequence over the declared %s in declaration order,", t.Ident("Values"), t.Plural())
	f.Comment("duplicates included.")
	f.Func().Id(t.Ident("Values")).Params().Qual("iter", "Seq").Types(jen.Id(t.Name)).Block(
		jen.Return(jen.Func().Params(jen.Id("yield").Func().Params(jen.Id(t.Name)).Bool()).Block(
			jen.For(jen.Id("v").Op(":=").Range().Add(def(t)).Dot("Values").Call()).Block(
				jen.If(jen.Op("!").Id("yield").Call(wrap(t, jen.Id("v")))).Block(
					jen.Return(),
				),
			),
		)),
	)

	f.Commentf("%s returns a sequence over the declared names in declaration order.", t.Ident("Names"))
	f.Func().Id(t.Ident("Names")).Params().Qual("iter", "Seq").Types(jen.String()).Block(
		jen.Return(def(t).Dot("Names").Call()),
	)
}
