package gen

import (
	"go/constant"
	"go/types"
	"strconv"

	"github.com/syssam/venum"
	"github.com/syssam/venum/compiler/load"
)

// The following types and their exported methods are used by the dialects
// to generate the assets.
type (
	// Type represents one enumerated type of the graph and its constants.
	Type struct {
		*Config
		decl *load.Enum
		// Name holds the Go name of the generated type.
		Name string
		// ID is the definition identity, "<import path>.<Name>".
		ID string
		// Doc is the doc comment of the type, without comment markers.
		Doc string
		// Kind is the kind of the underlying integral type.
		Kind types.BasicKind
		// Underlying is the canonical name of the underlying type.
		Underlying string
		// Constants holds the declared constants in declaration order.
		Constants []*Constant
		// Range holds the range metadata of the declared values.
		Range Range
	}

	// Constant holds the information of one declared constant.
	Constant struct {
		// Name is the declared name, as returned by String.
		Name string
		// Ident is the generated Go identifier, for example "ColorRed".
		Ident string
		// Raw is the declaration text as written.
		Raw string
		// Value is the exact value as a Go integer literal.
		Value string
		// Index is the position in declaration order.
		Index int
		// Shadowed indicates an earlier constant with the same value exists,
		// so lookups by value never resolve to this one.
		Shadowed bool
	}

	// Range holds the range metadata of a type. Values are Go integer
	// literals of the underlying type.
	Range struct {
		Size                  int
		Span                  uint64
		Min, Max, First, Last string
	}
)

// reserved are the identifier suffixes used by the generated API.
var reserved = []string{
	"Size", "Span", "Min", "Max", "First", "Last",
	"Values", "Names", "Definition",
	"FromInt", "FromIntUnchecked", "FromString", "FromStringNocase",
	"IsValid", "IsValidName", "IsValidNameNocase",
}

// NewType creates a new type and evaluates its constants.
func NewType(c *Config, pkg string, e *load.Enum) (*Type, error) {
	kind, err := e.Kind()
	if err != nil {
		return nil, NewDeclarationError(e.Name, "", "", err)
	}
	consts, err := load.Evaluate(e)
	if err != nil {
		return nil, NewDeclarationError(e.Name, "", "", err)
	}
	t := &Type{
		Config:     c,
		decl:       e,
		Name:       e.Name,
		ID:         pkg + "." + e.Name,
		Doc:        e.Doc,
		Kind:       kind,
		Underlying: types.Typ[kind].Name(),
		Constants:  make([]*Constant, len(consts)),
	}
	if t.Doc == "" {
		t.Doc = t.Name + " is an enumerated type with underlying type " + t.Underlying + "."
	}
	used := make(map[string]bool, len(consts)+len(reserved))
	for _, s := range reserved {
		used[t.Name+s] = true
	}
	values := make(map[string]bool, len(consts))
	for i, lc := range consts {
		ident := t.Name + pascal(lc.Name)
		if ident == t.Name {
			ident += "Value"
		}
		base := ident
		for n := 2; used[ident]; n++ {
			ident = base + strconv.Itoa(n)
		}
		used[ident] = true
		lit := lc.Literal()
		t.Constants[i] = &Constant{
			Name:     lc.Name,
			Ident:    ident,
			Raw:      lc.Raw,
			Value:    lit,
			Index:    i,
			Shadowed: values[lit],
		}
		values[lit] = true
	}
	if t.Range, err = analyzeRange(kind, consts); err != nil {
		return nil, NewDeclarationError(e.Name, "", "", err)
	}
	return t, nil
}

// analyzeRange computes the range metadata with the runtime analyzer, in
// int64 or uint64 arithmetic depending on the signedness of the kind.
func analyzeRange(kind types.BasicKind, consts []*load.Constant) (Range, error) {
	if types.Typ[kind].Info()&types.IsUnsigned != 0 {
		values := make([]uint64, len(consts))
		for i, c := range consts {
			values[i], _ = constant.Uint64Val(c.Value)
		}
		r, err := venum.AnalyzeRange(values)
		if err != nil {
			return Range{}, err
		}
		u := func(v uint64) string { return strconv.FormatUint(v, 10) }
		return Range{Size: r.Size, Span: r.Span, Min: u(r.Min), Max: u(r.Max), First: u(r.First), Last: u(r.Last)}, nil
	}
	values := make([]int64, len(consts))
	for i, c := range consts {
		values[i], _ = constant.Int64Val(c.Value)
	}
	r, err := venum.AnalyzeRange(values)
	if err != nil {
		return Range{}, err
	}
	s := func(v int64) string { return strconv.FormatInt(v, 10) }
	return Range{Size: r.Size, Span: r.Span, Min: s(r.Min), Max: s(r.Max), First: s(r.First), Last: s(r.Last)}, nil
}

// Signed reports whether the underlying type is signed.
func (t Type) Signed() bool {
	return types.Typ[t.Kind].Info()&types.IsUnsigned == 0
}

// Source returns the name of the Go type the enum was extracted from, or
// an empty string for declaration files.
func (t Type) Source() string {
	if t.decl == nil {
		return ""
	}
	return t.decl.Source
}

// Receiver returns the receiver name of this type's methods.
func (t Type) Receiver() string {
	return receiver(t.Name)
}

// DefinitionVar returns the name of the package variable holding the
// shared definition.
func (t Type) DefinitionVar() string {
	return unexport(t.Name) + "Definition"
}

// Plural returns the plural of the type name, for doc comments.
func (t Type) Plural() string {
	return plural(t.Name)
}

// FileName returns the name of the generated file.
func (t Type) FileName() string {
	suffix := DefaultFileSuffix
	if t.Config != nil {
		suffix = t.fileSuffix()
	}
	return snake(t.Name) + suffix + ".go"
}

// Values returns the declared values as Go integer literals.
func (t Type) Values() []string {
	values := make([]string, len(t.Constants))
	for i, c := range t.Constants {
		values[i] = c.Value
	}
	return values
}

// RawNames returns the raw declaration texts.
func (t Type) RawNames() []string {
	raw := make([]string, len(t.Constants))
	for i, c := range t.Constants {
		raw[i] = c.Raw
	}
	return raw
}

// Ident returns the generated identifier of a type-level name, for example
// Ident("FromInt") is "ColorFromInt".
func (t Type) Ident(suffix string) string {
	return t.Name + suffix
}
