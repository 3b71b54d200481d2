package facade

import (
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/require"

	"github.com/syssam/venum/compiler/gen"
	"github.com/syssam/venum/compiler/load"
)

const testPkg = "example.com/project/color"

// mockHelper implements gen.GeneratorHelper with configurable feature flags.
type mockHelper struct {
	graph    *gen.Graph
	features map[string]bool
}

func newMockHelper(features ...string) *mockHelper {
	m := &mockHelper{
		graph: &gen.Graph{
			Config:  &gen.Config{Package: testPkg, Target: "/tmp/color"},
			PkgName: "color",
		},
		features: make(map[string]bool),
	}
	for _, f := range features {
		m.features[f] = true
	}
	return m
}

func (m *mockHelper) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(gen.DefaultHeader)
	f.ImportName(gen.RuntimePkg, "venum")
	return f
}

func (m *mockHelper) Graph() *gen.Graph               { return m.graph }
func (m *mockHelper) Pkg() string                     { return m.graph.PkgName }
func (m *mockHelper) RuntimePkg() string              { return gen.RuntimePkg }
func (m *mockHelper) FeatureEnabled(name string) bool { return m.features[name] }

// Ensure mockHelper implements gen.GeneratorHelper.
var _ gen.GeneratorHelper = (*mockHelper)(nil)

// newTestType creates an evaluated type from a declaration.
func newTestType(t *testing.T, name, typ string, constants ...string) *gen.Type {
	t.Helper()
	et, err := gen.NewType(&gen.Config{Package: testPkg}, testPkg, &load.Enum{
		Name:      name,
		Type:      typ,
		Constants: constants,
	})
	require.NoError(t, err)
	return et
}

// colorType is the Color enum used across the tests.
func colorType(t *testing.T) *gen.Type {
	return newTestType(t, "Color", "int32", "RED", "GREEN = 5", "BLUE")
}
