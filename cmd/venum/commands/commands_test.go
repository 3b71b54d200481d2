package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/venum/compiler/gen"
)

const colorsYAML = `package: color
enums:
  - name: Color
    type: int32
    constants:
      - RED
      - GREEN = 5
      - BLUE
`

// newProject creates a module with a color package holding colors.yaml,
// and returns the module root and the declaration file.
func newProject(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/project\n\ngo 1.24\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "color"), 0o755))
	path := filepath.Join(root, "color", "colors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(colorsYAML), 0o644))
	return root, path
}

// run executes the root command and returns its stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

func readGenerated(t *testing.T, root string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, "color", "color_enum.go"))
	require.NoError(t, err)
	return string(content)
}

func TestGenerateCmd(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		root, path := newProject(t)
		_, stderr, err := run(t, "generate", "--features", "text", path)
		require.NoError(t, err)

		src := readGenerated(t, root)
		assert.Contains(t, src, "type Color struct")
		assert.Contains(t, src, "func (c Color) MarshalText() ([]byte, error) {")
		assert.NotContains(t, src, "Scan")
		assert.Contains(t, stderr, "generation finished")
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("VENUM_FEATURES", "sql")
		t.Setenv("VENUM_HEADER", "Code generated by make. DO NOT EDIT.")
		root, path := newProject(t)
		_, _, err := run(t, "gen", path)
		require.NoError(t, err)

		src := readGenerated(t, root)
		assert.Contains(t, src, "// Code generated by make. DO NOT EDIT.")
		assert.Contains(t, src, "func (c *Color) Scan(src any) error {")
	})

	t.Run("config file", func(t *testing.T) {
		root, path := newProject(t)
		config := "features: [must]\nlog_level: warn\nfile_suffix: _gen\n"
		require.NoError(t, os.WriteFile(filepath.Join(root, "venum.yaml"), []byte(config), 0o644))
		t.Chdir(root)

		_, stderr, err := run(t, "generate", path)
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(root, "color", "color_gen.go"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "func MustColorFromString(name string) Color {")
		assert.NotContains(t, stderr, "generation finished")
	})

	t.Run("flags override config", func(t *testing.T) {
		root, path := newProject(t)
		config := filepath.Join(root, "custom.yaml")
		require.NoError(t, os.WriteFile(config, []byte("features: [must]\n"), 0o644))

		_, _, err := run(t, "generate", "--config", config, "--features", "eager", path)
		require.NoError(t, err)

		src := readGenerated(t, root)
		assert.Contains(t, src, "func init() {")
		assert.NotContains(t, src, "MustColorFromString")
	})

	t.Run("missing config file", func(t *testing.T) {
		_, path := newProject(t)
		_, _, err := run(t, "generate", "--config", filepath.Join(t.TempDir(), "venum.yaml"), path)
		assert.Error(t, err)
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, path := newProject(t)
		_, _, err := run(t, "generate", "--features", "privacy", path)
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, path := newProject(t)
		_, _, err := run(t, "generate", "--log-level", "loud", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loud")
	})

	t.Run("requires a path", func(t *testing.T) {
		_, _, err := run(t, "generate")
		assert.Error(t, err)
	})

	t.Run("invalid declarations", func(t *testing.T) {
		_, path := newProject(t)
		require.NoError(t, os.WriteFile(path, []byte("package: color\nenums:\n  - name: Color\n    type: uint8\n    constants: [A = 300]\n"), 0o644))
		_, _, err := run(t, "generate", path)
		require.Error(t, err)
		assert.True(t, gen.IsDeclarationError(err))
	})
}

func TestCheckCmd(t *testing.T) {
	root, path := newProject(t)
	_, _, err := run(t, "generate", "--features", "text", path)
	require.NoError(t, err)

	t.Run("up to date", func(t *testing.T) {
		stdout, _, err := run(t, "check", "--features", "text", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "✓ Enums are up to date")
	})

	t.Run("out of date", func(t *testing.T) {
		stdout, _, err := run(t, "check", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 generated files are out of date")
		assert.Contains(t, stdout, "✗ Enums are out of date:")
		assert.Contains(t, stdout, "color_enum.go")

		// check never writes.
		assert.Contains(t, readGenerated(t, root), "MarshalText")
	})
}

func TestInspectCmd(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)
	_, path := newProject(t)

	t.Run("table", func(t *testing.T) {
		stdout, _, err := run(t, "inspect", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Color (int32) example.com/project/color.Color -> color_enum.go")
		assert.Contains(t, stdout, "size 3, span 7, min 0, max 6, first 0, last 6")
		for _, s := range []string{"RED", "GREEN", "BLUE", "ColorGreen", "Identifier"} {
			assert.Contains(t, stdout, s)
		}
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := run(t, "inspect", "--json", path)
		require.NoError(t, err)

		var enums []inspectEnum
		require.NoError(t, json.Unmarshal([]byte(stdout), &enums))
		require.Len(t, enums, 1)
		assert.Equal(t, "Color", enums[0].Name)
		assert.Equal(t, "int32", enums[0].Type)
		assert.Equal(t, []inspectConstant{
			{Name: "RED", Ident: "ColorRed", Value: "0"},
			{Name: "GREEN", Ident: "ColorGreen", Value: "5"},
			{Name: "BLUE", Ident: "ColorBlue", Value: "6"},
		}, enums[0].Constants)
		assert.Equal(t, uint64(7), enums[0].Range.Span)
	})

	t.Run("nothing is written", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(filepath.Dir(path), "color_enum.go"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "venum ")
	assert.Contains(t, stdout, "Go: go")

	stdout, _, err = run(t, "version", "--json")
	require.NoError(t, err)
	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Platform)
}
