package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeMapping(t *testing.T) {
	tests := []struct {
		in   string
		want TypeMapping
	}{
		{"Weekday", TypeMapping{Source: "Weekday", Target: "WeekdayEnum"}},
		{"level", TypeMapping{Source: "level", Target: "Level"}},
		{"level=LogLevel", TypeMapping{Source: "level", Target: "LogLevel"}},
		{" Weekday = Day ", TypeMapping{Source: "Weekday", Target: "Day"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTypeMapping(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, in := range []string{"", "1x", "Weekday=day", "Weekday=Weekday"} {
		_, err := ParseTypeMapping(in)
		assert.Error(t, err, in)
	}
}

func TestLoadPackage(t *testing.T) {
	weekday, err := ParseTypeMapping("Weekday=Day")
	require.NoError(t, err)
	level, err := ParseTypeMapping("level")
	require.NoError(t, err)

	f, err := LoadPackage(PackageConfig{
		Pattern: "./testdata/source",
		Types:   []TypeMapping{weekday, level},
	})
	require.NoError(t, err)
	assert.Equal(t, "source", f.Package)
	assert.Equal(t, "github.com/syssam/venum/compiler/load/testdata/source", f.ImportPath)
	require.Len(t, f.Enums, 2)

	day := f.Enums[0]
	assert.Equal(t, "Day", day.Name)
	assert.Equal(t, "Weekday", day.Source)
	assert.Equal(t, "uint8", day.Type)
	assert.Equal(t, []string{"Sunday = 0", "Monday = 1", "Tuesday = 2", "Thursday = 4"}, day.Constants)

	lvl := f.Enums[1]
	assert.Equal(t, "Level", lvl.Name)
	assert.Equal(t, "int", lvl.Type)
	assert.Equal(t, []string{"Debug = -4", "Info = 0", "Warn = 4", "Error = 8"}, lvl.Constants)

	consts, err := Evaluate(day)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "4"}, literals(consts))
}

func TestLoadPackageBuildFlags(t *testing.T) {
	role := TypeMapping{Source: "Role", Target: "RoleEnum"}

	f, err := LoadPackage(PackageConfig{Pattern: "./testdata/buildflags", Types: []TypeMapping{role}})
	require.NoError(t, err)
	// Files are visited in name order.
	assert.Equal(t, []string{"Admin = 10", "Guest = 1", "Member = 2"}, f.Enums[0].Constants)

	f, err = LoadPackage(PackageConfig{
		Pattern:    "./testdata/buildflags",
		Types:      []TypeMapping{role},
		BuildFlags: []string{"-tags", "hideadmin"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Guest = 1", "Member = 2"}, f.Enums[0].Constants)
}

func TestLoadPackageErrors(t *testing.T) {
	tests := []struct {
		source string
		msg    string
	}{
		{"Missing", "type Missing not found"},
		{"Name", "not supported"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			m, err := ParseTypeMapping(tt.source)
			require.NoError(t, err)
			_, err = LoadPackage(PackageConfig{Pattern: "./testdata/source", Types: []TypeMapping{m}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := LoadPackage(PackageConfig{Pattern: "./testdata/source"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no types requested")

	_, err = LoadPackage(PackageConfig{Pattern: "./testdata/failure", Types: []TypeMapping{{Source: "Code", Target: "CodeEnum"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load package ./testdata/failure")
}

func TestImportPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/app\n\ngo 1.24\n"), 0o644))

	got, err := ImportPath(root)
	require.NoError(t, err)
	assert.Equal(t, "example.com/app", got)

	got, err = ImportPath(filepath.Join(root, "internal", "color"))
	require.NoError(t, err)
	assert.Equal(t, "example.com/app/internal/color", got)

	got, err = ImportPath(".")
	require.NoError(t, err)
	assert.Equal(t, "github.com/syssam/venum/compiler/load", got)
}
