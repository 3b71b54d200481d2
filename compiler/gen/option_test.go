package gen

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("Code generated by make. DO NOT EDIT.")(c)

		require.NoError(t, err)
		assert.Equal(t, "Code generated by make. DO NOT EDIT.", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestWithPackage(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithPackage("example.com/project/color")(c))
	assert.Equal(t, "example.com/project/color", c.Package)

	err := WithPackage("")(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestWithTarget(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithTarget("./color")(c))
	assert.Equal(t, "./color", c.Target)

	err := WithTarget("")(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestWithFeatures(t *testing.T) {
	t.Run("appends features", func(t *testing.T) {
		c := &Config{Features: []Feature{FeatureText}}
		require.NoError(t, WithFeatures(FeatureSQL, FeatureMust)(c))
		assert.Equal(t, []Feature{FeatureText, FeatureSQL, FeatureMust}, c.Features)
	})

	t.Run("by name", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithFeatureNames("text", " sql ", "")(c))
		assert.Equal(t, []Feature{FeatureText, FeatureSQL}, c.Features)
	})

	t.Run("unknown name", func(t *testing.T) {
		c := &Config{}
		err := WithFeatureNames("text", "privacy")(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "privacy")
		assert.Contains(t, err.Error(), "text, sql, eager, must")
	})
}

func TestWithHooks(t *testing.T) {
	hook := func(next Generator) Generator { return next }
	c := &Config{}
	require.NoError(t, WithHooks(hook, hook)(c))
	assert.Len(t, c.Hooks, 2)
}

func TestWithBuildFlags(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithBuildFlags("-tags", "enums")(c))
	assert.Equal(t, []string{"-tags", "enums"}, c.BuildFlags)
}

func TestWithSourceTypes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithSourceTypes("Weekday", "level=Level")(c))
		assert.Equal(t, []string{"Weekday", "level=Level"}, c.SourceTypes)
	})

	t.Run("invalid source", func(t *testing.T) {
		c := &Config{}
		err := WithSourceTypes("=Level")(c)
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Empty(t, c.SourceTypes)
	})
}

func TestWithWorkers(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(4)(c))
	assert.Equal(t, 4, c.Workers)
	assert.Error(t, WithWorkers(-1)(c))
}

func TestWithCheck(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithCheck(true)(c))
	assert.True(t, c.Check)
}

func TestWithFileSuffix(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithFileSuffix("_gen")(c))
	assert.Equal(t, "_gen", c.FileSuffix)
	assert.Error(t, WithFileSuffix("../x")(c))
}

func TestWithLogger(t *testing.T) {
	c := &Config{}
	l := slog.New(slog.DiscardHandler)
	require.NoError(t, WithLogger(l)(c))
	assert.Same(t, l, c.Logger)
	assert.Error(t, WithLogger(nil)(c))
}

func TestWithGenerator(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithGenerator(GenerateFunc(func(*Graph) error { return nil }))(c))
	assert.NotNil(t, c.Generator)
	assert.Error(t, WithGenerator(nil)(c))
}

func TestConfigApply(t *testing.T) {
	t.Run("applies multiple options", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithPackage("example.com/project/color"),
			WithTarget("./color"),
			WithHeader("Custom"),
		)

		require.NoError(t, err)
		assert.Equal(t, "example.com/project/color", c.Package)
		assert.Equal(t, "./color", c.Target)
		assert.Equal(t, "Custom", c.Header)
	})

	t.Run("stops on first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithPackage(""),       // Error
			WithTarget("./color"), // Should not be applied
		)

		require.Error(t, err)
		assert.Empty(t, c.Package)
		assert.Empty(t, c.Target)
	})
}

func TestConfigApplyAll(t *testing.T) {
	t.Run("collects all errors", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithPackage(""), // Error
			WithTarget(""),  // Error
		)

		require.Error(t, err)
		// errors.Join returns an error with Unwrap() []error
		unwrapper, ok := err.(interface{ Unwrap() []error })
		require.True(t, ok, "error should implement Unwrap() []error")
		assert.Equal(t, 2, len(unwrapper.Unwrap()))
	})

	t.Run("returns nil when all succeed", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithPackage("example.com/project/color"),
			WithTarget("./color"),
		)

		require.NoError(t, err)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("creates config with options", func(t *testing.T) {
		c, err := NewConfig(
			WithPackage("example.com/project/color"),
			WithTarget("./color"),
		)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "example.com/project/color", c.Package)
		assert.Equal(t, "./color", c.Target)
	})

	t.Run("returns error on invalid option", func(t *testing.T) {
		c, err := NewConfig(WithPackage(""))

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestMustNewConfig(t *testing.T) {
	t.Run("returns config on success", func(t *testing.T) {
		c := MustNewConfig(WithPackage("example.com/project/color"))

		require.NotNil(t, c)
		assert.Equal(t, "example.com/project/color", c.Package)
	})

	t.Run("panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewConfig(WithPackage(""))
		})
	})
}
