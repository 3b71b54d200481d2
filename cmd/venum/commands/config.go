package commands

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/syssam/venum/compiler/gen"
)

// Options are the settings shared by all commands. They are read from
// venum.yaml, VENUM_* environment variables and flags, in increasing order
// of precedence.
type Options struct {
	Target     string   `mapstructure:"target"`
	Package    string   `mapstructure:"package"`
	Header     string   `mapstructure:"header"`
	Features   []string `mapstructure:"features"`
	Types      []string `mapstructure:"types"`
	Workers    int      `mapstructure:"workers"`
	LogLevel   string   `mapstructure:"log_level"`
	BuildFlags []string `mapstructure:"build_flags"`
	FileSuffix string   `mapstructure:"file_suffix"`
}

// flagKeys maps configuration keys to their flag names.
var flagKeys = map[string]string{
	"target":      "target",
	"package":     "package",
	"header":      "header",
	"features":    "features",
	"types":       "type",
	"workers":     "workers",
	"log_level":   "log-level",
	"build_flags": "build-flags",
	"file_suffix": "file-suffix",
}

// setDefaults configures default values for all configuration keys.
func setDefaults(v *viper.Viper) {
	v.SetDefault("target", "")
	v.SetDefault("package", "")
	v.SetDefault("header", gen.DefaultHeader)
	v.SetDefault("features", []string{})
	v.SetDefault("types", []string{})
	v.SetDefault("workers", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("build_flags", []string{})
	v.SetDefault("file_suffix", gen.DefaultFileSuffix)
}

// addFlags registers the configuration flags on fs.
func addFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default: ./venum.yaml)")
	fs.StringP("target", "o", "", "output directory (default: directory of the declarations)")
	fs.String("package", "", "import path of the generated package (default: inferred from go.mod)")
	fs.String("header", gen.DefaultHeader, "header comment of generated files")
	fs.StringSlice("features", nil, "features to enable: "+strings.Join(gen.FeatureNames(), ", "))
	fs.StringSliceP("type", "t", nil, "Go types to extract from a source package, as Source[=Target]")
	fs.Int("workers", 0, "files generated concurrently (default: GOMAXPROCS)")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.StringSlice("build-flags", nil, "build flags used when loading source packages")
	fs.String("file-suffix", gen.DefaultFileSuffix, "suffix of generated file names")
}

// newViper initializes viper with the configuration sources bound to fs.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("VENUM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	for key, name := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag %s", name)
			}
		}
	}

	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("venum")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}
	return v, nil
}

// loadOptions reads the options from v.
func loadOptions(v *viper.Viper) (*Options, error) {
	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &opts, nil
}

// Logger returns a text logger writing to w at the configured level.
func (o *Options) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "invalid log level %q", o.LogLevel),
			"use one of debug, info, warn, error",
		)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// Config builds the generator configuration.
func (o *Options) Config(log *slog.Logger, extra ...gen.Option) (*gen.Config, error) {
	opts := []gen.Option{
		gen.WithHeader(o.Header),
		gen.WithFeatureNames(o.Features...),
		gen.WithSourceTypes(o.Types...),
		gen.WithWorkers(o.Workers),
		gen.WithBuildFlags(o.BuildFlags...),
		gen.WithFileSuffix(o.FileSuffix),
		gen.WithLogger(log),
	}
	if o.Target != "" {
		opts = append(opts, gen.WithTarget(o.Target))
	}
	if o.Package != "" {
		opts = append(opts, gen.WithPackage(o.Package))
	}
	return gen.NewConfig(append(opts, extra...)...)
}
