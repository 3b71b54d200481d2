package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/venum/compiler"
	"github.com/syssam/venum/compiler/gen"
	"github.com/syssam/venum/compiler/load"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch path",
		Short: "Regenerate enum files when their declarations change",
		Long: `Watch generates the enum files of path, then regenerates them whenever the
declaration file, or a Go file of the source package, changes. Rapid changes
are debounced. Generation errors are logged and watching continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.opts.Config(a.log)
			if err != nil {
				return err
			}
			w := &Watcher{Path: args[0], Config: cfg, Debounce: debounce, Log: a.log}
			return w.Run(cmd.Context())
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 300*time.Millisecond, "wait for changes to settle before regenerating")
	return cmd
}

// Watcher regenerates the enums of a path when its sources change.
type Watcher struct {
	// Path is a declaration file or a Go package directory.
	Path     string
	Config   *gen.Config
	Debounce time.Duration
	Log      *slog.Logger
	// OnGenerate, if set, is called after every generation attempt.
	OnGenerate func(error)
}

// Run generates once and then watches until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Log == nil {
		w.Log = slog.Default()
	}
	path, err := filepath.Abs(w.Path)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", w.Path)
	}
	dir := path
	if load.IsDeclarationFile(path) {
		dir = filepath.Dir(path)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return errors.WithHint(
			errors.Newf("cannot watch %s", w.Path),
			"watch needs a declaration file or a package directory",
		)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer fw.Close()
	if err := fw.Add(dir); err != nil {
		return errors.Wrapf(err, "watch %s", dir)
	}

	w.generate(ctx, path)
	w.Log.Info("watching for changes", "dir", dir)

	var (
		timer *time.Timer
		fire  = make(chan struct{}, 1)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(path, event) {
				continue
			}
			w.Log.Debug("change detected", "file", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.Debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			w.generate(ctx, path)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Log.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) generate(ctx context.Context, path string) {
	start := time.Now()
	err := compiler.GenerateContext(ctx, path, w.Config)
	if err != nil {
		w.Log.Error("generation failed", "path", w.Path, "error", err)
	} else {
		w.Log.Info("enums generated", "path", w.Path, "duration", time.Since(start))
	}
	if w.OnGenerate != nil {
		w.OnGenerate(err)
	}
}

// relevant reports whether the event may change the generated output.
// Generated files themselves are ignored.
func (w *Watcher) relevant(path string, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	name := filepath.Clean(event.Name)
	if load.IsDeclarationFile(path) {
		return name == path
	}
	suffix := gen.DefaultFileSuffix
	if w.Config != nil && w.Config.FileSuffix != "" {
		suffix = w.Config.FileSuffix
	}
	return strings.HasSuffix(name, ".go") &&
		!strings.HasSuffix(name, "_test.go") &&
		!strings.HasSuffix(name, suffix+".go")
}
