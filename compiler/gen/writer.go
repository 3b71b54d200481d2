package gen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// Writer renders jennifer files, formats them with goimports and writes
// them to the output directory. Files whose content did not change are
// left untouched. In check mode nothing is written, and the files that
// differ from their on-disk content are recorded as stale.
type Writer struct {
	dir   string
	check bool
	log   *slog.Logger

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics WriterMetrics
	stale   []string
}

// WriterMetrics tracks generation performance
type WriterMetrics struct {
	FilesGenerated int
	FilesUnchanged int
	TotalBytes     int64
	RenderTime     time.Duration
	FormatTime     time.Duration
	WriteTime      time.Duration
}

// NewWriter creates a new writer for the given output directory.
func NewWriter(dir string, check bool, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.Default()
	}
	return &Writer{dir: dir, check: check, log: log}
}

// Metrics returns a snapshot of the generation metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Stale returns the sorted names of the files that are out of date.
// It is only populated in check mode.
func (w *Writer) Stale() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	stale := slices.Clone(w.stale)
	slices.Sort(stale)
	return stale
}

// Write renders f into the file name, relative to the output directory.
func (w *Writer) Write(ctx context.Context, f *jen.File, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fullPath := filepath.Join(w.dir, name)

	// 1. Render
	start := time.Now()
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		if !w.check {
			w.debug(fullPath, buf.Bytes())
		}
		return NewGenerationError("render", name, "", err)
	}
	rendered := time.Since(start)

	// 2. Format using goimports (removes unused imports and adds missing ones)
	start = time.Now()
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		if !w.check {
			w.debug(fullPath, buf.Bytes())
		}
		return NewGenerationError("format", name, "", err)
	}
	formattedIn := time.Since(start)

	// 3. Compare with the existing file
	existing, err := os.ReadFile(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return NewGenerationError("read", name, "", err)
	}
	unchanged := err == nil && bytes.Equal(existing, formatted)

	// 4. Write
	start = time.Now()
	switch {
	case unchanged:
		w.log.Debug("file unchanged", "file", name)
	case w.check:
		w.log.Info("file out of date", "file", name)
	default:
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return NewGenerationError("write", name, "create directory", err)
		}
		if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
			return NewGenerationError("write", name, "", err)
		}
		w.log.Debug("file written", "file", name, "bytes", len(formatted))
	}
	written := time.Since(start)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.metrics.RenderTime += rendered
	w.metrics.FormatTime += formattedIn
	w.metrics.WriteTime += written
	switch {
	case unchanged:
		w.metrics.FilesUnchanged++
	case w.check:
		w.stale = append(w.stale, name)
	default:
		w.metrics.FilesGenerated++
		w.metrics.TotalBytes += int64(len(formatted))
	}
	return nil
}

// debug writes the unformatted output next to the target for debugging.
// Errors are intentionally ignored as we're already in error state.
func (w *Writer) debug(fullPath string, src []byte) {
	debugPath := fullPath + ".error"
	_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
	if err := os.WriteFile(debugPath, src, 0o644); err == nil {
		w.log.Warn("unformatted output written", "file", debugPath)
	}
}
