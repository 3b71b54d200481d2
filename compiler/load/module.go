package load

import (
	"os"
	"path"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"golang.org/x/mod/modfile"
)

// ImportPath returns the import path of the package in dir, derived from the
// nearest go.mod at or above it. dir does not need to exist yet.
func ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s", dir)
	}
	for d := abs; ; {
		data, err := os.ReadFile(filepath.Join(d, "go.mod"))
		switch {
		case err == nil:
			mod := modfile.ModulePath(data)
			if mod == "" {
				return "", errors.Newf("%s: missing module directive", filepath.Join(d, "go.mod"))
			}
			rel, err := filepath.Rel(d, abs)
			if err != nil {
				return "", errors.Wrapf(err, "resolve %s", dir)
			}
			if rel == "." {
				return mod, nil
			}
			return path.Join(mod, filepath.ToSlash(rel)), nil
		case !os.IsNotExist(err):
			return "", errors.Wrapf(err, "read go.mod")
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", errors.WithHint(
				errors.Newf("no go.mod found for %s", dir),
				"set the import path of the generated package explicitly (--package)",
			)
		}
		d = parent
	}
}
