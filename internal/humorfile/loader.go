// SPDX-License-Identifier: MPL-2.0

package humorfile

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/humors/humor/internal/commandtree"

	"github.com/charmbracelet/log"
)

const (
	// DefaultFileName is the user humorfile looked up in the working directory.
	DefaultFileName = "humor.yaml"
	// BaseDirName is the directory under the user's home holding the base humorfile.
	BaseDirName = ".humors"
	// BaseFileName is the base humorfile loaded before the user humorfile.
	BaseFileName = "humor-base.yaml"
)

type (
	// Loader reads humorfiles and resolves their imports into command trees.
	Loader struct {
		logger  *log.Logger
		homeDir string
	}

	// LoaderOption configures a Loader.
	LoaderOption func(*Loader)
)

// WithLogger sets the logger used for load and import tracing.
func WithLogger(logger *log.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithHomeDir overrides the home directory used to locate the base humorfile.
func WithHomeDir(dir string) LoaderOption {
	return func(l *Loader) { l.homeDir = dir }
}

// NewLoader creates a Loader. Without WithLogger, log output is discarded.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the humorfile at path and returns the tree formed by its imports
// followed by its own commands.
//
// Imports are resolved against the directory containing path, loaded
// recursively in list order and merged one after another; the document's own
// commands are merged last. The first duplicate aborts the load.
func (l *Loader) Load(path string) (*commandtree.Tree, error) {
	return l.load(path, nil)
}

// LoadDefault loads the base humorfile (~/.humors/humor-base.yaml) with its
// imports. A missing base humorfile yields an empty tree.
func (l *Loader) LoadDefault() (*commandtree.Tree, error) {
	path, err := l.BasePath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("no base humorfile", "path", path)
		return commandtree.New(), nil
	}
	return l.Load(path)
}

// LoadWithBase loads the base humorfile, then the user humorfile at path, and
// merges the user commands onto the base ones.
func (l *Loader) LoadWithBase(path string) (*commandtree.Tree, error) {
	base, err := l.LoadDefault()
	if err != nil {
		return nil, err
	}
	user, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	merged, err := commandtree.MergeConfigs(base, user)
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// BasePath returns the location of the base humorfile. It fails with a
// FileNotFoundError for "~" when the home directory cannot be determined.
func (l *Loader) BasePath() (string, error) {
	home := l.homeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", &FileNotFoundError{Path: "~", Err: err}
		}
	}
	return filepath.Join(home, BaseDirName, BaseFileName), nil
}

// ResolveImport returns the path of an import reference found in the
// humorfile at basePath. Relative references are joined to basePath's
// directory; absolute references are returned unchanged.
func ResolveImport(basePath, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(basePath), ref)
}

// load reads path while chain holds the documents currently being loaded
// above it, outermost first.
func (l *Loader) load(path string, chain []string) (*commandtree.Tree, error) {
	key := canonicalPath(path)
	if slices.Contains(chain, key) {
		return nil, &ImportCycleError{Chain: append(slices.Clone(chain), key)}
	}
	chain = append(slices.Clone(chain), key)

	l.logger.Debug("loading humorfile", "path", path, "format", FormatFromPath(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}

	doc, err := Decode(data, path)
	if err != nil {
		return nil, err
	}

	tree := commandtree.New()
	for _, ref := range doc.Import {
		importPath := ResolveImport(path, ref)
		l.logger.Debug("resolving import", "from", path, "import", importPath)

		imported, err := l.load(importPath, chain)
		if err != nil {
			return nil, err
		}
		if err := tree.Merge(imported); err != nil {
			return nil, err
		}
	}

	if err := tree.Merge(commandtree.FromMap(doc.Commands)); err != nil {
		return nil, err
	}

	l.logger.Debug("loaded humorfile", "path", path, "imports", len(doc.Import), "commands", tree.Len())
	return tree, nil
}

// canonicalPath identifies a document for cycle detection.
func canonicalPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
