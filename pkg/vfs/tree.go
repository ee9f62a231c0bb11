// Package vfs exposes the host workspace as a read-only directory-tree query
// surface. The resolver core never owns filesystem state: it only reads
// through a Tree, which wraps whatever afero filesystem the host hands in
// (the OS filesystem in the CLI, a MemMapFs in tests).
package vfs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// Tree is a rooted, slash-separated view over an afero filesystem.
type Tree struct {
	fs       afero.Fs
	root     string
	excludes []string

	txn txnLock
}

type Option func(*Tree)

// WithExcludes registers doublestar globs (relative to the root) whose
// directories are skipped by project-wide scans, mirroring the host's
// library/excluded scopes.
func WithExcludes(globs ...string) Option {
	return func(t *Tree) {
		t.excludes = append(t.excludes, globs...)
	}
}

func NewTree(fsys afero.Fs, root string, opts ...Option) *Tree {
	t := &Tree{
		fs:   fsys,
		root: filepath.ToSlash(path.Clean(root)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewOSTree roots a Tree at an OS directory.
func NewOSTree(root string, opts ...Option) *Tree {
	return NewTree(afero.NewOsFs(), root, opts...)
}

func (t *Tree) Root() string {
	return t.root
}

func (t *Tree) Exists(p string) bool {
	_, err := t.fs.Stat(filepath.FromSlash(p))
	return err == nil
}

func (t *Tree) IsDir(p string) bool {
	info, err := t.fs.Stat(filepath.FromSlash(p))
	return err == nil && info.IsDir()
}

// Child returns the path of the named entry under dir, if it exists.
func (t *Tree) Child(dir, name string) (string, bool) {
	p := path.Join(dir, name)
	if t.Exists(p) {
		return p, true
	}
	return "", false
}

func (t *Tree) HasChild(dir, name string) bool {
	_, ok := t.Child(dir, name)
	return ok
}

// Children returns the entry names directly under dir, sorted. A missing or
// unreadable directory yields nil.
func (t *Tree) Children(dir string) []string {
	infos, err := afero.ReadDir(t.fs, filepath.FromSlash(dir))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names
}

// Parent returns dir's parent directory. It reports false once dir has no
// parent (the filesystem root).
func (t *Tree) Parent(dir string) (string, bool) {
	parent := path.Dir(dir)
	if parent == dir {
		return "", false
	}
	return parent, true
}

func (t *Tree) Name(p string) string {
	return path.Base(p)
}

func (t *Tree) ReadFile(p string) ([]byte, error) {
	data, err := afero.ReadFile(t.fs, filepath.FromSlash(p))
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}

// FindFilesNamed walks the whole tree and returns every file whose base name
// equals name, excluding entries under the configured exclusion globs. The
// result is in walk order (lexicographic per directory level).
func (t *Tree) FindFilesNamed(ctx context.Context, name string) []string {
	var found []string
	err := afero.Walk(t.fs, filepath.FromSlash(t.root), func(p string, info os.FileInfo, err error) error {
		if err != nil {
			// unreadable subtrees contribute nothing
			return nil //nolint:nilerr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		sp := filepath.ToSlash(p)
		if info.IsDir() && t.isExcluded(sp) {
			return filepath.SkipDir
		}
		if !info.IsDir() && info.Name() == name && !t.isExcluded(sp) {
			found = append(found, sp)
		}
		return nil
	})
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("name", name).Msg("file scan aborted")
	}
	return found
}

func (t *Tree) isExcluded(p string) bool {
	rel := strings.TrimPrefix(p, t.root)
	rel = strings.TrimPrefix(rel, "/")
	for _, glob := range t.excludes {
		if ok, err := doublestar.Match(glob, rel); err == nil && ok {
			return true
		}
	}
	return false
}
