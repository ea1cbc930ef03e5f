// Package adapter contains the filesystem, dialect and snippet store adapters
// the strata workflow depends on.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	m "strata.dev/pkg/strata/internal/model"
)

// recursiveSuffix marks a Go-style recursive path pattern ("./...").
const recursiveSuffix = "..."

// SourceFilter narrows source discovery.
type SourceFilter struct {
	// Include globs are matched against the slash-separated path relative to
	// the walked root. Empty means every file with a known dialect.
	Include []string
	// Exclude regular expressions are matched against the slash-separated path.
	Exclude []string
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when discovering sources and persisting snippets. It hides direct
// `os` access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get discovers source files for the given paths. A path ending in "/..."
	// is walked recursively, a directory is read one level deep, and a file
	// is returned as is.
	Get(ctx context.Context, paths []m.Path, filter SourceFilter) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory.
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// Glob returns the paths matching a filepath.Match pattern.
	Glob(ctx context.Context, pattern string) ([]m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	dialects DialectAdapter
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter that keeps only
// files the dialect adapter recognises.
func NewLocalSourceFSAdapter(dialects DialectAdapter) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{dialects: dialects}
}

var skippedDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"vendor":       true,
	"node_modules": true,
}

// Get discovers sources. The result is sorted by path and free of duplicates.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, filter SourceFilter) ([]m.Source, error) {
	includes, err := compileIncludes(filter.Include)
	if err != nil {
		return nil, err
	}

	excludes, err := compileExcludes(filter.Exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	seen := make(map[string]bool)

	var sources []m.Source

	for _, path := range paths {
		root, recursive := splitRecursive(string(path))

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			source, ok := a.source(root)
			if !ok {
				return nil, fmt.Errorf("%w for %s", m.ErrUnknownDialect, root)
			}

			if !seen[root] {
				seen[root] = true

				sources = append(sources, source)
			}

			continue
		}

		err = a.Walk(ctx, m.Path(root), recursive, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if file != root && skippedDirs[info.Name()] {
					return filepath.SkipDir
				}

				return nil
			}

			rel, err := filepath.Rel(root, file)
			if err != nil {
				return err
			}

			rel = filepath.ToSlash(rel)
			if !matchesInclude(rel, includes) || matchesExclude(filepath.ToSlash(file), excludes) {
				return nil
			}

			source, ok := a.source(file)
			if !ok || seen[file] {
				return nil
			}

			seen[file] = true

			sources = append(sources, source)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Origin.ShortPath < sources[j].Origin.ShortPath
	})

	slog.Debug("discovered sources", "paths", len(paths), "sources", len(sources))

	return sources, nil
}

func (a *LocalSourceFSAdapter) source(path string) (m.Source, bool) {
	d, ok := a.dialects.ForPath(m.Path(path))
	if !ok {
		return m.Source{}, false
	}

	full, err := filepath.Abs(path)
	if err != nil {
		full = path
	}

	return m.Source{
		Origin: &m.File{
			FullPath:  m.Path(full),
			ShortPath: m.Path(filepath.ToSlash(filepath.Clean(path))),
		},
		Dialect: d.Name,
	}, true
}

func splitRecursive(path string) (string, bool) {
	slashed := filepath.ToSlash(path)
	if slashed != recursiveSuffix && !strings.HasSuffix(slashed, "/"+recursiveSuffix) {
		return filepath.Clean(path), false
	}

	root := strings.TrimSuffix(strings.TrimSuffix(slashed, recursiveSuffix), "/")
	if root == "" {
		root = "."
	}

	return filepath.Clean(filepath.FromSlash(root)), true
}

func compileIncludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)

		// "**/*.java" should also match files in the root itself.
		if simplified, ok := strings.CutPrefix(pattern, "**/"); ok {
			if g, err := glob.Compile(simplified, '/'); err == nil {
				globs = append(globs, g)
			}
		}
	}

	return globs, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	regexps := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		regexps = append(regexps, re)
	}

	return regexps, nil
}

func matchesInclude(rel string, includes []glob.Glob) bool {
	if len(includes) == 0 {
		return true
	}

	for _, g := range includes {
		if g.Match(rel) {
			return true
		}
	}

	return false
}

func matchesExclude(path string, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from source discovery or the output directory
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a file, creating its directory first.
func (a *LocalSourceFSAdapter) WriteFile(_ context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// Glob returns the paths matching pattern in sorted order.
func (a *LocalSourceFSAdapter) Glob(_ context.Context, pattern string) ([]m.Path, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// IsNotExist reports whether err means a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
