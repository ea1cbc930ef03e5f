package adapter

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	m "strata.dev/pkg/strata/internal/model"
)

// DialectAdapter decides which dialect a source file is scanned with.
type DialectAdapter interface {
	// ForPath returns the dialect for path, honouring the forced language and
	// the configured extension overrides before the built-in extensions.
	ForPath(path m.Path) (m.Dialect, bool)

	// ByName looks a dialect up by its name.
	ByName(name string) (m.Dialect, error)

	// Names lists the supported dialect names in sorted order.
	Names() []string
}

// LocalDialectAdapter resolves dialects from the built-in registry.
type LocalDialectAdapter struct {
	forced     *m.Dialect
	extensions map[string]m.Dialect
}

// NewLocalDialectAdapter builds a DialectAdapter. A non-empty lang forces that
// dialect for every file; extensions maps extra file extensions (".jav") to
// dialect names.
func NewLocalDialectAdapter(lang string, extensions map[string]string) (*LocalDialectAdapter, error) {
	a := &LocalDialectAdapter{extensions: make(map[string]m.Dialect, len(extensions))}

	if strings.TrimSpace(lang) != "" {
		d, err := m.DialectByName(lang)
		if err != nil {
			return nil, err
		}

		a.forced = &d
	}

	for ext, name := range extensions {
		d, err := m.DialectByName(name)
		if err != nil {
			return nil, fmt.Errorf("extension %s: %w", ext, err)
		}

		a.extensions[normalizeExtension(ext)] = d
	}

	return a, nil
}

// ForPath resolves the dialect for path.
func (a *LocalDialectAdapter) ForPath(path m.Path) (m.Dialect, bool) {
	if a.forced != nil {
		return *a.forced, true
	}

	ext := normalizeExtension(filepath.Ext(string(path)))
	if ext == "" {
		return m.Dialect{}, false
	}

	if d, ok := a.extensions[ext]; ok {
		return d, true
	}

	return m.DialectForExtension(ext)
}

// ByName looks a dialect up by name.
func (a *LocalDialectAdapter) ByName(name string) (m.Dialect, error) {
	return m.DialectByName(name)
}

// Names lists the built-in dialects.
func (a *LocalDialectAdapter) Names() []string {
	names := m.DialectNames()
	sort.Strings(names)

	return names
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}
