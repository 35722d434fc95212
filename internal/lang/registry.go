package lang

import (
	"path/filepath"
	"sort"
	"strings"
)

// Registry maps file extensions to language adapters. It is a plain
// value owned by whoever builds the pipeline; there is no process-wide
// adapter registry.
type Registry struct {
	byLanguage  map[string]*Adapter
	byExtension map[string]*Adapter
}

// NewRegistry returns a registry with all builtin language adapters.
func NewRegistry() *Registry {
	r := &Registry{
		byLanguage:  make(map[string]*Adapter),
		byExtension: make(map[string]*Adapter),
	}
	for _, a := range []*Adapter{NewPython(), NewJavaScript(), NewTypeScript(), NewTSX()} {
		r.Add(a)
	}
	return r
}

// Add registers an adapter for its language and extensions. A later
// registration for the same extension replaces the earlier one.
func (r *Registry) Add(a *Adapter) {
	r.byLanguage[a.Language()] = a
	for _, ext := range a.Extensions() {
		r.byExtension[strings.ToLower(ext)] = a
	}
}

// ByLanguage returns the adapter for a language tag, or nil.
func (r *Registry) ByLanguage(language string) *Adapter {
	return r.byLanguage[strings.ToLower(language)]
}

// ByPath returns the adapter handling the path's extension, or nil when
// the file type is unsupported.
func (r *Registry) ByPath(path string) *Adapter {
	return r.byExtension[strings.ToLower(filepath.Ext(path))]
}

// Extensions returns all supported extensions in sorted order.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.byExtension))
	for ext := range r.byExtension {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Languages returns all supported language tags in sorted order.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.byLanguage))
	for name := range r.byLanguage {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
