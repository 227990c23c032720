package format

import (
	"path/filepath"
	"strings"
)

// Category is a named group of file extensions. Extensions are stored
// lowercase with the leading dot.
type Category struct {
	Name       string
	Extensions []string
}

// Registry answers membership queries over a fixed extension table and
// exposes the table for display. It is immutable after New.
type Registry struct {
	categories []Category
	index      map[string]struct{}
}

// New builds the registry with the application's fixed format table.
func New() *Registry {
	cats := []Category{
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png"}},
		{Name: "Documents", Extensions: []string{".txt", ".md", ".json", ".pdf"}},
		{Name: "Archives", Extensions: []string{".zip"}},
		{Name: "Video", Extensions: []string{".mp4"}},
		{Name: "Audio", Extensions: []string{".mp3", ".wav"}},
	}

	index := make(map[string]struct{})
	for _, c := range cats {
		for _, e := range c.Extensions {
			index[e] = struct{}{}
		}
	}

	return &Registry{categories: cats, index: index}
}

// Ext returns the lowercase extension of filename, including the leading
// dot, or an empty string if the filename has none.
func Ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// IsSupported reports whether the filename's extension appears in any
// category. Matching is case-insensitive and exact; a name without an
// extension is never supported.
func (r *Registry) IsSupported(filename string) bool {
	ext := Ext(filename)
	if ext == "" {
		return false
	}
	_, ok := r.index[ext]
	return ok
}

// Categories returns the table in its fixed declaration order.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Extensions returns the union of all extensions, ordered by category.
func (r *Registry) Extensions() []string {
	var out []string
	for _, c := range r.categories {
		out = append(out, c.Extensions...)
	}
	return out
}
