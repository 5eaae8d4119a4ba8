// Package category maps file extensions to category folder names.
package category

import (
	"sort"
	"strings"
)

// Fallback is the category assigned when no extension matches.
const Fallback = "Others"

// Map resolves lowercase file extensions to category names. It is
// immutable after construction.
type Map struct {
	byExt    map[string]string
	fallback string
}

// New builds a Map from category name to extension list. Extensions may
// carry a leading dot and any casing; both are normalized away. Callers
// should keep extension lists disjoint, the winner among duplicates is
// unspecified.
func New(categories map[string][]string, fallback string) *Map {
	if fallback == "" {
		fallback = Fallback
	}
	byExt := make(map[string]string)
	for name, exts := range categories {
		for _, ext := range exts {
			byExt[normalize(ext)] = name
		}
	}
	return &Map{byExt: byExt, fallback: fallback}
}

// Default returns a Map with the built-in extension table.
func Default() *Map {
	return New(DefaultTable(), Fallback)
}

// Lookup returns the category for ext, or the fallback when ext is empty
// or unmapped. Matching is case-insensitive and ignores a leading dot.
func (m *Map) Lookup(ext string) string {
	ext = normalize(ext)
	if ext == "" {
		return m.fallback
	}
	if name, ok := m.byExt[ext]; ok {
		return name
	}
	return m.fallback
}

// Fallback returns the fallback category name.
func (m *Map) Fallback() string {
	return m.fallback
}

// Names returns every category name in the map, fallback included,
// sorted for stable output.
func (m *Map) Names() []string {
	seen := map[string]bool{m.fallback: true}
	names := []string{m.fallback}
	for _, name := range m.byExt {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Extensions returns the extensions mapped to name, sorted.
func (m *Map) Extensions(name string) []string {
	var exts []string
	for ext, cat := range m.byExt {
		if cat == name {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
