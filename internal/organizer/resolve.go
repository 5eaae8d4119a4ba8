package organizer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Ext returns the extension of name: the text after the last dot,
// lowercased, without the dot. Names whose only dot is the leading one
// (".bashrc") count as having no extension.
func Ext(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// splitExt splits name into stem and extension, the extension keeping
// its dot. Follows the same leading-dot rule as Ext.
func splitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// ResolveDestination returns a path inside dir for name that the exists
// predicate reports free. On collision a " (n)" suffix is inserted before
// the extension, with n counting up from 1 until a free name is found.
// A predicate error aborts resolution immediately so a persistently
// failing probe cannot loop forever. The predicate is injected so the
// resolver can be tested without a filesystem.
func ResolveDestination(dir, name string, exists func(string) (bool, error)) (string, error) {
	candidate := filepath.Join(dir, name)
	taken, err := exists(candidate)
	if err != nil {
		return "", fmt.Errorf("failed to probe destination %s: %w", candidate, err)
	}
	if !taken {
		return candidate, nil
	}

	stem, ext := splitExt(name)
	for n := 1; ; n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to probe destination %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
}
