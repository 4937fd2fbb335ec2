package common

import "path/filepath"

// Stem returns the last element of p without its extension.
// Dotfiles keep their name (".hidden" stays ".hidden"), and a trailing dot
// is not an extension. Returns empty string if p is empty.
func Stem(p string) string {
	if p == "" {
		return ""
	}

	base := filepath.Base(p)

	ext := filepath.Ext(base)
	if ext == base || ext == "." {
		return base
	}

	return base[:len(base)-len(ext)]
}
