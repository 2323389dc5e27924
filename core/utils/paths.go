package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve joins a base directory with a relative path expressed in
// slash notation and returns a cleaned, OS-native path.
func Resolve(base, rel string) string {
	return filepath.Join(base, filepath.FromSlash(rel))
}

// ExpandHome replaces a leading "~" with the current user's home directory.
// If the home directory cannot be determined, the path is returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// Absolute returns the absolute form of path, or the input unchanged if
// resolution fails (e.g. the working directory is gone).
func Absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
