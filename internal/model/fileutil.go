package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ImageInfo describes a recipe's image reference after resolution
type ImageInfo struct {
	Ref      string // Reference as written in the recipe file
	Path     string // Resolved filesystem path
	Exists   bool   // Whether the resolved path is a readable file
	Size     int64  // File size in bytes, if it exists
	ErrorMsg string // Why the image could not be found
}

// ExpandTilde expands a leading ~/ to the user's home directory
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

// ResolveImage resolves an image reference relative to baseDir and checks
// that it points at a file. The reference itself is never rewritten.
func ResolveImage(baseDir, ref string) ImageInfo {
	result := ImageInfo{Ref: ref}
	if strings.TrimSpace(ref) == "" {
		result.ErrorMsg = "no image"
		return result
	}

	p := ExpandTilde(ref)
	if !filepath.IsAbs(p) && baseDir != "" {
		p = filepath.Join(baseDir, p)
	}
	result.Path = p

	info, err := os.Stat(p)
	if err != nil {
		result.ErrorMsg = fmt.Sprintf("Could not read image: %v", err)
		return result
	}
	if info.IsDir() {
		result.ErrorMsg = "image reference is a directory"
		return result
	}

	result.Exists = true
	result.Size = info.Size()
	return result
}
