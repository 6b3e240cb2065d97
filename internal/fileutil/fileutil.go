// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/markdown2html/internal/pipeline"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// IsRegularFile returns true if the path exists and is a regular file.
// Symlinks are followed; directories, devices and sockets are rejected.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir returns true if the path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadLines reads the whole file and splits it into lines without terminators.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- caller-provided input path
	if err != nil {
		return nil, err
	}
	return pipeline.SplitLines(string(content)), nil
}

// WriteFile writes content to path, creating or truncating the file and
// creating missing parent directories.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	// #nosec G306 -- HTML files are meant to be readable
	return os.WriteFile(path, []byte(content), FilePermissions)
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "/absolute/path.css" -> true (absolute)
//   - "C:\windows\path.css" -> true (Windows)
//   - "my-style" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS returns true if the string looks like CSS content rather than a
// name or path. Style names and file paths never contain braces.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}
