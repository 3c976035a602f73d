// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrEmptyFilename indicates sanitization produced an empty name.
var ErrEmptyFilename = errors.New("filename is empty after sanitization")

// MaxFilenameLength caps sanitized filenames (common filesystem limit).
const MaxFilenameLength = 255

// SanitizeFilename strips path components and characters that are unsafe
// in cross-platform filenames, and caps the length while preserving the
// extension. Returns ErrEmptyFilename if nothing usable remains.
func SanitizeFilename(name string) (string, error) {
	// Drop directory components, both separator styles. filepath.Base only
	// understands the host separator, so handle backslashes explicitly.
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}
	name = filepath.Base(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(`<>:"|?*`, r) {
			continue
		}
		b.WriteRune(r)
	}
	name = b.String()

	if name == "" || name == "." || name == ".." {
		return "", ErrEmptyFilename
	}

	if len(name) > MaxFilenameLength {
		ext := filepath.Ext(name)
		if len(ext) >= MaxFilenameLength {
			ext = ""
		}
		name = name[:MaxFilenameLength-len(ext)] + ext
	}

	return name, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CopyFile copies src to dst, preserving the source modification time.
// The destination is created 0644 and truncated if it exists.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}

	in, err := os.Open(src) // #nosec G304 -- callers sanitize paths before copying
	if err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) // #nosec G304
	if err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}

	// Best effort copy2 semantics: keep the source mtime on the copy.
	if err := os.Chtimes(dst, time.Now(), info.ModTime()); err != nil {
		return fmt.Errorf("preserving mtime of %s: %w", dst, err)
	}

	return nil
}
