// Package artifact writes generated theme files under a project root.
package artifact

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned for a theme path that would leave the project root.
var ErrOutsideRoot = errors.New("path escapes the project root")

// ThemePath returns the slash-separated path of a variant's theme file
// relative to the project root, e.g. "themes/evoke-ice.json".
func ThemePath(themesDir, family, variant string) string {
	return path.Join(filepath.ToSlash(themesDir), fmt.Sprintf("%s-%s.json", family, variant))
}

// ValidateRelative checks that rel stays inside the project root. Theme paths
// are listed in the manifest relative to it, so absolute paths and ".."
// segments are rejected.
func ValidateRelative(rel string) error {
	if rel == "" {
		return fmt.Errorf("%w: empty path", ErrOutsideRoot)
	}
	p := filepath.FromSlash(rel)
	if filepath.IsAbs(p) || strings.HasPrefix(rel, "~/") {
		return fmt.Errorf("%w: %s is absolute", ErrOutsideRoot, rel)
	}

	clean := path.Clean(filepath.ToSlash(rel))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %s", ErrOutsideRoot, rel)
	}
	return nil
}

// Writer persists artifacts relative to Root.
type Writer struct {
	// Root is the project directory; relative paths are resolved against it.
	Root string
	// Backup renames an existing file to <name>.backup before writing.
	Backup bool
	// DryRun reports the target without touching the filesystem.
	DryRun bool
}

// Resolve returns the filesystem path for a root-relative artifact path.
// A leading "~/" expands to the home directory.
func (w *Writer) Resolve(rel string) (string, error) {
	p := filepath.FromSlash(rel)
	if strings.HasPrefix(rel, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, p[2:]), nil
	}
	if filepath.IsAbs(p) {
		return p, nil
	}
	return filepath.Join(w.Root, p), nil
}

// Write stores data at rel and returns the resolved path.
func (w *Writer) Write(rel string, data []byte) (string, error) {
	full, err := w.Resolve(rel)
	if err != nil {
		return "", err
	}
	if w.DryRun {
		return full, nil
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if w.Backup {
		if _, err := os.Stat(full); err == nil {
			if err := copyFile(full, full+".backup"); err != nil {
				return "", fmt.Errorf("failed to create backup: %w", err)
			}
		}
	}

	if err := WriteFileAtomic(full, data, 0o644); err != nil {
		return "", err
	}
	return full, nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
