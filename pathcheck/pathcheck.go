// Package pathcheck validates file paths before the compression core
// runs: a source must be a readable regular file, and a destination's
// directory must be writable. The core itself assumes open-able
// paths.
package pathcheck

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source reports an error unless path names a readable regular file.
func Source(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("source %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("source %s: not a regular file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("source %s: %w", path, err)
	}
	f.Close()
	return nil
}

// Destination reports an error unless the directory that would hold
// path exists and is writable. Writability is probed by creating and
// removing a temporary file, which works uniformly across platforms.
func Destination(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("destination %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination %s: %s is not a directory", path, dir)
	}
	f, err := os.CreateTemp(dir, ".pathcheck-*")
	if err != nil {
		return fmt.Errorf("destination %s: directory not writable: %w", path, err)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}
