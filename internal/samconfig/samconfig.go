package samconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/BurntSushi/toml"
)

// ReservedKeys are top-level keys that are not stages.
var ReservedKeys = []string{"version", "atlantis"}

// File is a parsed samconfig file.
type File struct {
	path string
	data map[string]any
}

// Load parses the samconfig file at path.
func Load(path string) (*File, error) {
	data := map[string]any{}
	if _, err := toml.DecodeFile(path, &data); err != nil {
		return nil, fmt.Errorf("failed to parse samconfig %s: %w", path, err)
	}
	return &File{path: path, data: data}, nil
}

// Stages returns the stage names in sorted order.
func (f *File) Stages() []string {
	var stages []string
	for k := range f.data {
		if !slices.Contains(ReservedKeys, k) {
			stages = append(stages, k)
		}
	}
	sort.Strings(stages)
	return stages
}

// StageCount returns the number of stage tables.
func (f *File) StageCount() int {
	return len(f.Stages())
}

// RemoveStage deletes the table for stage. It reports whether it existed.
func (f *File) RemoveStage(stage string) bool {
	if slices.Contains(ReservedKeys, stage) {
		return false
	}
	if _, ok := f.data[stage]; !ok {
		return false
	}
	delete(f.data, stage)
	return true
}

// Save rewrites the file in place, keeping its permissions.
func (f *File) Save() error {
	info, err := os.Stat(f.path)
	if err != nil {
		return fmt.Errorf("failed to stat samconfig %s: %w", f.path, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f.data); err != nil {
		return fmt.Errorf("failed to encode samconfig %s: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".samconfig-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set samconfig permissions: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write samconfig: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write samconfig: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace samconfig %s: %w", f.path, err)
	}
	return nil
}

// Remove deletes the file and then its parent directory if it is now empty.
// It reports whether the directory was removed.
func Remove(path string) (bool, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to delete samconfig %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return false, nil
	}
	if err := os.Remove(dir); err != nil {
		return false, nil
	}
	return true, nil
}
