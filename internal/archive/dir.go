package archive

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Explode writes every file entry of the container into dir, mirroring the
// entry paths as a directory tree. Directory markers become directories.
func Explode(c Container, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrIO, dir, err)
	}
	for _, entry := range c.Entries() {
		target := filepath.Join(dir, filepath.FromSlash(entry.Path))
		if entry.Dir {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("%w: create %s: %v", ErrIO, target, err)
			}
			continue
		}
		data, err := c.Read(entry.Path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %v", ErrIO, filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("%w: write %s: %v", ErrIO, target, err)
		}
	}
	return nil
}

// DirContainer serves an exploded package tree through the Container
// interface. Entries appear in the sorted order of the filesystem walk,
// which generally differs from the ZIP native order; ordinal references
// must not be resolved against it.
type DirContainer struct {
	root    string
	entries []Entry
}

// NewDirContainer indexes the tree rooted at root.
func NewDirContainer(root string) (*DirContainer, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", ErrIO, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrIO, root)
	}

	var entries []Entry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			entries = append(entries, Entry{Path: rel + "/", Dir: true})
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Path: rel, Size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walk %s: %v", ErrIO, root, err)
	}

	return &DirContainer{root: root, entries: entries}, nil
}

// Entries returns entry metadata in sorted walk order.
func (c *DirContainer) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Read returns the payload of the named file entry.
func (c *DirContainer) Read(path string) ([]byte, error) {
	for _, entry := range c.entries {
		if entry.Path != path || entry.Dir {
			continue
		}
		data, err := os.ReadFile(filepath.Join(c.root, filepath.FromSlash(path)))
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, path)
}

// Close is a no-op; the directory store holds no open handles.
func (c *DirContainer) Close() error {
	return nil
}

// BuildFromDir recompresses an exploded tree into a package at outputPath.
func BuildFromDir(root, outputPath string) error {
	c, err := NewDirContainer(root)
	if err != nil {
		return err
	}
	entries := c.Entries()
	out := make([]OutputEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Dir {
			out = append(out, OutputEntry{Path: entry.Path, Dir: true})
			continue
		}
		data, err := c.Read(entry.Path)
		if err != nil {
			return err
		}
		out = append(out, OutputEntry{Path: entry.Path, Data: data})
	}
	return WriteContainer(outputPath, out)
}
