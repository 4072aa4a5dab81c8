package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// ZipContainer reads a Word package directly from its ZIP stream.
type ZipContainer struct {
	path    string
	rc      *zip.ReadCloser
	entries []Entry
}

// Open opens the package at path read-only. It fails with ErrNotFound when
// the path does not exist and ErrCorrupt when the file is not a valid ZIP
// stream.
func Open(path string) (*ZipContainer, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if errors.Is(err, zip.ErrFormat) || errors.Is(err, zip.ErrChecksum) {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}

	entries := make([]Entry, 0, len(rc.File))
	for _, file := range rc.File {
		entries = append(entries, Entry{
			Path: file.Name,
			Size: int64(file.UncompressedSize64),
			Dir:  isDirEntry(file),
		})
	}

	return &ZipContainer{path: path, rc: rc, entries: entries}, nil
}

// Path returns the filesystem location the container was opened from.
func (c *ZipContainer) Path() string {
	return c.path
}

// Entries returns entry metadata in native archive order.
func (c *ZipContainer) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Read returns the payload of the named file entry. Directory markers are
// never readable.
func (c *ZipContainer) Read(path string) ([]byte, error) {
	for _, file := range c.rc.File {
		if file.Name != path || isDirEntry(file) {
			continue
		}
		r, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open entry %s: %v", ErrCorrupt, path, err)
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: read entry %s: %v", ErrCorrupt, path, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, path)
}

// Close releases the underlying ZIP handle.
func (c *ZipContainer) Close() error {
	if c == nil || c.rc == nil {
		return nil
	}
	err := c.rc.Close()
	c.rc = nil
	return err
}

func isDirEntry(file *zip.File) bool {
	return file.FileInfo().IsDir() || strings.HasSuffix(file.Name, "/")
}
