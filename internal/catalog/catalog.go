package catalog

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"docpatch/internal/archive"
)

var (
	// ErrOrdinalOutOfRange marks an ordinal reference outside [1, len].
	ErrOrdinalOutOfRange = errors.New("ordinal out of range")
	// ErrFilenameNotFound marks a leaf filename absent from the catalog.
	ErrFilenameNotFound = errors.New("media filename not found")
)

// Catalog is the ordered media view of one opened container.
type Catalog struct {
	prefix  string
	entries []archive.Entry
}

// Build filters the container's non-directory entries under mediaPrefix,
// preserving native order.
func Build(c archive.Container, mediaPrefix string) Catalog {
	var entries []archive.Entry
	for _, entry := range c.Entries() {
		if entry.Dir || !strings.HasPrefix(entry.Path, mediaPrefix) {
			continue
		}
		entries = append(entries, entry)
	}
	return Catalog{prefix: mediaPrefix, entries: entries}
}

// Len reports the number of media entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the media entries in native order.
func (c Catalog) Entries() []archive.Entry {
	out := make([]archive.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ResolveOrdinal returns the n-th media entry, 1-based, in native order.
func (c Catalog) ResolveOrdinal(n int) (archive.Entry, error) {
	if n < 1 || n > len(c.entries) {
		return archive.Entry{}, fmt.Errorf("%w: %d (catalog has %d entries)", ErrOrdinalOutOfRange, n, len(c.entries))
	}
	return c.entries[n-1], nil
}

// ResolveFilename returns the media entry whose final path component equals
// leaf, case-sensitive. When several entries share a leaf name the first in
// native order wins; callers relying on duplicates should reference by
// ordinal instead.
func (c Catalog) ResolveFilename(leaf string) (archive.Entry, error) {
	for _, entry := range c.entries {
		if path.Base(entry.Path) == leaf {
			return entry, nil
		}
	}
	return archive.Entry{}, fmt.Errorf("%w: %s", ErrFilenameNotFound, leaf)
}
