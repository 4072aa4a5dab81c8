package archive

import "errors"

var (
	// ErrNotFound marks an input document path that does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrCorrupt marks an input that is not a readable ZIP stream.
	ErrCorrupt = errors.New("corrupt archive")
	// ErrEntryNotFound marks a payload read for an unknown entry path.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrIO marks a failure while assembling or placing an output archive.
	ErrIO = errors.New("archive io failure")
)

// Entry describes one named member of a Container. Directory markers are
// flagged so callers never treat them as media candidates or read them.
type Entry struct {
	Path string
	Size int64
	Dir  bool
}

// Container is an ordered, read-only set of entries. Entries returns the
// native order of the backing store; Read returns the payload of a file
// entry. Implementations own their handles and release them on Close.
type Container interface {
	Entries() []Entry
	Read(path string) ([]byte, error)
	Close() error
}

// OutputEntry is one member of an archive under construction. Directory
// markers carry no data.
type OutputEntry struct {
	Path string
	Data []byte
	Dir  bool
}
