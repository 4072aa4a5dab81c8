package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"docpatch/internal/fileutil"
)

// WriteContainer assembles a new deflate-compressed package from the given
// entries, preserving their order exactly. The archive is staged in memory
// and placed at outputPath atomically; on any failure outputPath is left
// untouched. Entry paths must be unique.
func WriteContainer(outputPath string, entries []OutputEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry.Path]; dup {
			return fmt.Errorf("%w: duplicate entry path %s", ErrIO, entry.Path)
		}
		seen[entry.Path] = struct{}{}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range entries {
		header := &zip.FileHeader{Name: entry.Path, Method: zip.Deflate}
		if entry.Dir {
			header.Method = zip.Store
			if _, err := zw.CreateHeader(header); err != nil {
				return fmt.Errorf("%w: add directory %s: %v", ErrIO, entry.Path, err)
			}
			continue
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("%w: add entry %s: %v", ErrIO, entry.Path, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return fmt.Errorf("%w: write entry %s: %v", ErrIO, entry.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: finalize archive: %v", ErrIO, err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("%w: create output directory: %v", ErrIO, err)
	}
	if err := fileutil.WriteFileAtomic(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: place %s: %v", ErrIO, outputPath, err)
	}
	return nil
}
