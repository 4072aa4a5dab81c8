package scan

import (
	"io/fs"
	"path/filepath"
	"strings"

	"docpatch/internal/archive"
	"docpatch/internal/catalog"
)

// Kind classifies a candidate document.
type Kind string

const (
	KindWord Kind = "docx"
	KindPDF  Kind = "pdf"
)

// Candidate is one document found under the scanned root.
type Candidate struct {
	Path     string
	Kind     Kind
	HasMedia bool
}

// Find walks root recursively and returns every Word package and PDF, in
// walk order. Word packages are probed for media entries; unreadable or
// corrupt files report HasMedia false rather than failing the scan. PDFs
// are never probed (patching them is unsupported).
func Find(root, mediaPrefix string) ([]Candidate, error) {
	var candidates []Candidate
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".docx":
			candidates = append(candidates, Candidate{
				Path:     path,
				Kind:     KindWord,
				HasMedia: hasMedia(path, mediaPrefix),
			})
		case ".pdf":
			candidates = append(candidates, Candidate{Path: path, Kind: KindPDF})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func hasMedia(path, mediaPrefix string) bool {
	c, err := archive.Open(path)
	if err != nil {
		return false
	}
	defer c.Close()
	return catalog.Build(c, mediaPrefix).Len() > 0
}
