package catalog_test

import (
	"errors"
	"path/filepath"
	"testing"

	"docpatch/internal/archive"
	"docpatch/internal/catalog"
	"docpatch/internal/testsupport"
)

const mediaPrefix = "word/media/"

func buildCatalog(t *testing.T, media ...testsupport.MediaFile) catalog.Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.docx")
	testsupport.BuildDocx(t, path, media...)
	c, err := archive.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return catalog.Build(c, mediaPrefix)
}

func TestBuildPreservesNativeOrder(t *testing.T) {
	cat := buildCatalog(t,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("a")},
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("b")},
		testsupport.MediaFile{Name: "img3.png", Data: []byte("c")},
	)

	if cat.Len() != 3 {
		t.Fatalf("catalog length: got %d, want 3", cat.Len())
	}
	want := []string{"word/media/img1.png", "word/media/img2.jpg", "word/media/img3.png"}
	for i, entry := range cat.Entries() {
		if entry.Path != want[i] {
			t.Fatalf("entry %d: got %s, want %s", i, entry.Path, want[i])
		}
	}
}

func TestResolveOrdinal(t *testing.T) {
	cat := buildCatalog(t,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("a")},
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("b")},
		testsupport.MediaFile{Name: "img3.png", Data: []byte("c")},
	)

	for n, want := range map[int]string{
		1: "word/media/img1.png",
		2: "word/media/img2.jpg",
		3: "word/media/img3.png",
	} {
		entry, err := cat.ResolveOrdinal(n)
		if err != nil {
			t.Fatalf("ordinal %d: %v", n, err)
		}
		if entry.Path != want {
			t.Fatalf("ordinal %d: got %s, want %s", n, entry.Path, want)
		}
	}

	for _, n := range []int{0, 4, -1} {
		if _, err := cat.ResolveOrdinal(n); !errors.Is(err, catalog.ErrOrdinalOutOfRange) {
			t.Fatalf("ordinal %d: expected ErrOrdinalOutOfRange, got %v", n, err)
		}
	}
}

func TestResolveFilename(t *testing.T) {
	cat := buildCatalog(t,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("a")},
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("b")},
	)

	entry, err := cat.ResolveFilename("img2.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Path != "word/media/img2.jpg" {
		t.Fatalf("unexpected entry %s", entry.Path)
	}

	if _, err := cat.ResolveFilename("IMG2.JPG"); !errors.Is(err, catalog.ErrFilenameNotFound) {
		t.Fatalf("filename lookup should be case-sensitive, got %v", err)
	}
	if _, err := cat.ResolveFilename("absent.png"); !errors.Is(err, catalog.ErrFilenameNotFound) {
		t.Fatalf("expected ErrFilenameNotFound, got %v", err)
	}
}

func TestSnapshotFingerprint(t *testing.T) {
	cat := buildCatalog(t,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("a")},
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("b")},
	)

	snap := cat.Snapshot()
	if len(snap.Paths) != 2 {
		t.Fatalf("snapshot paths: got %d, want 2", len(snap.Paths))
	}
	if snap.Fingerprint == "" {
		t.Fatal("snapshot fingerprint empty")
	}

	if err := cat.VerifyFingerprint(snap.Fingerprint); err != nil {
		t.Fatalf("matching fingerprint rejected: %v", err)
	}

	drifted := buildCatalog(t,
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("b")},
		testsupport.MediaFile{Name: "img1.png", Data: []byte("a")},
	)
	if err := drifted.VerifyFingerprint(snap.Fingerprint); !errors.Is(err, catalog.ErrSnapshotDrift) {
		t.Fatalf("expected ErrSnapshotDrift, got %v", err)
	}
}
