package archive_test

import (
	"errors"
	"path/filepath"
	"testing"

	"docpatch/internal/archive"
	"docpatch/internal/testsupport"
)

func TestExplodeAndRebuild(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.docx")
	tree := filepath.Join(dir, "tree")
	rebuilt := filepath.Join(dir, "rebuilt.docx")
	testsupport.BuildDocx(t, src,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("alpha")},
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("beta")},
	)

	c, err := archive.Open(src)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := archive.Explode(c, tree); err != nil {
		t.Fatal(err)
	}
	if err := archive.BuildFromDir(tree, rebuilt); err != nil {
		t.Fatal(err)
	}

	out, err := archive.Open(rebuilt)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	for _, entry := range c.Entries() {
		want, err := c.Read(entry.Path)
		if err != nil {
			t.Fatal(err)
		}
		got, err := out.Read(entry.Path)
		if err != nil {
			t.Fatalf("read %s from rebuilt package: %v", entry.Path, err)
		}
		if string(got) != string(want) {
			t.Fatalf("payload mismatch at %s", entry.Path)
		}
	}
}

func TestDirContainerRead(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.docx")
	tree := filepath.Join(dir, "tree")
	testsupport.BuildDocx(t, src, testsupport.MediaFile{Name: "img1.png", Data: []byte("alpha")})

	c, err := archive.Open(src)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if err := archive.Explode(c, tree); err != nil {
		t.Fatal(err)
	}

	dc, err := archive.NewDirContainer(tree)
	if err != nil {
		t.Fatal(err)
	}
	defer dc.Close()

	data, err := dc.Read("word/media/img1.png")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "alpha" {
		t.Fatalf("payload mismatch: got %q", data)
	}

	if _, err := dc.Read("word/media/absent.png"); !errors.Is(err, archive.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestNewDirContainerMissingRoot(t *testing.T) {
	_, err := archive.NewDirContainer(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, archive.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
