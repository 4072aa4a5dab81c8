package archive_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docpatch/internal/archive"
	"docpatch/internal/testsupport"
)

func TestOpenMissingFile(t *testing.T) {
	_, err := archive.Open(filepath.Join(t.TempDir(), "missing.docx"))
	if !errors.Is(err, archive.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("this is not a zip stream"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := archive.Open(path)
	if !errors.Is(err, archive.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestEntriesNativeOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	testsupport.BuildDocx(t, path,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("one")},
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("two")},
	)

	c, err := archive.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/media/img1.png",
		"word/media/img2.jpg",
	}
	entries := c.Entries()
	if len(entries) != len(want) {
		t.Fatalf("entry count: got %d, want %d", len(entries), len(want))
	}
	for i, entry := range entries {
		if entry.Path != want[i] {
			t.Fatalf("entry %d: got %s, want %s", i, entry.Path, want[i])
		}
		if entry.Dir {
			t.Fatalf("entry %s unexpectedly flagged as directory", entry.Path)
		}
	}
}

func TestReadEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	testsupport.BuildDocx(t, path, testsupport.MediaFile{Name: "img1.png", Data: []byte("payload")})

	c, err := archive.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	data, err := c.Read("word/media/img1.png")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Fatalf("payload mismatch: got %q", data)
	}

	if _, err := c.Read("word/media/absent.png"); !errors.Is(err, archive.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestWriteContainerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.docx")
	dst := filepath.Join(dir, "dst.docx")
	testsupport.BuildDocx(t, src,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("alpha")},
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("beta")},
	)

	in, err := archive.Open(src)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	var out []archive.OutputEntry
	for _, entry := range in.Entries() {
		data, err := in.Read(entry.Path)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, archive.OutputEntry{Path: entry.Path, Data: data})
	}
	if err := archive.WriteContainer(dst, out); err != nil {
		t.Fatal(err)
	}

	reopened, err := archive.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	wantEntries := in.Entries()
	gotEntries := reopened.Entries()
	if len(gotEntries) != len(wantEntries) {
		t.Fatalf("entry count: got %d, want %d", len(gotEntries), len(wantEntries))
	}
	for i := range wantEntries {
		if gotEntries[i].Path != wantEntries[i].Path {
			t.Fatalf("entry %d: got %s, want %s", i, gotEntries[i].Path, wantEntries[i].Path)
		}
		want, err := in.Read(wantEntries[i].Path)
		if err != nil {
			t.Fatal(err)
		}
		got, err := reopened.Read(gotEntries[i].Path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != string(want) {
			t.Fatalf("payload mismatch at %s", wantEntries[i].Path)
		}
	}
}

func TestWriteContainerRejectsDuplicatePaths(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.docx")
	err := archive.WriteContainer(dst, []archive.OutputEntry{
		{Path: "word/media/img1.png", Data: []byte("a")},
		{Path: "word/media/img1.png", Data: []byte("b")},
	})
	if !errors.Is(err, archive.ErrIO) {
		t.Fatalf("expected ErrIO for duplicate paths, got %v", err)
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Fatal("output file should not exist after failed write")
	}
}
