package patch_test

import (
	"errors"
	"path/filepath"
	"testing"

	"docpatch/internal/archive"
	"docpatch/internal/catalog"
	"docpatch/internal/order"
	"docpatch/internal/patch"
	"docpatch/internal/testsupport"
)

const mediaPrefix = "word/media/"

func openDocx(t *testing.T, media ...testsupport.MediaFile) (*archive.ZipContainer, catalog.Catalog) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.docx")
	testsupport.BuildDocx(t, path, media...)
	c, err := archive.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, catalog.Build(c, mediaPrefix)
}

func instruction(pairs ...order.Pair) order.Instruction {
	return order.Instruction{DocumentPath: "doc.docx", Pairs: pairs}
}

func pair(ref, src string) order.Pair {
	return order.Pair{Ref: order.ParseReference(ref), SourcePath: src}
}

func TestResolveInstructionOrder(t *testing.T) {
	_, cat := openDocx(t,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("a")},
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("b")},
	)

	targets, skips := patch.Resolve(instruction(
		pair("img2.jpg", "new/b.png"),
		pair("image1", "new/a.png"),
	), cat)

	if len(skips) != 0 {
		t.Fatalf("unexpected skips: %+v", skips)
	}
	if len(targets) != 2 {
		t.Fatalf("target count: got %d, want 2", len(targets))
	}
	if targets[0].EntryPath != "word/media/img2.jpg" {
		t.Fatalf("target 0: got %s", targets[0].EntryPath)
	}
	if targets[1].EntryPath != "word/media/img1.png" {
		t.Fatalf("target 1: got %s", targets[1].EntryPath)
	}
}

func TestResolvePartialFailureIsolation(t *testing.T) {
	_, cat := openDocx(t,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("a")},
	)

	targets, skips := patch.Resolve(instruction(
		pair("image9", "new/a.png"),
		pair("image1", "new/b.png"),
		pair("absent.png", "new/c.png"),
	), cat)

	if len(targets) != 1 || targets[0].EntryPath != "word/media/img1.png" {
		t.Fatalf("resolvable target lost: %+v", targets)
	}
	if len(skips) != 2 {
		t.Fatalf("skip count: got %d, want 2", len(skips))
	}
	if !errors.Is(skips[0].Err, catalog.ErrOrdinalOutOfRange) {
		t.Fatalf("skip 0: got %v", skips[0].Err)
	}
	if !errors.Is(skips[1].Err, catalog.ErrFilenameNotFound) {
		t.Fatalf("skip 1: got %v", skips[1].Err)
	}
}

func TestApplyEmptyInstructionRoundTrip(t *testing.T) {
	c, _ := openDocx(t,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("alpha")},
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("beta")},
	)

	out := filepath.Join(t.TempDir(), "out.docx")
	if err := patch.Apply(c, nil, out); err != nil {
		t.Fatal(err)
	}

	assertSameEntries(t, c, out, nil)
}

func TestApplySelectivePatch(t *testing.T) {
	c, cat := openDocx(t,
		testsupport.MediaFile{Name: "img1.png", Data: []byte("alpha")},
		testsupport.MediaFile{Name: "img2.jpg", Data: []byte("beta")},
		testsupport.MediaFile{Name: "img3.png", Data: []byte("gamma")},
	)

	entry, err := cat.ResolveOrdinal(2)
	if err != nil {
		t.Fatal(err)
	}
	replacement := []byte("replacement payload")
	out := filepath.Join(t.TempDir(), "out.docx")
	if err := patch.Apply(c, map[string][]byte{entry.Path: replacement}, out); err != nil {
		t.Fatal(err)
	}

	assertSameEntries(t, c, out, map[string][]byte{"word/media/img2.jpg": replacement})
}

// assertSameEntries checks the output package has the same entry set and
// order as the source container, byte-identical except at the overridden
// paths.
func assertSameEntries(t *testing.T, src archive.Container, outPath string, overrides map[string][]byte) {
	t.Helper()

	out, err := archive.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	srcEntries := src.Entries()
	outEntries := out.Entries()
	if len(outEntries) != len(srcEntries) {
		t.Fatalf("entry count: got %d, want %d", len(outEntries), len(srcEntries))
	}
	for i := range srcEntries {
		if outEntries[i].Path != srcEntries[i].Path {
			t.Fatalf("entry %d: got %s, want %s", i, outEntries[i].Path, srcEntries[i].Path)
		}
		if srcEntries[i].Dir {
			continue
		}
		want, err := src.Read(srcEntries[i].Path)
		if err != nil {
			t.Fatal(err)
		}
		if override, ok := overrides[srcEntries[i].Path]; ok {
			want = override
		}
		got, err := out.Read(outEntries[i].Path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != string(want) {
			t.Fatalf("payload mismatch at %s", srcEntries[i].Path)
		}
	}
}
