package discovery

import (
	"os"
	"path/filepath"
	"testing"

	errs "github.com/lumascan/lumascan/internal/errors"
	"github.com/lumascan/lumascan/internal/util"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

func TestFindVideoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.mp4", "A.MKV", "c.txt", ".hidden.mp4", "z.mov")

	// A recognized-extension file inside a subfolder must not be found.
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, sub, "inner.mp4")

	files, err := FindVideoFiles(dir, util.ExtensionSet(util.DefaultVideoExtensions))
	if err != nil {
		t.Fatalf("FindVideoFiles() error = %v", err)
	}

	got := baseNames(files)
	want := []string{"A.MKV", "b.mp4", "z.mov"}
	if len(got) != len(want) {
		t.Fatalf("FindVideoFiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindVideoFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFindVideoFilesCustomFilter(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.mp4", "b.webm")

	files, err := FindVideoFiles(dir, util.ExtensionSet([]string{".webm"}))
	if err != nil {
		t.Fatalf("FindVideoFiles() error = %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "b.webm" {
		t.Errorf("FindVideoFiles() = %v, want only b.webm", baseNames(files))
	}
}

func TestFindVideoFilesEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "notes.txt")

	_, err := FindVideoFiles(dir, util.ExtensionSet(util.DefaultVideoExtensions))
	if err == nil {
		t.Fatal("FindVideoFiles() should fail for a folder with no videos")
	}
	if !errs.IsNoFilesFound(err) {
		t.Errorf("error = %v, want no-files-found kind", err)
	}
}

func TestFindVideoFilesMissingDir(t *testing.T) {
	_, err := FindVideoFiles(filepath.Join(t.TempDir(), "nope"), util.ExtensionSet(util.DefaultVideoExtensions))
	if err == nil {
		t.Fatal("FindVideoFiles() should fail for a missing folder")
	}
	if !errs.IsKind(err, errs.KindInput) {
		t.Errorf("error = %v, want input kind", err)
	}
}

func TestFindVideoFilesNotADir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.mp4")

	_, err := FindVideoFiles(filepath.Join(dir, "a.mp4"), util.ExtensionSet(util.DefaultVideoExtensions))
	if err == nil {
		t.Fatal("FindVideoFiles() should fail when the path is a file")
	}
	if !errs.IsKind(err, errs.KindInput) {
		t.Errorf("error = %v, want input kind", err)
	}
}

func TestFindVideoFilesDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "zz.mp4", "aa.mp4", "MM.mp4")

	first, err := FindVideoFiles(dir, util.ExtensionSet(util.DefaultVideoExtensions))
	if err != nil {
		t.Fatal(err)
	}
	second, err := FindVideoFiles(dir, util.ExtensionSet(util.DefaultVideoExtensions))
	if err != nil {
		t.Fatal(err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("enumeration order not stable: %v vs %v", baseNames(first), baseNames(second))
		}
	}

	want := []string{"aa.mp4", "MM.mp4", "zz.mp4"}
	got := baseNames(first)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
