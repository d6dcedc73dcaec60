package fsys

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewOSPassesPathsThrough(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "sub", "file.txt")

	fs := NewOS()
	if err := fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// The same absolute path must be visible through the billy interface
	// and the os package.
	fi, err := fs.Stat(name)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if fi.Size() != 1 {
		t.Errorf("Stat() size = %d, want 1", fi.Size())
	}
}

func TestNewOSJoin(t *testing.T) {
	fs := NewOS()
	if got := fs.Join("/out", "bam", "a.bam"); got != "/out/bam/a.bam" {
		t.Errorf("Join() = %s, want /out/bam/a.bam", got)
	}
}
