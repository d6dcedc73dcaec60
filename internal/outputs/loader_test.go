package outputs

import (
	"context"
	"reflect"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"wfcloud/internal/gcs"
)

// objectStore resolves gs:// locators against an in-memory object map.
type objectStore struct {
	fs      billy.Filesystem
	objects map[string][]byte
}

func (s *objectStore) Copy(_ context.Context, src, dest string) error {
	return util.WriteFile(s.fs, dest, s.objects[src], 0o644)
}

func newTestLoader(objects map[string][]byte) (*Loader, billy.Filesystem) {
	fs := memfs.New()
	store := &objectStore{fs: fs, objects: objects}
	fetcher := &gcs.Fetcher{FS: fs, Copier: store}
	return &Loader{FS: fs, Fetcher: fetcher, TempDir: "/tmp"}, fs
}

func TestLoaderReadLocal(t *testing.T) {
	loader, fs := newTestLoader(nil)
	if err := util.WriteFile(fs, "/data/outputs.json", []byte(`{"outputs": {"wf.x": null}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var doc Document
	if err := loader.Read(context.Background(), "/data/outputs.json", &doc); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if doc.Outputs["wf.x"].Kind != KindNull {
		t.Errorf("decoded document = %+v, want null output", doc)
	}
}

func TestLoaderReadRemote(t *testing.T) {
	content := []byte(`{"outputs": {"wf.task.bam": "gs://bucket/a.bam"}}`)
	loader, fs := newTestLoader(map[string][]byte{
		"gs://bucket/manifest.json": content,
	})

	var remote Document
	if err := loader.Read(context.Background(), "gs://bucket/manifest.json", &remote); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	// The document is staged under TempDir by its basename before parsing.
	if _, err := fs.Stat("/tmp/manifest.json"); err != nil {
		t.Errorf("staged copy missing: %v", err)
	}

	// Parsing the staged copy and an equivalent local file must agree.
	if err := util.WriteFile(fs, "/data/manifest.json", content, 0o644); err != nil {
		t.Fatal(err)
	}
	var local Document
	if err := loader.Read(context.Background(), "/data/manifest.json", &local); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(remote, local) {
		t.Errorf("remote parse %+v != local parse %+v", remote, local)
	}
}

func TestLoaderReadMissingFile(t *testing.T) {
	loader, _ := newTestLoader(nil)

	var doc Document
	if err := loader.Read(context.Background(), "/data/nope.json", &doc); err == nil {
		t.Error("Read() error = nil, want missing-file error")
	}
}

func TestLoaderReadMalformedJSON(t *testing.T) {
	loader, fs := newTestLoader(nil)
	if err := util.WriteFile(fs, "/data/bad.json", []byte(`{"outputs": `), 0o644); err != nil {
		t.Fatal(err)
	}

	var doc Document
	if err := loader.Read(context.Background(), "/data/bad.json", &doc); err == nil {
		t.Error("Read() error = nil, want parse error")
	}
}
