package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"wfcloud/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{LogLevel: "ERROR", TempDir: t.TempDir()}
}

func TestPullOutputsRequiresOutputsFile(t *testing.T) {
	rootCmd.SetArgs([]string{"pull-outputs"})
	if err := Execute(testConfig(t)); err == nil {
		t.Error("Execute() error = nil, want missing required flag error")
	}
}

func TestPullOutputsDryRun(t *testing.T) {
	dir := t.TempDir()
	outputsFile := filepath.Join(dir, "outputs.json")
	doc := `{"outputs": {
		"wf.task.bam": {"sample1": "gs://bucket/a.bam"},
		"wf.task.optional_log": null
	}}`
	if err := os.WriteFile(outputsFile, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	outputsDir := filepath.Join(dir, "out")

	rootCmd.SetArgs([]string{
		"pull-outputs",
		"--outputs-file", outputsFile,
		"--outputs-dir", outputsDir,
		"--dryrun",
	})
	if err := Execute(testConfig(t)); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Dry run creates the directory tree but no files.
	leafDir := filepath.Join(outputsDir, "bam", "sample1")
	fi, err := os.Stat(leafDir)
	if err != nil || !fi.IsDir() {
		t.Errorf("expected directory %s: fi=%v err=%v", leafDir, fi, err)
	}
	if _, err := os.Stat(filepath.Join(leafDir, "a.bam")); !os.IsNotExist(err) {
		t.Errorf("dry run created a file, stat err = %v", err)
	}
}

func TestPullOutputsMissingDocument(t *testing.T) {
	rootCmd.SetArgs([]string{
		"pull-outputs",
		"--outputs-file", filepath.Join(t.TempDir(), "nope.json"),
		"--dryrun",
	})
	if err := Execute(testConfig(t)); err == nil {
		t.Error("Execute() error = nil, want missing-file error")
	}
}
