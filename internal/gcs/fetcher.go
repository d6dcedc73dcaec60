package gcs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// Status describes what Fetch did for a destination path.
type Status int

const (
	// StatusCopied means the object was copied to the destination.
	StatusCopied Status = iota
	// StatusExists means a file was already present and the copy was skipped.
	StatusExists
	// StatusDryRun means the copy was suppressed by dry-run mode.
	StatusDryRun
)

// Fetcher materializes remote objects at local paths. Presence of a regular
// file at the destination is the only at-most-once guard; contents are not
// verified.
type Fetcher struct {
	FS     billy.Filesystem
	Copier Copier
	DryRun bool
	Log    *slog.Logger
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Log != nil {
		return f.Log
	}
	return slog.Default()
}

// Fetch copies the object at src to dest, creating parent directories as
// needed. Parent directories are created even in dry-run mode.
func (f *Fetcher) Fetch(ctx context.Context, src, dest string) (Status, error) {
	if err := f.FS.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return StatusCopied, fmt.Errorf("create parent directory for %s: %w", dest, err)
	}

	if fi, err := f.FS.Stat(dest); err == nil && fi.Mode().IsRegular() {
		f.logger().Info("file already exists, skipping download", "src", src, "dest", dest)
		return StatusExists, nil
	}

	f.logger().Info("downloading", "src", src, "dest", dest)
	if f.DryRun {
		return StatusDryRun, nil
	}

	if err := f.Copier.Copy(ctx, src, dest); err != nil {
		return StatusCopied, err
	}
	return StatusCopied, nil
}
