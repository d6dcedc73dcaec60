package outputs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"wfcloud/internal/gcs"
)

// Loader reads and parses JSON documents from local paths or gs:// locators.
// A remote document is first fetched into TempDir under its basename.
type Loader struct {
	FS      billy.Filesystem
	Fetcher *gcs.Fetcher
	TempDir string
	Log     *slog.Logger
}

func (l *Loader) logger() *slog.Logger {
	if l.Log != nil {
		return l.Log
	}
	return slog.Default()
}

// Read parses the JSON document at name into v. Missing files and malformed
// JSON are returned as errors.
func (l *Loader) Read(ctx context.Context, name string, v any) error {
	l.logger().Debug("reading JSON", "path", name)

	local := name
	if gcs.IsRemote(name) {
		local = l.FS.Join(l.TempDir, gcs.Basename(name))
		if _, err := l.Fetcher.Fetch(ctx, name, local); err != nil {
			return fmt.Errorf("fetch %s: %w", name, err)
		}
	}

	data, err := util.ReadFile(l.FS, local)
	if err != nil {
		return fmt.Errorf("read %s: %w", local, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", local, err)
	}
	return nil
}
