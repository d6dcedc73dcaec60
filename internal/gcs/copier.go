package gcs

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Copier copies a single object between a gs:// locator and a local path,
// in either direction. An existing destination is never overwritten.
type Copier interface {
	Copy(ctx context.Context, src, dest string) error
}

// GSUtil shells out to the gsutil CLI for object copies.
type GSUtil struct {
	// Bin overrides the gsutil binary name. Empty means "gsutil" from PATH.
	Bin string
}

func (g GSUtil) bin() string {
	if g.Bin != "" {
		return g.Bin
	}
	return "gsutil"
}

// Copy runs `gsutil -q cp -n src dest` and reports a non-zero exit as an
// error carrying the command output.
func (g GSUtil) Copy(ctx context.Context, src, dest string) error {
	cmd := exec.CommandContext(ctx, g.bin(), "-q", "cp", "-n", src, dest)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gsutil cp %s %s: %w: %s", src, dest, err, strings.TrimSpace(string(out)))
	}
	return nil
}
