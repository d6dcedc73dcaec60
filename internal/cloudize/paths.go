package cloudize

import (
	"fmt"
	"os/user"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// DeepestSharedAncestor returns the longest directory every path lives
// under. It compares the parent directories segment by segment.
func DeepestSharedAncestor(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	shared := dirSegments(paths[0])
	for _, p := range paths[1:] {
		other := dirSegments(p)
		i := 0
		for i < len(shared) && i < len(other) && shared[i] == other[i] {
			i++
		}
		shared = shared[:i]
	}
	anc := strings.Join(shared, "/")
	if anc == "" && filepath.IsAbs(paths[0]) {
		anc = "/"
	}
	return anc
}

func dirSegments(p string) []string {
	return strings.Split(filepath.Dir(filepath.Clean(p)), "/")
}

// StripAncestor makes p relative to ancestor. Paths outside the ancestor
// stay absolute.
func StripAncestor(p, ancestor string) string {
	if ancestor == "" {
		return p
	}
	prefix := strings.TrimSuffix(ancestor, "/") + "/"
	if strings.HasPrefix(p, prefix) {
		return strings.TrimPrefix(p, prefix)
	}
	return p
}

// ExpandRelative resolves p against base unless it is already absolute.
func ExpandRelative(p, base string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// SecondaryPath applies a CWL secondaryFiles suffix to a base path. Each
// leading ^ strips one extension before the suffix is appended.
func SecondaryPath(base, suffix string) string {
	if strings.HasPrefix(suffix, "^") {
		return SecondaryPath(strings.TrimSuffix(base, filepath.Ext(base)), suffix[1:])
	}
	return base + suffix
}

// DefaultOutputPath places the rewritten inputs file next to the original
// with _cloud before the extension.
func DefaultOutputPath(inputsPath string) string {
	ext := filepath.Ext(inputsPath)
	return strings.TrimSuffix(inputsPath, ext) + "_cloud" + ext
}

// DefaultPrefix is the bucket key prefix for uploaded inputs, unique per
// user and day.
func DefaultPrefix() string {
	name := "unknown"
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	return path.Join("input_data", name, time.Now().Format("2006-01-02"))
}

// RemoteURI builds the gs:// locator for a bucket key.
func RemoteURI(bucket, key string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, key)
}
