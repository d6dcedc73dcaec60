// Package gcs moves single objects between gs:// locators and local paths.
//
// The actual byte transfer is delegated to the gsutil CLI; this package
// wraps it with destination bookkeeping (parent directories, skip-if-present,
// dry run) and locator helpers.
package gcs

import (
	"path"
	"strings"
)

// Scheme is the URI prefix of a GCS object locator.
const Scheme = "gs://"

// IsRemote reports whether s looks like a GCS object locator.
func IsRemote(s string) bool {
	return strings.HasPrefix(s, Scheme)
}

// Basename returns the final path segment of a locator or local path.
func Basename(s string) string {
	return path.Base(strings.TrimSuffix(s, "/"))
}
