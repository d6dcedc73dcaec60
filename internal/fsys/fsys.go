// Package fsys provides the billy filesystem the transfer code runs on in
// production. Tests substitute memfs through the same interface.
package fsys

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// osFS acts like the native filesystem. Paths are passed through unmodified
// instead of being chrooted under a base directory, so absolute and
// cwd-relative paths both resolve the way the rest of the process sees them.
type osFS struct {
	osfs.ChrootOS
}

func (*osFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

func (*osFS) Root() string {
	return "/"
}

// NewOS returns a filesystem backed by the host OS.
func NewOS() billy.Filesystem {
	return &osFS{}
}
