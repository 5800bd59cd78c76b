// Package link emulates the POSIX filesystem-link calls (symlink,
// readlink, lstat, realpath, link) on hosts without native symlink
// semantics, mapping native error codes back to POSIX error numbers.
//
// The operations themselves go through the os package, which already
// speaks reparse points on Windows; this package adds the POSIX argument
// conventions and the errno mapping on top.
package link

import (
	"io/fs"
	"os"
	"syscall"
)

// Symlink creates newpath as a symbolic link to oldpath.
//
// oldpath must exist: the target is stat'ed up front to pick the
// file-versus-directory link kind, so dangling links cannot be created.
func Symlink(oldpath, newpath string) error {
	if _, err := os.Stat(oldpath); err != nil {
		return mapError(err)
	}
	if err := os.Symlink(oldpath, newpath); err != nil {
		return mapError(err)
	}
	return nil
}

// Readlink returns the target of the symbolic link at path. A path that
// exists but is not a link fails with EINVAL.
func Readlink(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", mapError(err)
	}
	return target, nil
}

// Lstat stats path without following a trailing symbolic link.
func Lstat(path string) (os.FileInfo, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, mapError(err)
	}
	return fi, nil
}

// IsSymlink reports whether path names a symbolic link.
func IsSymlink(path string) (bool, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return false, mapError(err)
	}
	return fi.Mode()&fs.ModeSymlink != 0, nil
}

// Realpath resolves path to an absolute pathname with all symbolic links
// expanded.
func Realpath(path string) (string, error) {
	resolved, err := realpath(path)
	if err != nil {
		return "", mapError(err)
	}
	return resolved, nil
}

// Link creates newpath as a hard link to oldpath. Directories fail with
// EPERM before the filesystem is touched; NTFS has no directory hard
// links, and POSIX reports them the same way.
func Link(oldpath, newpath string) error {
	fi, err := os.Stat(oldpath)
	if err != nil {
		return mapError(err)
	}
	if fi.IsDir() {
		return syscall.EPERM
	}
	if err := os.Link(oldpath, newpath); err != nil {
		return mapError(err)
	}
	return nil
}
