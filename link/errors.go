package link

import (
	"errors"
	"io/fs"
	"syscall"
)

// mapError converts an error from the os layer into a POSIX error number.
// The portable sentinel checks run first; anything carrying a native
// errno goes through the per-OS table.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return syscall.ENOENT
	case errors.Is(err, fs.ErrPermission):
		return syscall.EACCES
	case errors.Is(err, fs.ErrExist):
		return syscall.EEXIST
	case errors.Is(err, fs.ErrInvalid):
		return syscall.EINVAL
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return mapErrno(errno)
	}
	return syscall.EIO
}
