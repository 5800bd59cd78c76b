//go:build windows

package link

import (
	"syscall"

	"golang.org/x/sys/windows"
)

func mapErrno(errno syscall.Errno) error {
	switch errno {
	case windows.ERROR_FILE_NOT_FOUND:
		return syscall.ENOENT
	case windows.ERROR_ACCESS_DENIED, windows.ERROR_PRIVILEGE_NOT_HELD:
		return syscall.EACCES
	case windows.ERROR_ALREADY_EXISTS, windows.ERROR_FILE_EXISTS:
		return syscall.EEXIST
	case windows.ERROR_PATH_NOT_FOUND:
		return syscall.ENAMETOOLONG
	case windows.ERROR_NOT_ENOUGH_MEMORY:
		return syscall.ENOMEM
	case windows.ERROR_NOT_SAME_DEVICE:
		return syscall.EPERM
	case windows.ERROR_NOT_A_REPARSE_POINT:
		// Readlink on something that is not a link.
		return syscall.EINVAL
	default:
		return syscall.EIO
	}
}
