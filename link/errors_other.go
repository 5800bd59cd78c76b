//go:build !windows

package link

import "syscall"

// Hosts that already speak POSIX pass their errnos through untouched.
func mapErrno(errno syscall.Errno) error {
	return errno
}
