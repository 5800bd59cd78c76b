//go:build windows

package link

import (
	"strings"

	"golang.org/x/sys/windows"
)

// realpath resolves path through the kernel: open a handle, ask for the
// final pathname, and strip the \\?\ prefix the API prepends.
// FILE_FLAG_BACKUP_SEMANTICS is required to open directories.
func realpath(path string) (string, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", err
	}

	h, err := windows.CreateFile(p, 0, 0, nil, windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return "", err
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_PATH)
	for {
		n, err := windows.GetFinalPathNameByHandle(h, &buf[0], uint32(len(buf)), windows.FILE_NAME_OPENED)
		if err != nil {
			return "", err
		}
		if int(n) < len(buf) {
			return strings.TrimPrefix(windows.UTF16ToString(buf[:n]), `\\?\`), nil
		}
		// Unicode paths can exceed MAX_PATH; retry with the size the
		// kernel asked for.
		buf = make([]uint16, n+1)
	}
}
