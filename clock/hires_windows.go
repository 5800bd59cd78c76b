//go:build windows

package clock

import (
	"strconv"

	"golang.org/x/sys/windows/registry"
)

// Windows 10 2004, the first release shipping
// CREATE_WAITABLE_TIMER_HIGH_RESOLUTION.
const minHighResBuild = 19041

// hasHighResTimer reports whether the host build supports high-resolution
// waitable timers. Any failure reading the build number downgrades to the
// standard timer instead of failing the sleep.
func hasHighResTimer() bool {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer key.Close()

	bn, _, err := key.GetStringValue("CurrentBuildNumber")
	if err != nil {
		return false
	}
	build, err := strconv.Atoi(bn)
	if err != nil {
		return false
	}
	return build >= minHighResBuild
}
