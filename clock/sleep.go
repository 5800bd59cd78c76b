package clock

import (
	"syscall"
	"time"

	"github.com/foxxorcat/go-posix/timespec"
)

// sleepFor is the relative-sleep primitive backing the Realtime paths.
// It validates its argument like POSIX nanosleep: negative seconds or a
// nanosecond field outside [0, 1e9) fail with EINVAL before any sleeping
// happens. There is no early-wake path, so remain is always zeroed on
// success.
func sleepFor(d timespec.Timespec, remain *timespec.Timespec) error {
	if !d.Valid() {
		return syscall.EINVAL
	}
	time.Sleep(d.Duration())
	if remain != nil {
		*remain = timespec.Timespec{}
	}
	return nil
}
