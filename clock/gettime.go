package clock

import (
	"syscall"
	"time"

	"github.com/foxxorcat/go-posix/timespec"
)

// programStart anchors the monotonic clock; readings are elapsed time
// since package load. time.Since uses the runtime's monotonic reading, so
// wall-clock adjustments never show through.
var programStart = time.Now()

func gettime(id ID) (timespec.Timespec, error) {
	switch id {
	case Realtime:
		now := time.Now()
		return timespec.Timespec{Sec: now.Unix(), Nsec: int64(now.Nanosecond())}, nil
	case Monotonic:
		return timespec.FromDuration(time.Since(programStart)), nil
	default:
		return timespec.Timespec{}, syscall.EINVAL
	}
}
