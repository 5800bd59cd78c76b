// Package wazeroclock plugs the shim's clocks into wazero module
// configurations. Guests sleeping through WASI then hit the Windows
// waitable timer instead of the runtime's coarse sleep, and their clock
// reads share one time source with the host.
package wazeroclock

import (
	"time"

	"github.com/tetratelabs/wazero"

	"github.com/foxxorcat/go-posix/clock"
	"github.com/foxxorcat/go-posix/timespec"
)

// Walltime implements sys.Walltime on the shim's realtime clock.
func Walltime() (sec int64, nsec int32) {
	ts, _ := clock.Gettime(clock.Realtime)
	return ts.Sec, int32(ts.Nsec)
}

// Nanotime implements sys.Nanotime on the shim's monotonic clock.
func Nanotime() int64 {
	ts, _ := clock.Gettime(clock.Monotonic)
	return ts.Sec*timespec.NsecPerSec + ts.Nsec
}

// Nanosleep implements sys.Nanosleep via the monotonic relative path.
// The sys contract has no error channel, so a timer failure surfaces
// only as an early return.
func Nanosleep(ns int64) {
	if ns <= 0 {
		return
	}
	_ = clock.Nanosleep(clock.Monotonic, 0, timespec.FromDuration(time.Duration(ns)), nil)
}

// WithClock applies the shim's walltime, nanotime, and nanosleep to cfg
// at nanosecond resolution.
func WithClock(cfg wazero.ModuleConfig) wazero.ModuleConfig {
	return cfg.
		WithWalltime(Walltime, 1).
		WithNanotime(Nanotime, 1).
		WithNanosleep(Nanosleep)
}
