// Package clock implements POSIX clock_nanosleep semantics on top of the
// host's native timing primitives. On Windows the monotonic paths use a
// kernel waitable timer, high-resolution when the host build supports it;
// failures of the native primitives are mapped back to POSIX error numbers.
package clock

import (
	"syscall"

	"go.uber.org/zap"

	"github.com/foxxorcat/go-posix/timespec"
)

// ID selects which clock a call operates on.
type ID uint32

const (
	// Realtime is the wall clock, subject to adjustment.
	Realtime ID = iota
	// Monotonic never moves backward and is unaffected by wall-clock
	// adjustments.
	Monotonic
)

// Flags alter how the request interval is interpreted.
type Flags uint32

// TimerAbstime marks the request as an absolute deadline on the selected
// clock's timeline instead of a duration from now.
const TimerAbstime Flags = 0x1

// deltaEpochTicks is the number of 100 ns intervals between the Windows
// epoch (1601-01-01) and the Unix epoch (1970-01-01).
const deltaEpochTicks = 116_444_736_000_000_000

// waitTimer is a one-shot kernel waitable timer. Due times are signed
// 100 ns tick counts: negative values are relative to now, non-negative
// values are absolute deadlines on the native clock's own epoch.
type waitTimer interface {
	Set(due int64) error
	Wait() error
	Close() error
}

// impl bundles the dispatcher's collaborators so tests can substitute
// doubles for the clock and timer primitives.
type impl struct {
	now      func(ID) (timespec.Timespec, error)
	sleep    func(timespec.Timespec, *timespec.Timespec) error
	newTimer func(highRes bool) (waitTimer, error)
	hasHiRes func() bool
}

var defaultImpl = &impl{
	now:      gettime,
	sleep:    sleepFor,
	newTimer: newWaitTimer,
	hasHiRes: hasHighResTimer,
}

// Nanosleep suspends the calling goroutine per POSIX clock_nanosleep.
//
// With TimerAbstime unset, request is a duration from now; with it set,
// request is a deadline on id's timeline. remain, when non-nil, receives
// the unslept portion of the request, clamped to zero.
//
// On the Realtime absolute path the deadline is converted to a relative
// duration against one wall-clock read; an adjustment landing between that
// read and the delegated sleep is not compensated for. A Realtime deadline
// already in the past therefore yields a negative duration, which the
// relative-sleep primitive rejects with EINVAL.
//
// Errors are POSIX codes: EINVAL for an unknown clock or a Monotonic
// request outside [0s, +inf) with nanoseconds in [0, 1e9); ENOTSUP when
// the native timer primitive fails.
func Nanosleep(id ID, flags Flags, request timespec.Timespec, remain *timespec.Timespec) error {
	return defaultImpl.nanosleep(id, flags, request, remain)
}

// Gettime returns the current reading of the selected clock.
func Gettime(id ID) (timespec.Timespec, error) {
	return gettime(id)
}

func (c *impl) nanosleep(id ID, flags Flags, request timespec.Timespec, remain *timespec.Timespec) error {
	switch id {
	case Realtime:
		if flags&TimerAbstime == 0 {
			return c.sleep(request, remain)
		}
		now, err := c.now(Realtime)
		if err != nil {
			return err
		}
		return c.sleep(timespec.Sub(request, now), remain)
	case Monotonic:
		return c.monotonicWait(flags, request, remain)
	default:
		return syscall.EINVAL
	}
}

// monotonicWait drives the waitable-timer object. The handle is created
// fresh per call, exclusively owned, and released on every exit path.
func (c *impl) monotonicWait(flags Flags, request timespec.Timespec, remain *timespec.Timespec) error {
	if !request.Valid() {
		return syscall.EINVAL
	}

	due := request.Ticks()
	if flags&TimerAbstime == 0 {
		due = -due
	} else {
		due += deltaEpochTicks
	}

	t, err := c.newTimer(c.hasHiRes())
	if err != nil {
		logger().Debug("waitable timer creation failed", zap.Error(err))
		return syscall.ENOTSUP
	}
	defer t.Close()

	var start timespec.Timespec
	if remain != nil {
		start, _ = c.now(Monotonic)
	}

	var reterr error
	if err := t.Set(due); err != nil {
		logger().Debug("arming waitable timer failed", zap.Int64("due", due), zap.Error(err))
		reterr = syscall.ENOTSUP
	} else if err := t.Wait(); err != nil {
		logger().Debug("waitable timer wait failed", zap.Error(err))
		reterr = syscall.ENOTSUP
	}

	if remain != nil {
		end, _ := c.now(Monotonic)
		elapsed := timespec.Sub(end, start)
		*remain = timespec.Sub(request, elapsed)
		if remain.Sec < 0 {
			*remain = timespec.Timespec{}
		}
	}

	return reterr
}
