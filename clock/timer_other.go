//go:build !windows

package clock

import (
	"errors"
	"time"
)

// fallbackTimer emulates the one-shot waitable timer with the runtime's
// timer heap, so the package builds and behaves the same on hosts that
// already have a native clock_nanosleep.
type fallbackTimer struct {
	timer *time.Timer
}

func newWaitTimer(bool) (waitTimer, error) {
	return &fallbackTimer{}, nil
}

// Set arms the timer. It honors the native tick convention: a negative due
// is a relative 100 ns tick count, a non-negative one is an absolute
// deadline carrying the 1601 epoch offset on the monotonic timeline.
func (t *fallbackTimer) Set(due int64) error {
	var d time.Duration
	if due < 0 {
		d = time.Duration(-due) * 100 * time.Nanosecond
	} else {
		target := time.Duration(due-deltaEpochTicks) * 100 * time.Nanosecond
		d = target - time.Since(programStart)
		if d < 0 {
			d = 0
		}
	}
	t.timer = time.NewTimer(d)
	return nil
}

func (t *fallbackTimer) Wait() error {
	if t.timer == nil {
		return errors.New("timer not armed")
	}
	<-t.timer.C
	return nil
}

func (t *fallbackTimer) Close() error {
	if t.timer != nil {
		t.timer.Stop()
	}
	return nil
}
