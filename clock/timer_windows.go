//go:build windows

package clock

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// winTimer owns one unnamed kernel waitable timer handle.
type winTimer struct {
	handle windows.Handle
}

// newWaitTimer creates a fresh one-shot waitable timer with full access,
// high-resolution when the host build allows it.
func newWaitTimer(highRes bool) (waitTimer, error) {
	flags := uint32(windows.CREATE_WAITABLE_TIMER_MANUAL_RESET)
	if highRes {
		flags = windows.CREATE_WAITABLE_TIMER_HIGH_RESOLUTION
	}
	h, err := windows.CreateWaitableTimerEx(nil, nil, flags, windows.TIMER_ALL_ACCESS)
	if err != nil {
		return nil, err
	}
	return &winTimer{handle: h}, nil
}

func (t *winTimer) Set(due int64) error {
	// One shot: no period, no completion routine.
	return windows.SetWaitableTimer(t.handle, &due, 0, 0, 0, false)
}

func (t *winTimer) Wait() error {
	st, err := windows.WaitForSingleObject(t.handle, windows.INFINITE)
	if err != nil {
		return err
	}
	if st != windows.WAIT_OBJECT_0 {
		return fmt.Errorf("wait returned status %#x", st)
	}
	return nil
}

func (t *winTimer) Close() error {
	return windows.CloseHandle(t.handle)
}
