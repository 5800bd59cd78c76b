// Package timespec provides the POSIX timespec value type and the
// carry/borrow arithmetic the clock emulation is built on.
package timespec

import "time"

// NsecPerSec is the number of nanoseconds in one second.
const NsecPerSec = 1_000_000_000

// ticksPerNsec is the width of one native timer tick (100 ns) in nanoseconds.
const ticksPerNsec = 100

// Timespec is a (seconds, nanoseconds) pair representing either a duration
// or a point in time, mirroring POSIX struct timespec.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Add returns a + b, carrying into the seconds field so that the result
// keeps Nsec within [0, 1e9) for normalized inputs.
func Add(a, b Timespec) Timespec {
	c := Timespec{Sec: a.Sec + b.Sec, Nsec: a.Nsec + b.Nsec}
	if c.Nsec >= NsecPerSec {
		c.Sec++
		c.Nsec -= NsecPerSec
	}
	return c
}

// Sub returns a - b, borrowing from the seconds field so that the result
// keeps Nsec within [0, 1e9) for normalized inputs. A negative difference
// shows up as a negative Sec with a still-normalized Nsec.
func Sub(a, b Timespec) Timespec {
	c := Timespec{Sec: a.Sec - b.Sec, Nsec: a.Nsec - b.Nsec}
	if c.Nsec < 0 {
		c.Sec--
		c.Nsec += NsecPerSec
	}
	return c
}

// FromDuration converts d to a normalized Timespec.
func FromDuration(d time.Duration) Timespec {
	ns := d.Nanoseconds()
	ts := Timespec{Sec: ns / NsecPerSec, Nsec: ns % NsecPerSec}
	if ts.Nsec < 0 {
		ts.Sec--
		ts.Nsec += NsecPerSec
	}
	return ts
}

// Duration converts t to a time.Duration.
func (t Timespec) Duration() time.Duration {
	return time.Duration(t.Sec)*time.Second + time.Duration(t.Nsec)
}

// Ticks converts t to the timer primitive's native 100 ns units,
// truncating toward zero.
func (t Timespec) Ticks() int64 {
	return (t.Sec*NsecPerSec + t.Nsec) / ticksPerNsec
}

// Valid reports whether t is a normalized, non-negative interval:
// Sec >= 0 and 0 <= Nsec < 1e9.
func (t Timespec) Valid() bool {
	return t.Sec >= 0 && t.Nsec >= 0 && t.Nsec < NsecPerSec
}

// IsZero reports whether t is the zero interval.
func (t Timespec) IsZero() bool {
	return t.Sec == 0 && t.Nsec == 0
}
