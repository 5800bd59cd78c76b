package timespec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Timespec
		expected Timespec
	}{
		{
			name:     "no carry",
			a:        Timespec{Sec: 1, Nsec: 200_000_000},
			b:        Timespec{Sec: 2, Nsec: 300_000_000},
			expected: Timespec{Sec: 3, Nsec: 500_000_000},
		},
		{
			name:     "carry at boundary",
			a:        Timespec{Sec: 0, Nsec: 600_000_000},
			b:        Timespec{Sec: 0, Nsec: 400_000_000},
			expected: Timespec{Sec: 1, Nsec: 0},
		},
		{
			name:     "carry past boundary",
			a:        Timespec{Sec: 1, Nsec: 999_999_999},
			b:        Timespec{Sec: 0, Nsec: 2},
			expected: Timespec{Sec: 2, Nsec: 1},
		},
		{
			name:     "negative seconds",
			a:        Timespec{Sec: -2, Nsec: 700_000_000},
			b:        Timespec{Sec: 0, Nsec: 600_000_000},
			expected: Timespec{Sec: -1, Nsec: 300_000_000},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Add(tc.a, tc.b))
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Timespec
		expected Timespec
	}{
		{
			name:     "no borrow",
			a:        Timespec{Sec: 3, Nsec: 500_000_000},
			b:        Timespec{Sec: 1, Nsec: 200_000_000},
			expected: Timespec{Sec: 2, Nsec: 300_000_000},
		},
		{
			name:     "borrow",
			a:        Timespec{Sec: 2, Nsec: 100_000_000},
			b:        Timespec{Sec: 0, Nsec: 600_000_000},
			expected: Timespec{Sec: 1, Nsec: 500_000_000},
		},
		{
			name:     "negative result stays normalized",
			a:        Timespec{Sec: 0, Nsec: 100_000_000},
			b:        Timespec{Sec: 1, Nsec: 600_000_000},
			expected: Timespec{Sec: -2, Nsec: 500_000_000},
		},
		{
			name:     "equal inputs",
			a:        Timespec{Sec: 5, Nsec: 5},
			b:        Timespec{Sec: 5, Nsec: 5},
			expected: Timespec{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Sub(tc.a, tc.b))
		})
	}
}

// Every Add/Sub output must keep the nanosecond field inside [0, 1e9),
// whatever the sign of the inputs' seconds.
func TestNormalizationInvariant(t *testing.T) {
	secs := []int64{-3, -1, 0, 1, 7}
	nsecs := []int64{0, 1, 499_999_999, 999_999_999}

	for _, as := range secs {
		for _, an := range nsecs {
			for _, bs := range secs {
				for _, bn := range nsecs {
					a := Timespec{Sec: as, Nsec: an}
					b := Timespec{Sec: bs, Nsec: bn}

					sum := Add(a, b)
					require.True(t, sum.Nsec >= 0 && sum.Nsec < NsecPerSec,
						"Add(%v, %v) = %v", a, b, sum)

					diff := Sub(a, b)
					require.True(t, diff.Nsec >= 0 && diff.Nsec < NsecPerSec,
						"Sub(%v, %v) = %v", a, b, diff)

					// Round-trip law: (a - b) + b == a.
					require.Equal(t, a, Add(diff, b))
				}
			}
		}
	}
}

func TestFromDuration(t *testing.T) {
	require.Equal(t, Timespec{Sec: 1, Nsec: 500_000_000}, FromDuration(1500*time.Millisecond))
	require.Equal(t, Timespec{}, FromDuration(0))
	// Negative durations normalize instead of producing a negative Nsec.
	require.Equal(t, Timespec{Sec: -1, Nsec: 750_000_000}, FromDuration(-250*time.Millisecond))
}

func TestDurationRoundTrip(t *testing.T) {
	for _, d := range []time.Duration{0, time.Nanosecond, time.Millisecond, 90 * time.Second, -3 * time.Second} {
		require.Equal(t, d, FromDuration(d).Duration())
	}
}

func TestTicks(t *testing.T) {
	require.Equal(t, int64(0), Timespec{}.Ticks())
	// Sub-tick remainders truncate.
	require.Equal(t, int64(1), Timespec{Nsec: 150}.Ticks())
	require.Equal(t, int64(10_000_000), Timespec{Sec: 1}.Ticks())
	require.Equal(t, int64(15_000_000), Timespec{Sec: 1, Nsec: 500_000_000}.Ticks())
}

func TestValid(t *testing.T) {
	require.True(t, Timespec{}.Valid())
	require.True(t, Timespec{Sec: 0, Nsec: 999_999_999}.Valid())
	require.False(t, Timespec{Sec: -1}.Valid())
	require.False(t, Timespec{Nsec: -1}.Valid())
	require.False(t, Timespec{Nsec: NsecPerSec}.Valid())
}
