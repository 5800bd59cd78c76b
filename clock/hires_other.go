//go:build !windows

package clock

// The fallback timer has a single resolution, so the probe always reports
// the standard capability.
func hasHighResTimer() bool {
	return false
}
