package dispatchio

import (
	"fmt"
	"time"
)

// FormatElapsed renders a duration at a human scale: sub-second durations in
// milliseconds, then seconds, minutes, and hours with one decimal.
func FormatElapsed(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	default:
		return fmt.Sprintf("%.1fh", d.Hours())
	}
}

// Elapsed formats the time passed since start.
func Elapsed(start time.Time) string {
	return FormatElapsed(time.Since(start))
}
