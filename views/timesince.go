package views

import (
	"fmt"
	"time"
)

// TimeSince renders the elapsed time between now and t on a fixed ladder of
// thresholds, always floored to an integer. The unit never changes form for
// singular values ("1 days ago"), matching the rendered recency labels.
func TimeSince(now, t time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	switch {
	case seconds >= 365*24*3600:
		return fmt.Sprintf("%d years ago", seconds/(365*24*3600))
	case seconds >= 30*24*3600:
		return fmt.Sprintf("%d months ago", seconds/(30*24*3600))
	case seconds >= 24*3600:
		return fmt.Sprintf("%d days ago", seconds/(24*3600))
	case seconds >= 3600:
		return fmt.Sprintf("%d hours ago", seconds/3600)
	case seconds >= 60:
		return fmt.Sprintf("%d minutes ago", seconds/60)
	default:
		return fmt.Sprintf("%d seconds ago", seconds)
	}
}
