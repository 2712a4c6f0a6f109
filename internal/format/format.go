// Package format turns timestamps and counts into display strings.
package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

type interval struct {
	unit    string
	seconds int64
}

// Largest bucket first. Months are 30 days and years 365 days.
var intervals = []interval{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
}

// RelativeTime renders t relative to now as "N unit(s) ago", "just now" under
// a minute, or "Unknown" for the zero time. Future timestamps read as "just now".
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	diff := int64(now.Sub(t) / time.Second)
	for _, iv := range intervals {
		if n := diff / iv.seconds; n >= 1 {
			return fmt.Sprintf("%s ago", Plural(int(n), iv.unit))
		}
	}
	return "just now"
}

// Updated is the short form used on grid cards
func Updated(t, now time.Time) string {
	if t.IsZero() {
		return "Updated Unknown"
	}
	return "Updated " + humanize.RelTime(t, now, "ago", "from now")
}

// Plural returns "1 unit" or "N units"
func Plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
