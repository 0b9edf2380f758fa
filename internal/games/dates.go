package games

import "time"

// The feed emits display dates with or without seconds.
var displayDateLayouts = []string{
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
}

// ParseDisplayDate parses a feed display date under the accepted layouts.
// The parsed instant carries no zone information from the feed and is read
// as UTC; callers that need local time convert afterwards.
func ParseDisplayDate(s string) (time.Time, bool) {
	for _, layout := range displayDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
