package temporal

import (
	"strings"
	"time"
)

// Layouts tried during generic parsing, most specific first. Layouts without
// an explicit offset are interpreted in the caller's location.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// Parse converts a raw date representation into a canonical instant.
// A string carrying a space-separated "date time" pair is first retried with
// the space replaced by a T separator, which covers the common
// "2024-05-01 14:30:00" upstream format. Anything unparseable yields nil;
// Parse never returns an error.
func Parse(raw string, loc *time.Location) *time.Time {
	if loc == nil {
		loc = time.Local
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if i := strings.IndexByte(raw, ' '); i > 0 {
		if t := parseLayouts(raw[:i]+"T"+raw[i+1:], loc); t != nil {
			return t
		}
	}
	return parseLayouts(raw, loc)
}

func parseLayouts(s string, loc *time.Location) *time.Time {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	return nil
}
