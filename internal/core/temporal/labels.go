package temporal

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// clockPattern matches a literal HH:MM following a T or space separator,
// i.e. the time-of-day exactly as the upstream system wrote it.
var clockPattern = regexp.MustCompile(`[T ](\d{2}):(\d{2})`)

// DateLabel renders a short month/day label like "May 1".
func DateLabel(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("Jan 2")
}

// TimeLabel renders a 12-hour clock label like "9:00 AM". The literal HH:MM
// in the raw string is preferred over the parsed instant so the displayed
// time survives whatever offset the host applied while parsing; the instant
// is only a fallback when the raw string carries no recognizable clock.
func TimeLabel(t *time.Time, raw string) string {
	if m := clockPattern.FindStringSubmatch(raw); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 24 && minute < 60 {
			suffix := "AM"
			switch {
			case hour == 0:
				hour = 12
			case hour == 12:
				suffix = "PM"
			case hour > 12:
				hour -= 12
				suffix = "PM"
			}
			return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
		}
	}
	if t == nil {
		return ""
	}
	return t.Format("3:04 PM")
}

// RelativeLabel phrases the calendar-day distance between t and now:
// "Today", "Tomorrow", "Yesterday", "In N days" / "N days ago" within a
// week, and empty beyond that. The comparison is by calendar day in now's
// location, not by elapsed hours.
func RelativeLabel(t *time.Time, now time.Time) string {
	if t == nil {
		return ""
	}
	loc := now.Location()
	ty, tm, td := t.In(loc).Date()
	ny, nm, nd := now.Date()
	day := time.Date(ty, tm, td, 0, 0, 0, 0, loc)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, loc)
	// Rounding absorbs the 23h/25h midnight gaps around DST transitions.
	days := int(math.Round(day.Sub(today).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days >= 2 && days <= 7:
		return fmt.Sprintf("In %d days", days)
	case days <= -2 && days >= -7:
		return fmt.Sprintf("%d days ago", -days)
	}
	return ""
}

// EventTimeRange renders the time portion of an event row. All-day events
// short-circuit to a fixed label; otherwise the two sides are labelled
// independently and joined only when they differ.
func EventTimeRange(start, end *time.Time, allDay bool, rawStart, rawEnd string) string {
	if allDay {
		return "All-day"
	}
	from := TimeLabel(start, rawStart)
	to := TimeLabel(end, rawEnd)
	switch {
	case from != "" && to != "" && from != to:
		return from + " - " + to
	case from != "":
		return from
	case to != "":
		return to
	}
	return ""
}
