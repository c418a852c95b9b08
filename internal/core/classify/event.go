package classify

import (
	"time"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
	"github.com/crmkit/go-crm-timeline/internal/core/temporal"
)

// Event classifies a raw calendar event record against now. Events have no
// overdue state: an event is past once its end (or, lacking an end, its
// start) lies strictly before now, and upcoming otherwise.
// Date and relative labels follow the start so the row reads as when the
// event begins; the sort timestamp follows the end-else-start instant that
// also decides the status.
func Event(rec model.RawRecord, now time.Time) model.Activity {
	loc := now.Location()
	rawStart := rec.Str("start_datetime", "start")
	rawEnd := rec.Str("end_datetime", "end")
	start := temporal.Parse(rawStart, loc)
	end := temporal.Parse(rawEnd, loc)

	ts := start
	if end != nil {
		ts = end
	}
	shown := start
	if shown == nil {
		shown = end
	}

	status := model.StatusUpcoming
	if ts != nil && ts.Before(now) {
		status = model.StatusPast
	}

	return model.Activity{
		Kind:          model.KindEvent,
		Title:         title(rec, model.KindEvent),
		Description:   describe(model.KindEvent, status),
		Status:        status,
		DateLabel:     temporal.DateLabel(shown),
		TimeLabel:     temporal.EventTimeRange(start, end, rec.Bool("all_day", "allDay"), rawStart, rawEnd),
		RelativeLabel: temporal.RelativeLabel(shown, now),
		Meta:          meta(rec.Str("event_type", "eventType"), rec.Str("location")),
		Timestamp:     ts,
	}
}
