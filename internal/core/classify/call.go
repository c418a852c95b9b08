package classify

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
	"github.com/crmkit/go-crm-timeline/internal/core/temporal"
)

// Call classifies a raw call log record against now. A call with a timestamp
// at or after now is upcoming; everything else, including undated logs, is
// past. A missed call that already happened keeps the past status but its
// description reads as overdue — the bucket and the wording intentionally
// disagree, matching long-standing product behavior.
func Call(rec model.RawRecord, now time.Time) model.Activity {
	raw := rec.Str("call_date_time", "callDateTime", "date")
	ts := temporal.Parse(raw, now.Location())

	status := model.StatusPast
	if ts != nil && !ts.Before(now) {
		status = model.StatusUpcoming
	}

	callType := rec.Str("call_type", "callType")
	descStatus := status
	if status == model.StatusPast && strings.EqualFold(callType, "missed") {
		descStatus = model.StatusOverdue
	}

	durationTag := ""
	if mins, ok := rec.Number("call_duration_minutes", "callDurationMinutes"); ok {
		durationTag = fmt.Sprintf("%s min", strconv.FormatFloat(mins, 'f', -1, 64))
	}

	return model.Activity{
		Kind:          model.KindCall,
		Title:         title(rec, model.KindCall),
		Description:   describe(model.KindCall, descStatus),
		Status:        status,
		DateLabel:     temporal.DateLabel(ts),
		TimeLabel:     temporal.TimeLabel(ts, raw),
		RelativeLabel: temporal.RelativeLabel(ts, now),
		Meta:          meta(callType, durationTag),
		Timestamp:     ts,
	}
}
