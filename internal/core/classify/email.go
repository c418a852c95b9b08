package classify

import (
	"time"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
	"github.com/crmkit/go-crm-timeline/internal/core/temporal"
)

// Email classifies a raw email record against now. Scheduled sends with a
// timestamp at or after now are upcoming; sent mail and undated records are
// past.
func Email(rec model.RawRecord, now time.Time) model.Activity {
	raw := rec.Str("sent_at", "created_at", "date")
	ts := temporal.Parse(raw, now.Location())

	status := model.StatusPast
	if ts != nil && !ts.Before(now) {
		status = model.StatusUpcoming
	}

	return model.Activity{
		Kind:          model.KindEmail,
		Title:         title(rec, model.KindEmail),
		Description:   describe(model.KindEmail, status),
		Status:        status,
		DateLabel:     temporal.DateLabel(ts),
		TimeLabel:     temporal.TimeLabel(ts, raw),
		RelativeLabel: temporal.RelativeLabel(ts, now),
		Meta:          meta(rec.Str("direction"), rec.Str("status")),
		Timestamp:     ts,
	}
}
