package timeline

import (
	"time"

	"github.com/crmkit/go-crm-timeline/internal/core/classify"
	"github.com/crmkit/go-crm-timeline/internal/core/model"
)

// Result holds the two presentation-ready buckets of one assembly run.
// Upcoming also carries overdue activities, soonest first with undated items
// last; Past is most recent first.
type Result struct {
	Upcoming []model.Activity `json:"upcomingActivities"`
	Past     []model.Activity `json:"pastActivities"`
}

// kindSpec wires one activity kind to its collection names, its merge
// fallback keys, its id candidate fields and its classifier.
type kindSpec struct {
	kind         model.Kind
	collections  []string
	fallbackKeys []string
	idFields     []string
	classify     func(model.RawRecord, time.Time) model.Activity
}

var kinds = []kindSpec{
	{
		kind:         model.KindTask,
		collections:  []string{"tasks"},
		fallbackKeys: []string{"subject", "title", "due_date", "dueDate"},
		idFields:     []string{"id", "subject", "title", "due_date", "dueDate"},
		classify:     classify.Task,
	},
	{
		kind:         model.KindEvent,
		collections:  []string{"events"},
		fallbackKeys: []string{"subject", "title", "start_datetime", "start"},
		idFields:     []string{"id", "subject", "title", "start_datetime", "start"},
		classify:     classify.Event,
	},
	{
		kind:         model.KindCall,
		collections:  []string{"call_logs", "callLogs"},
		fallbackKeys: []string{"subject", "title", "call_date_time", "callDateTime", "date"},
		idFields:     []string{"id", "subject", "title", "call_date_time", "callDateTime", "date"},
		classify:     classify.Call,
	},
	{
		kind:         model.KindEmail,
		collections:  []string{"emails"},
		fallbackKeys: []string{"subject", "sent_at", "created_at", "date"},
		idFields:     []string{"id", "subject", "sent_at", "created_at", "date"},
		classify:     classify.Email,
	},
}
