package classify

import (
	"strings"
	"time"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
	"github.com/crmkit/go-crm-timeline/internal/core/temporal"
)

// Task classifies a raw task record against now. The effective instant is
// the reminder time when one is set, otherwise the due date. A completed
// task is past regardless of its dates; an uncompleted task whose effective
// instant has passed is overdue.
func Task(rec model.RawRecord, now time.Time) model.Activity {
	raw := rec.Str("reminder_time", "reminderTime")
	usedReminder := raw != ""
	if !usedReminder {
		raw = rec.Str("due_date", "dueDate")
	}
	ts := temporal.Parse(raw, now.Location())

	statusText := rec.Str("status")
	completed := isCompleted(statusText)
	overdue := !completed && ts != nil && ts.Before(now)

	status := model.StatusUpcoming
	switch {
	case completed:
		status = model.StatusPast
	case overdue:
		status = model.StatusOverdue
	}

	reminderTag := ""
	if usedReminder {
		reminderTag = "Reminder"
	}

	return model.Activity{
		Kind:          model.KindTask,
		Title:         title(rec, model.KindTask),
		Description:   describe(model.KindTask, status),
		Status:        status,
		DateLabel:     temporal.DateLabel(ts),
		TimeLabel:     temporal.TimeLabel(ts, raw),
		RelativeLabel: temporal.RelativeLabel(ts, now),
		Meta:          meta(rec.Str("priority"), statusText, reminderTag),
		Timestamp:     ts,
	}
}

func isCompleted(status string) bool {
	switch strings.ToLower(status) {
	case "completed", "done", "closed":
		return true
	}
	return false
}
