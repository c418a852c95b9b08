package model

import "time"

// Kind identifies which interaction collection an activity came from.
type Kind string

const (
	KindTask  Kind = "task"
	KindEvent Kind = "event"
	KindCall  Kind = "call"
	KindEmail Kind = "email"
)

// Noun returns the generic display noun for a kind. It doubles as the title
// fallback so the UI never renders a blank row.
func (k Kind) Noun() string {
	switch k {
	case KindTask:
		return "Task"
	case KindEvent:
		return "Event"
	case KindCall:
		return "Call"
	case KindEmail:
		return "Email"
	}
	return "Activity"
}

// Status is the temporal bucket of an activity relative to "now".
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusOverdue  Status = "overdue"
	StatusPast     Status = "past"
)

// Activity is the unified, display-ready projection of one interaction
// record. Activities are built fresh on every assembly run and never mutated;
// all label fields are plain display strings.
type Activity struct {
	ID            string     `json:"id"`
	Kind          Kind       `json:"kind"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        Status     `json:"status"`
	DateLabel     string     `json:"dateLabel"`
	TimeLabel     string     `json:"timeLabel"`
	RelativeLabel string     `json:"relativeLabel"`
	Meta          []string   `json:"meta"`
	Timestamp     *time.Time `json:"timestamp"`
}
