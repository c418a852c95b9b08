// Package fixtures generates origin snapshot files for tests: prospect and
// converted-customer payloads carrying task/event/call/email collections in
// the same loose shapes the record-fetch layer produces.
package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
)

// TestDataGenerator writes origin snapshot JSON files under a base directory.
type TestDataGenerator struct {
	baseDir string
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator(baseDir string) *TestDataGenerator {
	return &TestDataGenerator{baseDir: baseDir}
}

// WriteSnapshot marshals the origins into <baseDir>/<name>.json and returns
// the file path. A single origin is written as a bare object, several as an
// array, matching both shapes the parser accepts.
func (g *TestDataGenerator) WriteSnapshot(name string, origins ...model.Origin) (string, error) {
	if err := os.MkdirAll(g.baseDir, 0755); err != nil {
		return "", err
	}

	var payload any = origins
	if len(origins) == 1 {
		payload = origins[0]
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(g.baseDir, name+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ProspectWithHistory builds a prospect origin with a spread of activity
// records around the reference time: an upcoming task, an overdue task, a
// finished event, a missed call and an inbound email.
func ProspectWithHistory(ref time.Time) model.Origin {
	day := 24 * time.Hour
	return model.Origin{
		"id":   "prospect-1",
		"name": "Acme Industrial",
		"tasks": []any{
			map[string]any{
				"id":       1,
				"subject":  "Send proposal",
				"due_date": ref.Add(3 * day).Format("2006-01-02 15:04:05"),
				"priority": "High",
				"status":   "Not Started",
			},
			map[string]any{
				"id":       2,
				"subject":  "Follow up on quote",
				"due_date": ref.Add(-2 * day).Format("2006-01-02 15:04:05"),
				"priority": "Normal",
				"status":   "In Progress",
			},
		},
		"events": []any{
			map[string]any{
				"id":             10,
				"subject":        "Kickoff meeting",
				"start_datetime": ref.Add(-5 * day).Format("2006-01-02T15:04:05"),
				"end_datetime":   ref.Add(-5*day + time.Hour).Format("2006-01-02T15:04:05"),
				"event_type":     "Meeting",
				"location":       "HQ",
			},
		},
		"call_logs": []any{
			map[string]any{
				"id":             20,
				"subject":        "Intro call",
				"call_date_time": ref.Add(-1 * day).Format("2006-01-02 15:04:05"),
				"call_type":      "Missed",
			},
		},
		"emails": []any{
			map[string]any{
				"id":        30,
				"subject":   "Pricing sheet",
				"sent_at":   ref.Add(-6 * day).Format("2006-01-02 15:04:05"),
				"direction": "Inbound",
				"status":    "Read",
			},
		},
	}
}

// ConvertedCustomer builds the customer origin a prospect converts into. It
// deliberately repeats task id 2 from ProspectWithHistory so merge dedup is
// exercised, and contributes one record of its own.
func ConvertedCustomer(ref time.Time) model.Origin {
	day := 24 * time.Hour
	return model.Origin{
		"id":   "customer-1",
		"name": "Acme Industrial (customer)",
		"tasks": []any{
			map[string]any{
				"id":       2,
				"subject":  "Follow up on quote",
				"due_date": ref.Add(-2 * day).Format("2006-01-02 15:04:05"),
				"priority": "Normal",
				"status":   "In Progress",
			},
		},
		"callLogs": []any{
			map[string]any{
				"id":                    21,
				"subject":               "Onboarding call",
				"callDateTime":          ref.Add(2 * day).Format("2006-01-02 15:04:05"),
				"call_type":             "Outbound",
				"call_duration_minutes": 30,
			},
		},
	}
}
