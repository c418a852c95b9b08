package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginCollection(t *testing.T) {
	origin := Origin{
		"tasks": []any{
			map[string]any{"id": float64(1), "subject": "Call back"},
			"not an object",
			map[string]any{"id": float64(2)},
		},
		"events":   "not an array",
		"callLogs": []any{map[string]any{"id": float64(9)}},
	}

	tasks := origin.Collection("tasks")
	require.Len(t, tasks, 2)
	assert.Equal(t, "Call back", tasks[0].Str("subject"))

	// Non-array value degrades to empty.
	assert.Empty(t, origin.Collection("events"))

	// Alternate name resolves when the primary is absent.
	calls := origin.Collection("call_logs", "callLogs")
	require.Len(t, calls, 1)
	assert.Equal(t, "9", calls[0].Str("id"))

	// Missing collection and nil origin both degrade to empty.
	assert.Empty(t, origin.Collection("emails"))
	assert.Empty(t, Origin(nil).Collection("tasks"))
}

func TestOriginStr(t *testing.T) {
	origin := Origin{
		"id":   "prospect-1",
		"name": float64(7),
	}

	assert.Equal(t, "prospect-1", origin.Str("id"))
	// Same scalar coercion as record fields.
	assert.Equal(t, "7", origin.Str("name"))
	assert.Equal(t, "", origin.Str("missing"))
}

func TestRawRecordStr(t *testing.T) {
	rec := RawRecord{
		"subject":  "",
		"title":    "Quarterly review",
		"id":       float64(42),
		"count":    7,
		"big":      int64(9000000000),
		"priority": "High",
	}

	tests := []struct {
		name     string
		keys     []string
		expected string
	}{
		{"skips empty primary", []string{"subject", "title"}, "Quarterly review"},
		{"json number renders without exponent", []string{"id"}, "42"},
		{"int", []string{"count"}, "7"},
		{"int64", []string{"big"}, "9000000000"},
		{"missing key", []string{"nope"}, ""},
		{"first hit wins", []string{"priority", "title"}, "High"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rec.Str(tt.keys...))
		})
	}
}

func TestRawRecordBool(t *testing.T) {
	tests := []struct {
		name     string
		rec      RawRecord
		keys     []string
		expected bool
	}{
		{"json bool", RawRecord{"all_day": true}, []string{"all_day"}, true},
		{"numeric one", RawRecord{"all_day": float64(1)}, []string{"all_day"}, true},
		{"numeric zero", RawRecord{"all_day": float64(0)}, []string{"all_day"}, false},
		{"string true", RawRecord{"allDay": "true"}, []string{"all_day", "allDay"}, true},
		{"string literal one", RawRecord{"allDay": "1"}, []string{"allDay"}, true},
		{"string false", RawRecord{"allDay": "false"}, []string{"allDay"}, false},
		{"empty string falls through", RawRecord{"all_day": "", "allDay": true}, []string{"all_day", "allDay"}, true},
		{"absent", RawRecord{}, []string{"all_day"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rec.Bool(tt.keys...))
		})
	}
}

func TestRawRecordNumber(t *testing.T) {
	rec := RawRecord{
		"minutes": float64(30),
		"ints":    15,
		"text":    "12.5",
		"junk":    "soon",
	}

	n, ok := rec.Number("minutes")
	assert.True(t, ok)
	assert.Equal(t, 30.0, n)

	n, ok = rec.Number("ints")
	assert.True(t, ok)
	assert.Equal(t, 15.0, n)

	n, ok = rec.Number("text")
	assert.True(t, ok)
	assert.Equal(t, 12.5, n)

	_, ok = rec.Number("junk")
	assert.False(t, ok)

	_, ok = rec.Number("absent")
	assert.False(t, ok)
}

func TestKindNoun(t *testing.T) {
	assert.Equal(t, "Task", KindTask.Noun())
	assert.Equal(t, "Event", KindEvent.Noun())
	assert.Equal(t, "Call", KindCall.Noun())
	assert.Equal(t, "Email", KindEmail.Noun())
	assert.Equal(t, "Activity", Kind("other").Noun())
}
