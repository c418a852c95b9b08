package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	utc := time.UTC

	tests := []struct {
		name     string
		raw      string
		expected *time.Time
	}{
		{
			name:     "empty string",
			raw:      "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			raw:      "   ",
			expected: nil,
		},
		{
			name:     "garbage",
			raw:      "not a date",
			expected: nil,
		},
		{
			name:     "space separated date time",
			raw:      "2024-05-01 14:30:00",
			expected: instant(time.Date(2024, 5, 1, 14, 30, 0, 0, utc)),
		},
		{
			name:     "iso with T separator",
			raw:      "2024-05-01T14:30:00",
			expected: instant(time.Date(2024, 5, 1, 14, 30, 0, 0, utc)),
		},
		{
			name:     "rfc3339 with offset",
			raw:      "2024-05-01T14:30:00Z",
			expected: instant(time.Date(2024, 5, 1, 14, 30, 0, 0, utc)),
		},
		{
			name:     "bare date",
			raw:      "2024-05-01",
			expected: instant(time.Date(2024, 5, 1, 0, 0, 0, 0, utc)),
		},
		{
			name:     "slash date",
			raw:      "2024/05/01",
			expected: instant(time.Date(2024, 5, 1, 0, 0, 0, 0, utc)),
		},
		{
			name:     "minutes only time",
			raw:      "2024-05-01 09:15",
			expected: instant(time.Date(2024, 5, 1, 9, 15, 0, 0, utc)),
		},
		{
			name:     "invalid clock in valid shape",
			raw:      "2024-05-01 99:99:99",
			expected: nil,
		},
		{
			name:     "month out of range",
			raw:      "2024-13-01",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw, utc)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestParseUsesLocationForNaiveValues(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	got := Parse("2024-05-01 08:00:00", shanghai)
	require.NotNil(t, got)
	assert.Equal(t, shanghai, got.Location())
	assert.True(t, got.Equal(time.Date(2024, 5, 1, 8, 0, 0, 0, shanghai)))
}

func TestParseNilLocationDefaultsToLocal(t *testing.T) {
	got := Parse("2024-05-01", nil)
	require.NotNil(t, got)
	assert.Equal(t, time.Local, got.Location())
}

func instant(t time.Time) *time.Time {
	return &t
}
