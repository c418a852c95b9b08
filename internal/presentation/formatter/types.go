package formatter

import (
	"github.com/crmkit/go-crm-timeline/internal/core/timeline"
)

// Formatter renders an assembled timeline to stdout.
type Formatter interface {
	Format(result timeline.Result) error
}

// New returns the formatter for the given output name, defaulting to table.
func New(output string) Formatter {
	switch output {
	case "json":
		return NewJSONFormatter()
	case "csv":
		return NewCSVFormatter()
	case "summary":
		return NewSummaryFormatter()
	default:
		return NewTableFormatter()
	}
}
