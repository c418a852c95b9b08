// Package classify applies the kind-specific business rules that turn one
// raw CRM record into a display-ready activity. Classifiers never fail:
// missing or malformed fields degrade to empty labels and a nil timestamp.
package classify

import (
	"fmt"
	"strings"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
)

// title resolves the display title, falling back to the kind noun so rows
// are never blank.
func title(rec model.RawRecord, kind model.Kind) string {
	if s := rec.Str("subject", "title"); s != "" {
		return s
	}
	return kind.Noun()
}

// describe builds the fixed temporal-state phrase for a kind and status.
func describe(kind model.Kind, status model.Status) string {
	noun := strings.ToLower(kind.Noun())
	switch status {
	case model.StatusUpcoming:
		return fmt.Sprintf("This %s is upcoming", noun)
	case model.StatusOverdue:
		return fmt.Sprintf("This %s is overdue", noun)
	}
	return fmt.Sprintf("This %s is in the past", noun)
}

// meta collects tag strings in order, dropping empty entries.
func meta(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
