package formatter

import (
	"fmt"
	"strings"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
	"github.com/crmkit/go-crm-timeline/internal/core/timeline"
)

// SummaryFormatter is responsible for formatting and outputting summary reports.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format outputs per-kind and per-status counts plus the next and most
// recent activity of the assembled timeline.
func (f *SummaryFormatter) Format(result timeline.Result) error {
	kindCounts := make(map[model.Kind]int)
	statusCounts := make(map[model.Status]int)

	all := make([]model.Activity, 0, len(result.Upcoming)+len(result.Past))
	all = append(all, result.Upcoming...)
	all = append(all, result.Past...)
	for _, a := range all {
		kindCounts[a.Kind]++
		statusCounts[a.Status]++
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Activity Timeline Summary")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total activities: %d (%d upcoming, %d past)\n",
		len(all), len(result.Upcoming), len(result.Past))

	fmt.Println("\nBy kind:")
	for _, kind := range []model.Kind{model.KindTask, model.KindEvent, model.KindCall, model.KindEmail} {
		fmt.Printf("  %-8s %d\n", kind.Noun()+"s:", kindCounts[kind])
	}

	fmt.Println("\nBy status:")
	for _, status := range []model.Status{model.StatusUpcoming, model.StatusOverdue, model.StatusPast} {
		fmt.Printf("  %-10s %d\n", string(status)+":", statusCounts[status])
	}

	if next, ok := nextDated(result.Upcoming); ok {
		fmt.Printf("\nNext up: %s", next.Title)
		if next.DateLabel != "" {
			fmt.Printf(" (%s", next.DateLabel)
			if next.TimeLabel != "" {
				fmt.Printf(" %s", next.TimeLabel)
			}
			fmt.Print(")")
		}
		fmt.Println()
	}
	if len(result.Past) > 0 {
		recent := result.Past[0]
		fmt.Printf("Most recent: %s", recent.Title)
		if recent.DateLabel != "" {
			fmt.Printf(" (%s)", recent.DateLabel)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("=", 60))
	return nil
}

// nextDated returns the first upcoming activity that actually has a
// timestamp; undated items sit at the tail and make poor headlines.
func nextDated(upcoming []model.Activity) (model.Activity, bool) {
	for _, a := range upcoming {
		if a.Timestamp != nil {
			return a, true
		}
	}
	return model.Activity{}, false
}
