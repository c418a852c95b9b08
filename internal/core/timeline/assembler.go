package timeline

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/crmkit/go-crm-timeline/internal/core/merge"
	"github.com/crmkit/go-crm-timeline/internal/core/model"
)

// Assembler turns an ordered origin list into the two sorted activity
// buckets. It holds no state across calls beyond the display timezone.
type Assembler struct {
	location *time.Location
}

// NewAssembler creates an assembler that resolves naive dates and formats
// labels in the given timezone. Unknown names fall back to the system
// timezone.
func NewAssembler(timezone string) *Assembler {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.Local
	}
	return &Assembler{location: loc}
}

// Assemble merges, classifies and sorts every interaction record carried by
// the origins. It is a pure function of its arguments: the same origins and
// the same now always produce identical buckets. An empty or headless origin
// list yields two empty, non-nil buckets.
func (a *Assembler) Assemble(origins []model.Origin, now time.Time) Result {
	result := Result{Upcoming: []model.Activity{}, Past: []model.Activity{}}
	if len(origins) == 0 || origins[0] == nil {
		return result
	}
	now = now.In(a.location)

	position := 0
	for _, spec := range kinds {
		for _, rec := range merge.Records(origins, spec.collections, spec.fallbackKeys) {
			activity := spec.classify(rec, now)
			activity.ID = activityID(spec.kind, rec, spec.idFields, position)
			position++

			if activity.Status == model.StatusPast {
				result.Past = append(result.Past, activity)
			} else {
				result.Upcoming = append(result.Upcoming, activity)
			}
		}
	}

	sortUpcoming(result.Upcoming)
	sortPast(result.Past)
	return result
}

// activityID builds a list-stable id from the kind, the best natural key and
// the activity's position in the run. The position suffix keeps ids unique
// even when two kinds happen to share a natural key.
func activityID(kind model.Kind, rec model.RawRecord, fields []string, position int) string {
	key := "item"
	for _, field := range fields {
		if v := rec.Str(field); v != "" {
			key = v
			break
		}
	}
	return fmt.Sprintf("%s-%s-%d", kind, key, position)
}

// sortUpcoming orders soonest first; undated activities sink to the end.
// Ties keep merge-emitted order.
func sortUpcoming(list []model.Activity) {
	at := func(a model.Activity) int64 {
		if a.Timestamp == nil {
			return math.MaxInt64
		}
		return a.Timestamp.UnixNano()
	}
	sort.SliceStable(list, func(i, j int) bool {
		return at(list[i]) < at(list[j])
	})
}

// sortPast orders most recent first; undated activities count as the epoch
// and end up displayed last.
func sortPast(list []model.Activity) {
	at := func(a model.Activity) int64 {
		if a.Timestamp == nil {
			return 0
		}
		return a.Timestamp.UnixNano()
	}
	sort.SliceStable(list, func(i, j int) bool {
		return at(list[i]) > at(list[j])
	})
}
