// Package merge combines same-kind record collections arriving from multiple
// origins into one deduplicated list. A prospect and its converted customer
// frequently carry the same underlying record, so identity is resolved by a
// string key and the first occurrence wins.
package merge

import (
	"fmt"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
)

// Records merges one kind's collections from every origin in order. Later
// origins contribute additional records but never overwrite an earlier one
// with the same key. Output preserves first-seen order and is not sorted.
func Records(origins []model.Origin, names []string, fallbackKeys []string) []model.RawRecord {
	seen := make(map[string]bool)
	var out []model.RawRecord

	for oi, origin := range origins {
		for i, rec := range origin.Collection(names...) {
			key := dedupKey(rec, fallbackKeys, fmt.Sprintf("pos-%d-%d", oi, i))
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, rec)
		}
	}
	return out
}

// dedupKey prefers the record id, then the first usable fallback field, then
// a positional key unique to this insertion point. The positional fallback
// guarantees two keyless records are never silently merged.
func dedupKey(rec model.RawRecord, fallbackKeys []string, positional string) string {
	if id := rec.Str("id"); id != "" {
		return "id-" + id
	}
	for _, field := range fallbackKeys {
		if v := rec.Str(field); v != "" {
			return field + "-" + v
		}
	}
	return positional
}
