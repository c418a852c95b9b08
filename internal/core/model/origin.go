package model

import "strconv"

// Origin is any record-holding object supplied to the engine: a prospect, a
// converted customer, a linked account. Payloads are decoded into plain maps
// so collections and fields can be resolved by name without a fixed schema.
type Origin map[string]any

// Collection returns the named sub-collection, trying each candidate name in
// order. The first name whose value is actually a list wins; anything else
// (missing key, non-array value) degrades to empty rather than erroring.
// Non-object elements inside the list are skipped.
func (o Origin) Collection(names ...string) []RawRecord {
	if o == nil {
		return nil
	}
	for _, name := range names {
		items, ok := o[name].([]any)
		if !ok {
			continue
		}
		records := make([]RawRecord, 0, len(items))
		for _, item := range items {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, RawRecord(rec))
			}
		}
		return records
	}
	return nil
}

// Str resolves a top-level scalar field of the origin itself (its id, name
// and so on) with the same coercion rules as RawRecord.Str.
func (o Origin) Str(keys ...string) string {
	return RawRecord(o).Str(keys...)
}

// RawRecord is one loosely typed interaction record. Field names vary
// between snake_case and camelCase across upstream API versions, so every
// accessor takes candidate names in preference order and returns a zero
// value instead of failing on absent or oddly typed fields.
type RawRecord map[string]any

// Str returns the first non-empty string form among the candidate keys.
// JSON numbers are rendered to their canonical string form so an id of 42
// and an id of "42" dedup identically.
func (r RawRecord) Str(keys ...string) string {
	for _, key := range keys {
		switch v := r[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		}
	}
	return ""
}

// Bool reads a flag that upstream may encode as a JSON bool, a number, or a
// string ("true"/"1"/"yes").
func (r RawRecord) Bool(keys ...string) bool {
	for _, key := range keys {
		switch v := r[key].(type) {
		case bool:
			return v
		case float64:
			return v != 0
		case string:
			switch v {
			case "true", "True", "TRUE", "1", "yes", "Yes":
				return true
			case "":
				continue
			default:
				return false
			}
		}
	}
	return false
}

// Number returns the first numeric value among the candidate keys, accepting
// numeric strings as well.
func (r RawRecord) Number(keys ...string) (float64, bool) {
	for _, key := range keys {
		switch v := r[key].(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		case string:
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
