package models

import "time"

// timeLayout is the wire format for every timestamp the admin API emits.
// Always UTC, seconds precision, matching what the admin frontend parses.
const timeLayout = "2006-01-02T15:04:05Z"

// FormatTime renders a timestamp in the admin API wire format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// FormatTimePtr renders an optional timestamp, mapping nil to nil.
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}
