package models

import "time"

// pocketbaseTime is the timestamp layout the record store uses for the
// autogenerated created/updated fields.
const pocketbaseTime = "2006-01-02 15:04:05.000Z"

// ParseTime decodes a record store timestamp. Falls back to RFC3339 so test
// fixtures can use the standard layout; zero time on anything else.
func ParseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(pocketbaseTime, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// FormatTime encodes a timestamp in the record store layout.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(pocketbaseTime)
}
