package domain

import "time"

// TimestampLayout is the canonical ISO-8601 UTC form used on the wire.
// Clients echo it back verbatim for optimistic concurrency checks, so it must
// stay stable and carry the full microsecond precision PostgreSQL stores.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatTimestampPtr renders t, or returns "" for nil.
func FormatTimestampPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTimestamp(*t)
}
