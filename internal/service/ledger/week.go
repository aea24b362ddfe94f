package ledger

import "time"

// WeekStart returns the most recent reset boundary at or before now: midnight
// of the given weekday in loc, converted to UTC.
func WeekStart(now time.Time, weekday time.Weekday, loc *time.Location) time.Time {
	local := now.In(loc)
	back := (int(local.Weekday()) - int(weekday) + 7) % 7
	// AddDate keeps wall-clock midnight across DST shifts, Add(-24h) does not.
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -back)
	return start.UTC()
}
