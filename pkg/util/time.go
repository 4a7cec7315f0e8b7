package util

import "time"

const (
	DateFormat       = "2006-01-02"
	HourMinuteFormat = "15:04"
	// ISOSecondFormat is ISO-8601 in UTC truncated to seconds.
	ISOSecondFormat = "2006-01-02T15:04:05Z"
)

// StartOfDayUTC returns midnight UTC of the day t falls on (in UTC).
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRangeUTC returns [start, end) for the UTC day of t.
func DayRangeUTC(t time.Time) (time.Time, time.Time) {
	start := StartOfDayUTC(t)
	return start, start.AddDate(0, 0, 1)
}

// ParseDateUTC parses a YYYY-MM-DD date as midnight UTC.
func ParseDateUTC(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}

// FormatDate formats t's UTC date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// FormatISOSecond formats t in UTC without fractional seconds.
func FormatISOSecond(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(ISOSecondFormat)
}
