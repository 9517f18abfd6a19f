package common

import "time"

const (
	DateFormatYYYYMMDD           = "2006-01-02"
	DateTimeFormatRFC3339        = time.RFC3339
	DateTimeFormatYYYYMMDDHHMMSS = "2006-01-02 15:04:05"
)

// Now returns the current time in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// ParseDate parses a YYYY-MM-DD string into a time.Time in UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormatYYYYMMDD, value)
	if err != nil {
		return time.Time{}, ErrInvalidFormatDate
	}
	return t.UTC(), nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateFormatYYYYMMDD)
}

// EndOfDay returns the last instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
