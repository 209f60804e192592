package task

import "time"

// dayLayout is the wire format for calendar-day bucket keys.
const dayLayout = "2006-01-02"

// Day is a calendar-date bucket key ("2006-01-02"). It is deliberately
// separate from any wall-clock instant: two tasks created minutes apart
// across midnight land in different buckets, regardless of zone offset
// within the day.
type Day string

// DayOf buckets an instant into its local calendar day.
func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// ParseDay parses a "2006-01-02" string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		return "", err
	}
	return DayOf(t), nil
}

// Valid reports whether d is a well-formed day key.
func (d Day) Valid() bool {
	_, err := time.ParseInLocation(dayLayout, string(d), time.Local)
	return err == nil
}

// Time returns midnight local time of the day. Invalid days return the
// zero time.
func (d Day) Time() time.Time {
	t, err := time.ParseInLocation(dayLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the day shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Contains reports whether the instant falls on this calendar day.
func (d Day) Contains(t time.Time) bool {
	return DayOf(t) == d
}

func (d Day) String() string { return string(d) }
