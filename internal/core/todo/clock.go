package todo

import "time"

// nowFunc is the clock used by calendar queries and mutators.
// Tests override it to pin "now".
var nowFunc = time.Now

// daysBetween returns the signed calendar-day distance from the day of `from`
// to the day of `to`, evaluated in local time. Midnights are compared in UTC
// so DST shifts cannot skew the count.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Local().Date()
	ty, tm, td := to.Local().Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// startOfWeek returns the Monday of the week containing t, at local midnight.
func startOfWeek(t time.Time) time.Time {
	t = t.Local()
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
