package todo

import (
	"encoding/json"
	"fmt"
	"time"
)

// DueDate is an immutable value object wrapping a task's due instant.
//
// Calendar queries (IsToday, DaysUntilDue, ...) are pure functions of the
// wrapped instant and the clock; nothing is cached, so the same value answers
// correctly as days pass.
type DueDate struct {
	at time.Time
}

// NewDueDate constructs a due date from an instant. The instant must not be
// more than one calendar day in the past; use RestoreDueDate for rehydrating
// historical data.
func NewDueDate(at time.Time) (DueDate, error) {
	if at.IsZero() {
		return DueDate{}, ErrInvalidDate
	}
	if daysBetween(nowFunc(), at) < -1 {
		return DueDate{}, fmt.Errorf("%w: %s", ErrPastDate, at.Format(time.RFC3339))
	}
	return DueDate{at: at}, nil
}

// RestoreDueDate constructs a due date without the past-date guard.
// Intended for read/query paths that legitimately carry overdue instants.
func RestoreDueDate(at time.Time) (DueDate, error) {
	if at.IsZero() {
		return DueDate{}, ErrInvalidDate
	}
	return DueDate{at: at}, nil
}

// ParseDueDate parses RFC 3339 or plain "2006-01-02" text into a due date.
// Parsed dates go through the same past-date guard as NewDueDate.
func ParseDueDate(s string) (DueDate, error) {
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		at, err = time.ParseInLocation("2006-01-02", s, time.Local)
	}
	if err != nil {
		return DueDate{}, fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return NewDueDate(at)
}

// DueDateFromComponents builds a due date from year/month/day numbers.
// Components that do not form a real calendar date (month 13, Feb 30)
// are rejected rather than normalized.
func DueDateFromComponents(year, month, day int) (DueDate, error) {
	if month < 1 || month > 12 || day < 1 {
		return DueDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDateComponents, year, month, day)
	}
	at := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	y, m, d := at.Date()
	if y != year || int(m) != month || d != day {
		return DueDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDateComponents, year, month, day)
	}
	return RestoreDueDate(at)
}

// Time returns the wrapped instant.
func (d DueDate) Time() time.Time { return d.at }

// IsZero reports whether d is the zero value (no due date).
func (d DueDate) IsZero() bool { return d.at.IsZero() }

// DaysUntilDue returns the signed calendar-day distance from today.
// Negative values mean the date is overdue.
func (d DueDate) DaysUntilDue() int {
	return daysBetween(nowFunc(), d.at)
}

// IsOverdue reports whether the due day is strictly before today.
// Completion status is the caller's concern; the date only knows the calendar.
func (d DueDate) IsOverdue() bool {
	return d.DaysUntilDue() < 0
}

// IsToday reports whether the due day is today.
func (d DueDate) IsToday() bool {
	return d.DaysUntilDue() == 0
}

// IsTomorrow reports whether the due day is tomorrow.
func (d DueDate) IsTomorrow() bool {
	return d.DaysUntilDue() == 1
}

// IsWithinDays reports whether the due day is between today and n days ahead.
func (d DueDate) IsWithinDays(n int) bool {
	days := d.DaysUntilDue()
	return days >= 0 && days <= n
}

// IsThisWeek reports whether the due day falls in the current Monday-start week.
func (d DueDate) IsThisWeek() bool {
	diff := daysBetween(startOfWeek(nowFunc()), d.at)
	return diff >= 0 && diff < 7
}

// IsNextWeek reports whether the due day falls in the following Monday-start week.
func (d DueDate) IsNextWeek() bool {
	diff := daysBetween(startOfWeek(nowFunc()), d.at)
	return diff >= 7 && diff < 14
}

// FormatJapanese returns the absolute date in Japanese form, e.g. "2026年3月1日".
func (d DueDate) FormatJapanese() string {
	y, m, day := d.at.Local().Date()
	return fmt.Sprintf("%d年%d月%d日", y, int(m), day)
}

// FormatRelative returns the due day relative to today:
// 今日 (today), 明日 (tomorrow), N日後 (N days ahead), N日遅れ (N days overdue).
func (d DueDate) FormatRelative() string {
	days := d.DaysUntilDue()
	switch {
	case days == 0:
		return "今日"
	case days == 1:
		return "明日"
	case days > 1:
		return fmt.Sprintf("%d日後", days)
	default:
		return fmt.Sprintf("%d日遅れ", -days)
	}
}

// ISOString returns the wrapped instant in RFC 3339 form.
func (d DueDate) ISOString() string {
	return d.at.Format(time.RFC3339)
}

// String is an alias for ISOString.
func (d DueDate) String() string {
	return d.ISOString()
}

// MarshalJSON encodes the wrapped instant as an RFC 3339 string.
func (d DueDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.at)
}

// UnmarshalJSON decodes an RFC 3339 string without the past-date guard, since
// stored history legitimately carries overdue instants.
func (d *DueDate) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &d.at)
}

// Equals compares exact instants. A zero-value due date never equals anything.
func (d DueDate) Equals(other DueDate) bool {
	if d.at.IsZero() || other.at.IsZero() {
		return false
	}
	return d.at.Equal(other.at)
}

// IsSameDay reports whether both dates fall on the same calendar day.
func (d DueDate) IsSameDay(other DueDate) bool {
	return daysBetween(d.at, other.at) == 0
}

// IsBefore reports whether d's calendar day is before other's.
func (d DueDate) IsBefore(other DueDate) bool {
	return daysBetween(d.at, other.at) > 0
}

// IsAfter reports whether d's calendar day is after other's.
func (d DueDate) IsAfter(other DueDate) bool {
	return daysBetween(d.at, other.at) < 0
}
