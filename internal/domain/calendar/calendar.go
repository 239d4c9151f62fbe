package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimeOfDay = errors.New("invalid time, expected HH:MM")
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
	SlotStep       = 30 // minutes
)

// Date is a wall-calendar day without a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.In(time.UTC).AddDate(0, 0, n))
}

// MonthStart returns the first day of d's month.
func (d Date) MonthStart() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// MonthEnd returns the last day of d's month.
func (d Date) MonthEnd() Date {
	return DateOf(d.MonthStart().In(time.UTC).AddDate(0, 1, -1))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay is minutes since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	m := int(t) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidTimeOfDay
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// At combines a date and a wall-clock time in loc; no zone conversion happens.
func At(d Date, t TimeOfDay, loc *time.Location) time.Time {
	return AtPlusHours(d, t, 0, loc)
}

// AtPlusHours is At moved forward by wall-clock hours, so a booking that spans a
// DST change still ends at the expected clock reading.
func AtPlusHours(d Date, t TimeOfDay, hours int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hours, t.Minutes(), 0, 0, loc)
}

// Window is a unit's operating window. A close at or before open means the unit
// closes after midnight.
type Window struct {
	Open  TimeOfDay
	Close TimeOfDay
}

func ParseWindow(open, close string) (Window, error) {
	o, err := ParseTimeOfDay(open)
	if err != nil {
		return Window{}, err
	}
	c, err := ParseTimeOfDay(close)
	if err != nil {
		return Window{}, err
	}
	return Window{Open: o, Close: c}, nil
}

func (w Window) closeMinutes() int {
	c := w.Close.Minutes()
	if c <= w.Open.Minutes() {
		c += 24 * 60
	}
	return c
}

// Starts lists every slot start from Open up to (excluding) Close at SlotStep granularity.
func (w Window) Starts() []TimeOfDay {
	var out []TimeOfDay
	for m := w.Open.Minutes(); m < w.closeMinutes(); m += SlotStep {
		out = append(out, TimeOfDay(m))
	}
	return out
}

// MaxHoursFrom is how many whole hours fit between start and closing.
func (w Window) MaxHoursFrom(start TimeOfDay) int {
	s := start.Minutes()
	if s < w.Open.Minutes() {
		s += 24 * 60
	}
	remaining := w.closeMinutes() - s
	if remaining <= 0 {
		return 0
	}
	return remaining / 60
}
