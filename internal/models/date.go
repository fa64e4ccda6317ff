package models

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day or time zone component.
// The zero value is not a valid date; obtain one from DateOf or dates.Parse.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t as observed in loc.
// A nil loc means time.Local.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// DateLayout is the only accepted input layout for dates, and the layout
// String renders.
const DateLayout = "2006-01-02"

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
