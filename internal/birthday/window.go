// Package birthday computes the seven-day lookup window used by the
// upcoming-birthdays query. Birthdays recur annually: only month and
// day-of-month are matched, the stored year is ignored.
package birthday

import (
	"fmt"
	"time"
)

// windowDays is the inclusive length of the lookahead window.
const windowDays = 7

// sameMonthMaxDay is the last day-of-month routed to the single-query
// same-month path. Above it the window may cross a month boundary and each
// offset date is resolved individually. Days 22 through 25 of a 31-day
// month take the rollover path even though their window never leaves the
// month; that costs extra queries, not correctness.
const sameMonthMaxDay = 21

// MonthDay is a year-independent calendar position.
type MonthDay struct {
	Month int
	Day   int
}

// Window describes how to match birthdays falling within the next seven
// days of a reference date. Exactly one of the two shapes is populated.
type Window struct {
	// SameMonth reports that the whole window lies in the reference month.
	// Month and Days then carry two-digit zero-padded text values for a
	// single query comparing the birthday's month and day as stored.
	SameMonth bool
	Month     string
	Days      []string

	// Dates carries one month/day pair per offset when the window may roll
	// over a month or year boundary, in ascending offset order.
	Dates []MonthDay
}

// Compute builds the window for the given reference date.
func Compute(today time.Time) Window {
	if today.Day() <= sameMonthMaxDay {
		w := Window{
			SameMonth: true,
			Month:     fmt.Sprintf("%02d", int(today.Month())),
			Days:      make([]string, 0, windowDays),
		}
		for offset := 0; offset < windowDays; offset++ {
			w.Days = append(w.Days, fmt.Sprintf("%02d", today.Day()+offset))
		}
		return w
	}

	w := Window{Dates: make([]MonthDay, 0, windowDays)}
	for offset := 0; offset < windowDays; offset++ {
		d := today.AddDate(0, 0, offset)
		w.Dates = append(w.Dates, MonthDay{Month: int(d.Month()), Day: d.Day()})
	}
	return w
}
