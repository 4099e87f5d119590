// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gregorian provides support for determining the day of the week
// for dates in the proleptic Gregorian calendar and for laying out
// simple month calendars. Weeks start on Monday as per ISO 8601.
package gregorian

import "fmt"

// CalendarDate represents a date with a year, month and day.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// NewCalendarDate returns a CalendarDate, the date is not validated.
func NewCalendarDate(year, month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// String returns the date as DD/MM/YYYY with the year not padded.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%02d/%02d/%d", cd.Day, cd.Month, cd.Year)
}

// Validate is like the package level Validate function.
func (cd CalendarDate) Validate() error {
	return Validate(cd.Day, cd.Month, cd.Year)
}

// Weekday returns the day of the week for a valid date.
func (cd CalendarDate) Weekday() (Weekday, error) {
	if err := cd.Validate(); err != nil {
		return 0, err
	}
	return DayOfWeek(cd.Year, cd.Month, cd.Day), nil
}
