// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is matched, via errors.Is, by all errors returned by
// Validate.
var ErrInvalidDate = errors.New("invalid date")

// Reason identifies which of the validation checks failed.
type Reason int

const (
	YearOutOfRange Reason = iota + 1
	MonthOutOfRange
	DayOutOfRange
)

func (r Reason) String() string {
	switch r {
	case YearOutOfRange:
		return "year must be ≥ 1"
	case MonthOutOfRange:
		return "month out of range"
	case DayOutOfRange:
		return "day out of range for this month/year"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// InvalidDateError is returned by Validate for a date that is not
// in the proleptic Gregorian calendar for years >= 1.
type InvalidDateError struct {
	Day, Month, Year int
	Reason           Reason
}

// Error implements error.
func (e *InvalidDateError) Error() string {
	return e.Reason.String()
}

// Is supports errors.Is for ErrInvalidDate.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// Validate checks that the year is >= 1, that the month is in the range
// 1-12 and that the day is valid for that month and year, in that order.
// The first failing check is returned as an *InvalidDateError.
func Validate(day, month, year int) error {
	invalid := func(r Reason) error {
		return &InvalidDateError{Day: day, Month: month, Year: year, Reason: r}
	}
	if year < 1 {
		return invalid(YearOutOfRange)
	}
	if month < 1 || month > 12 {
		return invalid(MonthOutOfRange)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return invalid(DayOutOfRange)
	}
	return nil
}
