// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian_test

import (
	"errors"
	"testing"

	"cloudeng.io/calendar/gregorian"
)

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		day, month, year int
	}{
		{29, 2, 2024},
		{28, 2, 2023},
		{29, 2, 2000},
		{1, 1, 1},
		{31, 12, 9999},
		{31, 12, 100000},
		{30, 4, 2023},
		{31, 1, 2023},
	} {
		if err := gregorian.Validate(tc.day, tc.month, tc.year); err != nil {
			t.Errorf("%v/%v/%v: %v", tc.day, tc.month, tc.year, err)
		}
	}

	for _, tc := range []struct {
		day, month, year int
		reason           gregorian.Reason
		msg              string
	}{
		{1, 1, 0, gregorian.YearOutOfRange, "year must be ≥ 1"},
		{1, 1, -2024, gregorian.YearOutOfRange, "year must be ≥ 1"},
		{40, 13, 0, gregorian.YearOutOfRange, "year must be ≥ 1"},
		{1, 0, 2024, gregorian.MonthOutOfRange, "month out of range"},
		{1, 13, 2024, gregorian.MonthOutOfRange, "month out of range"},
		{40, 13, 2024, gregorian.MonthOutOfRange, "month out of range"},
		{30, 2, 2023, gregorian.DayOutOfRange, "day out of range for this month/year"},
		{29, 2, 2023, gregorian.DayOutOfRange, "day out of range for this month/year"},
		{29, 2, 1900, gregorian.DayOutOfRange, "day out of range for this month/year"},
		{31, 4, 2024, gregorian.DayOutOfRange, "day out of range for this month/year"},
		{0, 1, 2024, gregorian.DayOutOfRange, "day out of range for this month/year"},
		{-1, 1, 2024, gregorian.DayOutOfRange, "day out of range for this month/year"},
	} {
		err := gregorian.Validate(tc.day, tc.month, tc.year)
		if err == nil {
			t.Errorf("%v/%v/%v: failed to return an error", tc.day, tc.month, tc.year)
			continue
		}
		if got, want := err.Error(), tc.msg; got != want {
			t.Errorf("%v/%v/%v: got %v, want %v", tc.day, tc.month, tc.year, got, want)
		}
		if !errors.Is(err, gregorian.ErrInvalidDate) {
			t.Errorf("%v/%v/%v: not an ErrInvalidDate: %v", tc.day, tc.month, tc.year, err)
		}
		var ide *gregorian.InvalidDateError
		if !errors.As(err, &ide) {
			t.Errorf("%v/%v/%v: not an InvalidDateError: %T", tc.day, tc.month, tc.year, err)
			continue
		}
		if got, want := ide.Reason, tc.reason; got != want {
			t.Errorf("%v/%v/%v: got %v, want %v", tc.day, tc.month, tc.year, got, want)
		}
		if got, want := *ide, (gregorian.InvalidDateError{Day: tc.day, Month: tc.month, Year: tc.year, Reason: tc.reason}); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestCalendarDate(t *testing.T) {
	cd := gregorian.NewCalendarDate(2057, 3, 13)
	if got, want := cd.String(), "13/03/2057"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := gregorian.NewCalendarDate(5, 1, 2).String(), "02/01/5"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	wd, err := cd.Weekday()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := wd, gregorian.Tuesday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := gregorian.NewCalendarDate(2023, 2, 29).Weekday(); !errors.Is(err, gregorian.ErrInvalidDate) {
		t.Errorf("expected an invalid date error: %v", err)
	}
}
