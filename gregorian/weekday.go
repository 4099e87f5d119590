// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

// Month offsets for Sakamoto's method.
var sakamoto = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// DayOfWeek returns the day of the week for the specified date using
// Sakamoto's method. The date is not validated and must be a valid date
// with year >= 1, see Validate.
func DayOfWeek(year, month, day int) Weekday {
	y := year
	if month < 3 {
		// Jan and Feb belong to the previous year for the leap corrections.
		y--
	}
	// The calendar repeats every 400 years (146097 days, a whole number of
	// weeks), reducing y keeps the sum below from overflowing for any year.
	y %= 400
	// Sunday is 0. All operands are non-negative so truncating division
	// and modulo are sufficient.
	w := (y + y/4 - y/100 + y/400 + sakamoto[month-1] + day) % 7
	return Weekday((w + 6) % 7)
}

// DayName validates the supplied date and returns the name of the day
// of the week it falls on.
func DayName(day, month, year int) (string, error) {
	if err := Validate(day, month, year); err != nil {
		return "", err
	}
	return DayOfWeek(year, month, day).String(), nil
}
