// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"strconv"
	"strings"
)

// monthLengths is indexed by [leap][month-1], leap being 1 for leap years.
var monthLengths = [2][12]int{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar. Any year, including those <= 0, is accepted.
func IsLeap(year int) bool {
	if year%100 == 0 {
		return year%400 == 0
	}
	return year%4 == 0
}

func leapIndex(year int) int {
	if IsLeap(year) {
		return 1
	}
	return 0
}

// DaysInMonth returns the length of month in year, the month must be
// in the range 1-12.
func DaysInMonth(year, month int) int {
	return monthLengths[leapIndex(year)][month-1]
}

// DaysInFeb returns 29 for leap years and 28 otherwise.
func DaysInFeb(year int) int {
	return DaysInMonth(year, 2)
}

// Month as an int, January is 1.
type Month int

// String returns the full English name of the month, or Month(n) for
// values outside of 1-12.
func (m Month) String() string {
	if m < 1 || m > 12 {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// ParseNumericMonth parses a decimal month number, eg. 3 or 03.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	if m := Month(n); m >= 1 && m <= 12 {
		return m, nil
	}
	return 0, fmt.Errorf("invalid month: %d", n)
}

// ParseMonth parses a case-insensitive prefix of at least three letters
// of an English month name, eg. mar, Sept or DECEMBER.
func ParseMonth(val string) (Month, error) {
	if len(val) >= 3 {
		for i, name := range monthNames {
			if len(val) <= len(name) && strings.EqualFold(name[:len(val)], val) {
				return Month(i + 1), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse sets m from val, which is either a month number if it starts
// with a digit or a month name otherwise.
func (m *Month) Parse(val string) error {
	parse := ParseMonth
	if len(val) > 0 && val[0] >= '0' && val[0] <= '9' {
		parse = ParseNumericMonth
	}
	n, err := parse(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}
