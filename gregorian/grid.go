// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"io"
	"strings"
)

// HeaderWidth is the width of the field that the month and year
// heading is centered in.
const HeaderWidth = 20

// MonthGrid represents the layout of a single month, one row per week,
// with Monday as the first column.
type MonthGrid struct {
	Year  int
	Month int
	// Leading is the day of the week of the first day of the month and
	// hence the number of leading blank cells.
	Leading Weekday
	Days    int
	// Weeks contains at most 7 cells per row, a zero cell is a leading
	// blank. The final week is not padded.
	Weeks [][]int
}

// NewMonthGrid returns the MonthGrid for the specified year and month.
// An *InvalidDateError is returned if the year or month are invalid.
func NewMonthGrid(year, month int) (MonthGrid, error) {
	if err := Validate(1, month, year); err != nil {
		return MonthGrid{}, err
	}
	g := MonthGrid{
		Year:    year,
		Month:   month,
		Leading: DayOfWeek(year, month, 1),
		Days:    DaysInMonth(year, month),
	}
	week := make([]int, int(g.Leading), 7)
	for d := 1; d <= g.Days; d++ {
		week = append(week, d)
		if len(week) == 7 {
			g.Weeks = append(g.Weeks, week)
			week = make([]int, 0, 7)
		}
	}
	if len(week) > 0 {
		g.Weeks = append(g.Weeks, week)
	}
	return g, nil
}

// Header returns the month name and year centered in HeaderWidth columns.
func (g MonthGrid) Header() string {
	return center(fmt.Sprintf("%s %d", Month(g.Month), g.Year), HeaderWidth)
}

// DayHeadings returns the two character weekday abbreviations, Monday
// through Sunday, separated by spaces.
func DayHeadings() string {
	var out strings.Builder
	for d := Monday; d <= Sunday; d++ {
		if d > Monday {
			out.WriteByte(' ')
		}
		out.WriteString(d.Abbrev())
	}
	return out.String()
}

// Lines returns the heading, the day headings and a line per week.
func (g MonthGrid) Lines() []string {
	lines := make([]string, 0, len(g.Weeks)+2)
	lines = append(lines, g.Header(), DayHeadings())
	for _, week := range g.Weeks {
		lines = append(lines, formatWeek(week))
	}
	return lines
}

// String returns Lines joined and terminated by newlines.
func (g MonthGrid) String() string {
	return strings.Join(g.Lines(), "\n") + "\n"
}

func formatWeek(week []int) string {
	var out strings.Builder
	for i, d := range week {
		if i > 0 {
			out.WriteByte(' ')
		}
		if d == 0 {
			out.WriteString("  ")
			continue
		}
		fmt.Fprintf(&out, "%2d", d)
	}
	return out.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// RenderMonth returns the lines of the calendar for the specified month.
func RenderMonth(year, month int) ([]string, error) {
	g, err := NewMonthGrid(year, month)
	if err != nil {
		return nil, err
	}
	return g.Lines(), nil
}

// WriteMonth writes the calendar for the specified month to w, nothing
// is written if the year or month are invalid.
func WriteMonth(w io.Writer, year, month int) error {
	g, err := NewMonthGrid(year, month)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, g.String())
	return err
}
