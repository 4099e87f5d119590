// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dmy parses dates written as day/month/year, eg. 13/03/2057 or
// 1/3/2057. Only the syntax is checked, the resulting date must be
// validated using gregorian.Validate.
package dmy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/calendar/gregorian"
)

// ErrParse is matched, via errors.Is, by all errors returned by Parse.
var ErrParse = errors.New("failed to parse date")

// Format describes the expected input format.
const Format = "DD/MM/YYYY"

// ParseError is returned for malformed input.
type ParseError struct {
	Input string
	// Component is the name of the component that could not be parsed,
	// it is empty if the input has the wrong number of components.
	Component string
	Err       error
}

// Error implements error.
func (e *ParseError) Error() string {
	if len(e.Component) == 0 {
		return "date format must be " + Format
	}
	return fmt.Sprintf("invalid %s component %q", e.Component, e.Input)
}

// Unwrap returns the underlying strconv error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is supports errors.Is for ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

var components = []string{"day", "month", "year"}

// Parse parses a date in the format D/M/YYYY or DD/MM/YYYY. Surrounding
// white space is ignored, '/' is the only supported separator.
func Parse(val string) (gregorian.CalendarDate, error) {
	parts := strings.Split(strings.TrimSpace(val), "/")
	if len(parts) != 3 {
		return gregorian.CalendarDate{}, &ParseError{Input: val}
	}
	var n [3]int
	for i, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.Atoi(p)
		if err != nil {
			return gregorian.CalendarDate{}, &ParseError{Input: p, Component: components[i], Err: err}
		}
		n[i] = v
	}
	return gregorian.NewCalendarDate(n[2], n[1], n[0]), nil
}
