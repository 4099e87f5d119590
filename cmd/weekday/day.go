// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloudeng.io/calendar/dmy"
	"cloudeng.io/calendar/gregorian"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// reportedError is an error that has already been written to the
// command's output.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// report writes 'Error: <err>' to the output.
func (c *command) report(err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintf(c.out, "Error: %v\n", err)
	return &reportedError{err: err}
}

// lookupDate parses and validates val and returns the day of week line
// followed by a blank line, an optional caption and the month calendar.
// Nothing is returned on error.
func lookupDate(ctx context.Context, val, caption string) (string, error) {
	logger := ctxlog.Logger(ctx)
	cd, err := dmy.Parse(val)
	if err != nil {
		logger.Debug("parse failed", "input", val, "error", err)
		return "", err
	}
	wd, err := cd.Weekday()
	if err != nil {
		logger.Debug("invalid date", "date", cd.String(), "error", err)
		return "", err
	}
	grid, err := gregorian.NewMonthGrid(cd.Year, cd.Month)
	if err != nil {
		return "", err
	}
	logger.Info("weekday", "date", cd.String(), "weekday", wd.String(), "iso.index", int(wd))
	var out strings.Builder
	fmt.Fprintf(&out, "%v -> %v\n\n", cd, wd)
	if len(caption) > 0 {
		out.WriteString(caption)
		out.WriteByte('\n')
	}
	out.WriteString(grid.String())
	return out.String(), nil
}

func (c *command) day(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*dayFlags)
	ctx, _, done, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	text, err := lookupDate(ctx, args[0], "")
	if err != nil {
		return c.report(err)
	}
	_, err = io.WriteString(c.out, text)
	return err
}

func (c *command) month(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*monthFlags)
	ctx, _, done, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	var month gregorian.Month
	if err := month.Parse(args[0]); err != nil {
		return c.report(err)
	}
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return c.report(fmt.Errorf("invalid year: %s", args[1]))
	}
	grid, err := gregorian.NewMonthGrid(year, int(month))
	if err != nil {
		return c.report(err)
	}
	ctxlog.Logger(ctx).Info("month", "month", month.String(), "year", year, "first", grid.Leading.String(), "days", grid.Days)
	_, err = io.WriteString(c.out, grid.String())
	return err
}

const (
	banner  = "Simple Calendar — Determine the day name of any given date."
	prompt  = "Enter a date (format: DD/MM/YYYY). Example: 13/03/2057"
	caption = "Monthly calendar for this date:"
)

func (c *command) interactive(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*interactiveFlags)
	ctx, _, done, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	fmt.Fprintf(c.out, "%s\n%s\nDate: ", banner, prompt)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	text, err := lookupDate(ctx, line, caption)
	if err != nil {
		return c.report(err)
	}
	_, err = io.WriteString(c.out, text)
	return err
}
