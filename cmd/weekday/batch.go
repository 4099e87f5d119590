// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/calendar/dmy"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"
)

// record is the result of looking up a single line of batch input.
type record struct {
	Line    int    `json:"line" yaml:"line"`
	Input   string `json:"input" yaml:"input"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Weekday string `json:"weekday,omitempty" yaml:"weekday,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

type recordWriter func(io.Writer, record) error

func writeText(w io.Writer, r record) error {
	var err error
	if len(r.Error) > 0 {
		_, err = fmt.Fprintf(w, "Error: line %d: %q: %s\n", r.Line, r.Input, r.Error)
	} else {
		_, err = fmt.Fprintf(w, "%s -> %s\n", r.Date, r.Weekday)
	}
	return err
}

// writeJSON writes one JSON object per line.
func writeJSON(w io.Writer, r record) error {
	buf, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(append(buf, '\n'))
	return err
}

// writeYAML writes each record as an element of a single yaml sequence.
func writeYAML(w io.Writer, r record) error {
	buf, err := yaml.Marshal([]record{r})
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

func recordWriterFor(format string) (recordWriter, error) {
	switch format {
	case "text", "":
		return writeText, nil
	case "json":
		return writeJSON, nil
	case "yaml":
		return writeYAML, nil
	}
	return nil, fmt.Errorf("unsupported output format: %q", format)
}

func (r record) failed(err error) (record, error) {
	r.Error = err.Error()
	return r, fmt.Errorf("line %d: %q: %w", r.Line, r.Input, err)
}

func lookupRecord(line int, input string) (record, error) {
	r := record{Line: line, Input: input}
	cd, err := dmy.Parse(input)
	if err != nil {
		return r.failed(err)
	}
	wd, err := cd.Weekday()
	if err != nil {
		return r.failed(err)
	}
	r.Date, r.Weekday = cd.String(), wd.String()
	return r, nil
}

// processBatch reads dates, one per line, from rd and writes a record for
// each to w. Blank lines and lines starting with # are ignored. The errors
// for all invalid lines are returned, or just the first if failFast is set.
func processBatch(ctx context.Context, rd io.Reader, w io.Writer, write recordWriter, failFast bool) error {
	logger := ctxlog.Logger(ctx)
	errs := &errors.M{}
	sc := bufio.NewScanner(rd)
	lineNumber, processed, failed := 0, 0, 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNumber++
		input := strings.TrimSpace(sc.Text())
		if len(input) == 0 || strings.HasPrefix(input, "#") {
			continue
		}
		processed++
		r, err := lookupRecord(lineNumber, input)
		if werr := write(w, r); werr != nil {
			return werr
		}
		if err != nil {
			failed++
			logger.Warn("invalid date", "line", lineNumber, "input", input, "error", r.Error)
			errs.Append(err)
			if failFast {
				break
			}
		}
	}
	errs.Append(sc.Err())
	logger.Info("batch", "lines", lineNumber, "processed", processed, "failed", failed)
	return errs.Err()
}

func (c *command) batch(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*batchFlags)
	ctx, cfg, done, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	format := fv.Format
	if len(format) == 0 {
		format = cfg.Batch.Format
	}
	failFast := fv.FailFast || cfg.Batch.FailFast
	write, err := recordWriterFor(format)
	if err != nil {
		return err
	}
	rd := c.in
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		rd = f
	}
	return processBatch(ctx, rd, c.out, write, failFast)
}
