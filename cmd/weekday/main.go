// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command weekday determines the day of the week for any date in the
// proleptic Gregorian calendar and displays the calendar for its month.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
)

const cmdSpec = `name: weekday
summary: determine the day of the week for any date in the proleptic Gregorian calendar
commands:
  - name: day
    summary: print the day of the week for a date in the format DD/MM/YYYY followed by the calendar for its month
    arguments:
      - <DD/MM/YYYY>
  - name: month
    summary: print the calendar for a month, the month may be numeric or a name, eg. 3, mar or March
    arguments:
      - <month>
      - <year>
  - name: interactive
    summary: prompt for a date on stdin and print its day of the week and month calendar
  - name: batch
    summary: print the day of the week for each date, one per line, read from a file or stdin
    arguments:
      - "[file]"
`

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'optional yaml configuration file, its logging section overrides the logging flags'"`
}

type dayFlags struct {
	CommonFlags
}

type monthFlags struct {
	CommonFlags
}

type interactiveFlags struct {
	CommonFlags
}

type batchFlags struct {
	CommonFlags
	Format   string `subcmd:"format,,'output format: text, json or yaml, the configuration file or else text is used if not set'"`
	FailFast bool   `subcmd:"fail-fast,false,stop at the first line that is not a valid date"`
}

// command holds the input and output streams used by all commands.
type command struct {
	in  io.Reader
	out io.Writer
}

func newCommandSet(cmd *command) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("day").MustRunnerAndFlags(cmd.day,
		subcmd.MustRegisterFlagStruct(&dayFlags{}, nil, nil))
	cmdSet.Set("month").MustRunnerAndFlags(cmd.month,
		subcmd.MustRegisterFlagStruct(&monthFlags{}, nil, nil))
	cmdSet.Set("interactive").MustRunnerAndFlags(cmd.interactive,
		subcmd.MustRegisterFlagStruct(&interactiveFlags{}, nil, nil))
	cmdSet.Set("batch").MustRunnerAndFlags(cmd.batch,
		subcmd.MustRegisterFlagStruct(&batchFlags{}, nil, nil))
	return cmdSet
}

var errInterrupt = errors.New("interrupt")

func main() {
	cmdSet := newCommandSet(&command{in: os.Stdin, out: os.Stdout})
	ctx, cancel := context.WithCancelCause(context.Background())
	cmdutil.HandleSignals(func() { cancel(errInterrupt) }, os.Interrupt)
	err := cmdSet.Dispatch(ctx)
	if context.Cause(ctx) == errInterrupt {
		cmdutil.Exit("%v", errInterrupt)
	}
	if err == nil {
		return
	}
	var reported *reportedError
	if errors.As(err, &reported) {
		// Already displayed to the user as 'Error: ...'.
		os.Exit(1)
	}
	cmdutil.Exit("%v", err)
}
