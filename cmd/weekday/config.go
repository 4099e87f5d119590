// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
)

// Config represents the optional yaml configuration file, eg:
//
//	logging:
//	  level: 3
//	  format: text
//	batch:
//	  format: json
//	  fail_fast: true
type Config struct {
	Logging cmdutil.LoggingConfig `yaml:"logging"`
	Batch   BatchConfig           `yaml:"batch"`
}

// BatchConfig provides defaults for the batch command's flags. Format is
// used only when --format is not given, so an explicit --format=text
// overrides it. FailFast cannot be disabled from the command line, fail
// fast mode is on if either it or --fail-fast is set.
type BatchConfig struct {
	Format   string `yaml:"format"`
	FailFast bool   `yaml:"fail_fast"`
}

func loadConfig(ctx context.Context, cf *CommonFlags) (Config, error) {
	cfg := Config{Logging: cf.LoggingConfig()}
	if len(cf.Config) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, cf.Config, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setup reads the configuration file, if any, and returns a context
// containing the logger it specifies. The returned function must be called
// to close the log file.
func setup(ctx context.Context, cf *CommonFlags) (context.Context, Config, func(), error) {
	cfg, err := loadConfig(ctx, cf)
	if err != nil {
		return ctx, Config{}, nil, err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, Config{}, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	if len(cf.Config) > 0 {
		logger.Debug("configuration", "file", cf.Config, "log.level", cfg.Logging.Level)
	}
	return ctx, cfg, func() { _ = logger.Close() }, nil
}
