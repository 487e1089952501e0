package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Config is the run configuration. Flags win over the environment.
type Config struct {
	Day        int    // 0 selects the latest registered day
	Input      string // "-" reads stdin
	LogLevel   logrus.Level
	CPUProfile string // directory for cpu.pprof; empty disables profiling
}

// Fields returns the configuration as logrus fields.
func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"day":         c.Day,
		"input":       c.Input,
		"log_level":   c.LogLevel.String(),
		"cpu_profile": c.CPUProfile,
	}
}

// ParseConfig reads flags from args, falling back to AOC_DAY, AOC_INPUT
// and AOC_LOG_LEVEL from getenv.
func ParseConfig(args []string, getenv func(string) string, stderr io.Writer) (Config, error) {
	var (
		cfg   Config
		level string
	)

	defaultDay := 0
	if v := getenv("AOC_DAY"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("AOC_DAY: %w", err)
		}
		defaultDay = d
	}
	defaultInput := "-"
	if v := getenv("AOC_INPUT"); v != "" {
		defaultInput = v
	}
	defaultLevel := logrus.InfoLevel.String()
	if v := getenv("AOC_LOG_LEVEL"); v != "" {
		defaultLevel = v
	}

	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Day, "day", defaultDay, "day to solve; 0 means latest registered")
	fs.IntVar(&cfg.Day, "d", defaultDay, "day to solve (shorthand)")
	fs.StringVar(&cfg.Input, "input", defaultInput, `puzzle input file, "-" for stdin`)
	fs.StringVar(&cfg.Input, "i", defaultInput, "puzzle input file (shorthand)")
	fs.StringVar(&level, "log-level", defaultLevel, "logrus level: trace, debug, info, warn, error")
	verbose := fs.Bool("v", false, "shorthand for -log-level=debug")
	fs.StringVar(&cfg.CPUProfile, "cpuprofile", "", "write a CPU profile into this directory")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return Config{}, err
	}
	if *verbose && lvl < logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}
	cfg.LogLevel = lvl
	if cfg.Day < 0 {
		return Config{}, fmt.Errorf("invalid day %d", cfg.Day)
	}

	return cfg, nil
}
