// Command aoc runs one day's puzzle solver on its input and prints both
// answers.
//
//	aoc -day 17 -input dec17.txt
//	aoc -d 10 < dec10.txt
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

var log = logrus.New()

func main() {
	cfg, err := ParseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.WithFields(cfg.Fields()).Debug("starting")

	stop := func() {}
	if cfg.CPUProfile != "" {
		stop = profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.CPUProfile), profile.Quiet).Stop
	}

	err = run(cfg, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// run solves the configured day, reading input from stdin unless a file
// is named, and writes the answers to out.
func run(cfg Config, stdin io.Reader, out io.Writer) error {
	reg, err := registry()
	if err != nil {
		return err
	}
	var solver puzzle.Solver
	if cfg.Day == 0 {
		solver, err = reg.Latest()
	} else {
		solver, err = reg.Lookup(cfg.Day)
	}
	if err != nil {
		return err
	}

	r := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	} else {
		fmt.Fprintln(out, "input:")
	}
	rows, err := input.ReadRows(r)
	if err != nil {
		return err
	}

	start := time.Now()
	ans, err := solver.Run(rows)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"puzzle":  solver.String(),
		"rows":    len(rows),
		"elapsed": time.Since(start).String(),
	}).Debug("solved")

	fmt.Fprintf(out, "Answer puzzle A: %d\n", ans.A)
	fmt.Fprintf(out, "Answer puzzle B: %d\n", ans.B)
	return nil
}
