// SPDX-License-Identifier: MIT

// Command linsolve reads a system of linear equations, one per line in the form
//
//	c1 c2 ... cn = k
//
// and reports its solution set. Blank lines and text after '#' are ignored.
//
//	linsolve -file system.txt -mode solve -steps
//	echo "1 1 = 2" | linsolve -mode classify
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/linsys"
	"github.com/katalvlaran/linsys/scalar"
	"github.com/katalvlaran/linsys/vector"
)

var log = logging.Logger("linsolve")

// Output modes.
const (
	modeSolve    = "solve"
	modeClassify = "classify"
	modeGeometry = "geometry"
)

var errUnknownMode = errors.New("linsolve: unknown mode")

// config holds the parsed command line.
type config struct {
	file     string
	mode     string
	steps    bool
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.file, "file", "", "Path to the equations file (default: read stdin)")
	fs.StringVar(&cfg.mode, "mode", modeSolve, "Output mode (solve, classify, geometry)")
	fs.BoolVar(&cfg.steps, "steps", false, "Print the triangular form and RREF before the result")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	switch cfg.mode {
	case modeSolve, modeClassify, modeGeometry:
	default:
		return config{}, fmt.Errorf("%q: %w", cfg.mode, errUnknownMode)
	}

	return cfg, nil
}

func main() {
	stdlog.SetFlags(0)
	stdlog.SetPrefix("linsolve: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		stdlog.Fatal(err)
	}

	// Set log level for all subsystems
	level, err := logging.LevelFromString(cfg.logLevel)
	if err != nil {
		stdlog.Printf("Invalid log level %q, using warn", cfg.logLevel)
		level = logging.LevelWarn
	}
	logging.SetAllLoggers(level)

	in := io.Reader(os.Stdin)
	if cfg.file != "" {
		f, err := os.Open(cfg.file)
		if err != nil {
			stdlog.Fatalf("Failed to open equations file: %v", err)
		}
		defer f.Close()
		in = f
	}

	if err = run(cfg, in, os.Stdout); err != nil {
		stdlog.Fatal(err)
	}
}

// run reads a system from in and writes the report for cfg.mode to out.
func run(cfg config, in io.Reader, out io.Writer) error {
	s, err := readSystem(in)
	if err != nil {
		return err
	}
	log.Infof("read %d equations in %d variables", s.Len(), s.Dimension())

	if cfg.steps {
		if err = writeSteps(s, out); err != nil {
			return err
		}
	}

	switch cfg.mode {
	case modeClassify:
		sol, err := s.Solve()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sol.Kind)
	case modeGeometry:
		return writeGeometry(s, out)
	default:
		sol, err := s.Solve()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sol)
	}

	return nil
}

// readSystem parses one equation per non-blank line; '#' starts a comment.
func readSystem(in io.Reader) (*linsys.System, error) {
	var rows []equation.Equation
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line, _, _ := strings.Cut(sc.Text(), "#")
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := equation.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rows = append(rows, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading equations: %w", err)
	}

	return linsys.New(rows...)
}

func writeSteps(s *linsys.System, out io.Writer) error {
	tf, err := s.TriangularForm()
	if err != nil {
		return err
	}
	rref, err := s.RREF()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Triangular form:\n%s\n\nRREF:\n%s\n\n", tf, rref)

	return nil
}

// writeGeometry reports how every pair of equations relates.
func writeGeometry(s *linsys.System, out io.Writer) error {
	rows := s.Rows()
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			rel, err := relation(rows[i], rows[j])
			if err != nil {
				return fmt.Errorf("equations %d and %d: %w", i+1, j+1, err)
			}
			fmt.Fprintf(out, "Equations %d and %d: %s\n", i+1, j+1, rel)
		}
	}

	return nil
}

func relation(a, b equation.Equation) (string, error) {
	coincident, err := equation.Coincident(a, b)
	if err != nil {
		return "", err
	}
	if coincident {
		return "coincident", nil
	}
	parallel, err := equation.Parallel(a, b)
	if err != nil {
		return "", err
	}
	if parallel {
		return "parallel", nil
	}
	if a.Dimension() != 2 {
		return "intersecting", nil
	}
	p, ok, err := equation.Intersection2D(a, b)
	if err != nil || !ok {
		return "intersecting", err
	}
	coords := p.Coordinates()
	rounded := make([]scalar.Scalar, len(coords))
	for k, c := range coords {
		rounded[k] = c.Round(3)
	}
	r, err := vector.New(rounded...)
	if err != nil {
		return "", err
	}

	return "intersect at " + r.String(), nil
}
