// Command linsolve is a small demonstration front end for the gauss solver.
// It loads a dense square system from a TOML file (or falls back to the
// built-in 10×10 tridiagonal demo), solves it, and prints the solution
// vector with 4-decimal fixed-width fields plus the elapsed wall time.
//
// Exit code: 0 on success, 1 on any failure, including a singular matrix.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/matrix"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "linsolve: %v\n", err)
		os.Exit(1)
	}
}

// run parses flags, obtains a system, solves it and writes the report to w.
// Split from main for testability (main only maps error to exit code).
func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML file with [system] rows/rhs; empty selects the built-in demo")
	tol := fs.Float64("tol", gauss.DefaultPivotTolerance, "pivot tolerance below which the system is treated as singular")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	var (
		a   *matrix.Dense
		b   []float64
		err error
	)
	if *configPath != "" {
		if a, b, err = loadSystem(*configPath); err != nil {
			return err
		}
		logger.Info().Str("config", *configPath).Int("n", a.Rows()).Msg("loaded system")
	} else {
		a, b = demoSystem()
		logger.Info().Int("n", a.Rows()).Msg("using built-in tridiagonal demo system")
	}
	logger.Debug().Str("matrix", "\n"+a.String()).Msg("coefficients")

	opts := gauss.DefaultOptions()
	opts.PivotTolerance = *tol

	start := time.Now()
	err = gauss.Solve(a, b, &opts)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, gauss.ErrSingular) {
			logger.Error().Err(err).Msg("matrix is singular or near-singular, no unique solution")
		}

		return err
	}

	fmt.Fprintln(w, "Solution vector x:")
	fmt.Fprintln(w, formatVector(b))
	fmt.Fprintf(w, "Time taken: %.3f ms\n", float64(elapsed.Nanoseconds())/1e6)

	return nil
}

// formatVector renders v as fixed-width 4-decimal fields in brackets,
// matching the classic numeric-demo layout: [  0.0000,   1.0000, ...].
func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%8.4f", x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
